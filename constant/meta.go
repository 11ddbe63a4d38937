// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Swatchport is the canonical application identifier used for filesystem paths and CLI branding.
	Swatchport = "swatchport"

	// Version is the current application semantic version string.
	Version = "0.3.1"
)

// Legacy theme fragments, in precedence order.
const (
	VariablesFragment  = "_variables.scss"
	BootswatchFragment = "_bootswatch.scss"
)

// Generated theme layout - these names are shared by the renderer and the materialization step.
const (
	InitialVariablesFile = "initial-variables.scss"
	EntryFile            = "bulmaswatch.scss"
	OverridesFile        = "overrides.scss"
	UtilitiesDir         = "utilities"
	ManifestFile         = "generated_themes.json"
)
