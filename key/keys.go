// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Filesystem Layout - these keys locate the legacy input tree, the generated output tree and shared assets.
const (
	PathsLegacyThemes = "paths.legacy_themes"
	PathsOutput       = "paths.output"
	PathsUtilities    = "paths.utilities"
	PathsManifest     = "paths.manifest"
)

// Migration Behaviour - these keys toggle the optional steps of a batch run.
const (
	MigrateCopyUtilities = "migrate.copy_utilities"
	MigrateSaveReport    = "migrate.save_report"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the application behavior.
const (
	CliColored = "cli.colored"
)
