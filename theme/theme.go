// Package theme composes the mappers and the palette builder into a per-theme model.
package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bulmaswatch/swatchport/log"
	"github.com/bulmaswatch/swatchport/mapping"
	"github.com/bulmaswatch/swatchport/palette"
	"github.com/bulmaswatch/swatchport/scss"
)

// ErrNoDeclarations is returned for a theme whose fragments yielded nothing to migrate.
var ErrNoDeclarations = errors.New("no declarations")

// Model is a legacy theme moved into the new namespace.
type Model struct {
	Name        string             `json:"name" jsonschema:"description=Theme directory name"`
	InitialVars *scss.Declarations `json:"initial_vars" jsonschema:"description=Initial variables in declaration order"`
	CSSVars     *mapping.CSSVars   `json:"css_vars" jsonschema:"description=Registered CSS custom properties"`
	Colors      *palette.Colors    `json:"colors" jsonschema:"description=Semantic color map"`
}

// Slug is the lower-case name used for output paths and selectors.
func (m *Model) Slug() string {
	return Slug(m.Name)
}

// Slug lower-cases a theme name.
func Slug(name string) string {
	return strings.ToLower(name)
}

// Transform maps legacy declarations of the named theme with the compiled-in tables.
func Transform(name string, decls *scss.Declarations) (*Model, error) {
	return TransformWith(name, decls, Tables{
		Initial:         mapping.InitialVariables,
		InitialDefaults: mapping.InitialDefaults,
		CSS:             mapping.CSSVariables,
		CSSDefaults:     mapping.CSSDefaults,
	})
}

// Tables groups the mapping configuration a transformation reads.
type Tables struct {
	Initial         mapping.Table
	InitialDefaults mapping.Defaults
	CSS             mapping.Table
	CSSDefaults     mapping.Defaults
}

// TransformWith maps legacy declarations with the given tables.
func TransformWith(name string, decls *scss.Declarations, tables Tables) (*Model, error) {
	if name == "" {
		return nil, errors.New("theme name is empty")
	}

	if decls == nil || decls.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoDeclarations)
	}

	log.Infof("Transforming %s (%d declarations)", name, decls.Len())

	initial := mapping.Initial(decls, tables.Initial, tables.InitialDefaults)

	return &Model{
		Name:        name,
		InitialVars: initial,
		CSSVars:     mapping.CSS(decls, tables.CSS, tables.Initial, tables.CSSDefaults),
		Colors:      palette.Build(decls, initial),
	}, nil
}
