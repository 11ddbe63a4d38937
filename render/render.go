// Package render turns a transformed theme into the four stylesheets of the new layout.
package render

import (
	"bytes"
	"fmt"
	"path"
	"strings"
	"text/template"

	"github.com/bulmaswatch/swatchport/constant"
	"github.com/bulmaswatch/swatchport/manifest"
	"github.com/bulmaswatch/swatchport/mapping"
	"github.com/bulmaswatch/swatchport/palette"
	"github.com/bulmaswatch/swatchport/scss"
	"github.com/bulmaswatch/swatchport/theme"
	"github.com/samber/lo"
)

var (
	initialVariablesTemplate = lo.Must(template.New("initial-variables").Parse(constant.InitialVariablesTemplate))
	themeTemplate            = lo.Must(template.New("theme").Parse(constant.ThemeTemplate))
	entryTemplate            = lo.Must(template.New("entry").Parse(constant.EntryTemplate))
	overridesTemplate        = lo.Must(template.New("overrides").Parse(constant.OverridesTemplate))
)

const defaultSchemeMainL = "100%"

// Variable is one name/value line of a generated file.
type Variable struct {
	Name, Value string
}

type swatch struct {
	Name, Base, Invert string
}

// Paths returns the four output paths of a theme, relative to the output root.
func Paths(name string) []string {
	slug := theme.Slug(name)
	return []string{
		path.Join(slug, constant.InitialVariablesFile),
		path.Join(slug, slug+".scss"),
		path.Join(slug, constant.EntryFile),
		path.Join(slug, constant.OverridesFile),
	}
}

// Render produces the generated files of model keyed by output-relative path.
// Output depends only on the model and is byte-identical across calls.
func Render(model *theme.Model) (manifest.Files, error) {
	if model == nil {
		return nil, fmt.Errorf("render: nil model")
	}

	title := strings.ToUpper(model.Name)
	slug := model.Slug()
	paths := Paths(model.Name)

	steps := []struct {
		tmpl *template.Template
		data any
	}{
		{initialVariablesTemplate, map[string]any{
			"Title":     title,
			"Variables": Variables(model.InitialVars, mapping.InitialDefaults, mapping.InitialVariables),
			"Colors":    swatches(model.Colors),
		}},
		{themeTemplate, map[string]any{
			"Title":         title,
			"SchemeMainL":   schemeMainL(model.CSSVars),
			"Registrations": registrations(model.CSSVars),
		}},
		{entryTemplate, map[string]any{
			"Slug":    slug,
			"Title":   title,
			"Version": constant.BulmaswatchVersion,
		}},
		{overridesTemplate, map[string]any{
			"Title": title,
		}},
	}

	files := make(manifest.Files, len(steps))
	for i, step := range steps {
		var buf bytes.Buffer
		if err := step.tmpl.Execute(&buf, step.data); err != nil {
			return nil, fmt.Errorf("render %s: %w", paths[i], err)
		}
		files[paths[i]] = strings.TrimSpace(buf.String())
	}

	return files, nil
}

// Variables selects the initial variables worth writing. An unmapped variable still at its
// default is elided. Critical variables are appended when elided.
func Variables(vars *scss.Declarations, defaults mapping.Defaults, table mapping.Table) []Variable {
	var (
		out   []Variable
		added = make(map[string]bool)
	)

	vars.Each(func(name, value string) {
		if def, ok := defaults.Value(name); ok && def == value && !table.IsTarget(name) {
			return
		}
		if !strings.HasPrefix(name, scss.Sigil) {
			return
		}
		out = append(out, Variable{Name: name, Value: value})
		added[name] = true
	})

	for _, name := range mapping.CriticalVariables {
		if added[name] {
			continue
		}
		if value, ok := vars.Get(name); ok {
			out = append(out, Variable{Name: name, Value: value})
		}
	}

	return out
}

func swatches(colors *palette.Colors) []swatch {
	out := make([]swatch, 0, colors.Len())
	colors.Each(func(name string, c palette.Color) {
		out = append(out, swatch{Name: name, Base: c.Base, Invert: c.Invert})
	})
	return out
}

func registrations(vars *mapping.CSSVars) []Variable {
	out := make([]Variable, 0, vars.Len())
	vars.Each(func(name string, value mapping.CSSValue) {
		out = append(out, Variable{Name: name, Value: Quote(value)})
	})
	return out
}

func schemeMainL(vars *mapping.CSSVars) string {
	if v, ok := vars.Get("scheme-main-l"); ok {
		return v.String()
	}
	return defaultSchemeMainL
}
