package mapping

import (
	"strings"

	"github.com/bulmaswatch/swatchport/log"
	"github.com/bulmaswatch/swatchport/ordered"
	"github.com/bulmaswatch/swatchport/scss"
)

// CSSVars maps CSS custom property names, without the leading dashes, to their values.
type CSSVars = ordered.Map[CSSValue]

// Initial overlays the mapped legacy declarations onto defaults. Declarations the table does not
// mention, and those it drops, never reach the result.
func Initial(decls *scss.Declarations, table Table, defaults Defaults) *scss.Declarations {
	vars := scss.NewDeclarations()
	for _, entry := range defaults {
		vars.Set(entry.Key, entry.Value)
	}

	decls.Each(func(legacy, value string) {
		target, ok := table.Target(legacy)
		if !ok {
			return
		}
		name, present := target.Get()
		if !present {
			log.Debugf("Dropped %s", legacy)
			return
		}
		vars.Set(name, value)
		log.Debugf("Mapped initial %s -> %s = %s", legacy, name, value)
	})

	return vars
}

// fixedReference wires a CSS variable to the initial variable a legacy name maps to.
type fixedReference struct {
	css      string
	legacy   string
	fallback string
}

// fixedReferences are assigned after every overlay so the CSS layer always reads the initial layer.
var fixedReferences = []fixedReference{
	{"primary", "$brand-primary", "$primary"},
	{"scheme-h", "", "$scheme-h"},
	{"scheme-s", "", "$scheme-s"},
	{"light-l", "", "$light-l"},
	{"dark-l", "", "$dark-l"},
	{"light-invert-l", "", "$dark-l"},
	{"dark-invert-l", "", "$light-l"},
	{"soft-l", "", "$light-l"},
	{"bold-l", "", "$dark-l"},
	{"soft-invert-l", "", "$dark-l"},
	{"bold-invert-l", "", "$light-l"},

	{"family-primary", "$font-family-sans-serif", "$family-sans-serif"},
	{"family-secondary", "$font-family-sans-serif", "$family-sans-serif"},
	{"family-code", "$font-family-monospace", "$family-code"},
	{"size-small", "$font-size-sm", "$size-small"},
	{"size-normal", "$font-size-base", "$size-normal"},
	{"size-medium", "$font-size-lg", "$size-medium"},
	{"size-large", "$font-size-xl", "$size-large"},
	{"weight-light", "$font-weight-light", "$weight-light"},
	{"weight-normal", "$font-weight-normal", "$weight-normal"},
	{"weight-medium", "$font-weight-medium", "$weight-medium"},
	{"weight-semibold", "$font-weight-semibold", "$weight-semibold"},
	{"weight-bold", "$font-weight-bold", "$weight-bold"},
	{"weight-extrabold", "$font-weight-extrabold", "$weight-extrabold"},

	{"block-spacing", "$block-spacing", "$block-spacing"},
	{"radius-small", "$border-radius-sm", "$radius-small"},
	{"radius", "$border-radius", "$radius"},
	{"radius-medium", "$border-radius-md", "$radius-medium"},
	{"radius-large", "$border-radius-lg", "$radius-large"},
}

// CSS overlays the mapped legacy declarations onto the CSS defaults. A sigil target registers a
// reference keyed by the bare target name. The fixed references to the initial layer are applied
// last through initial, overwriting anything the overlay produced for those keys.
func CSS(decls *scss.Declarations, table, initial Table, defaults Defaults) *CSSVars {
	vars := ordered.New[CSSValue]()
	for _, entry := range defaults {
		vars.Set(entry.Key, LiteralOf(entry.Value))
	}

	decls.Each(func(legacy, value string) {
		target, ok := table.Target(legacy)
		if !ok {
			return
		}
		name, present := target.Get()
		if !present {
			log.Debugf("Dropped CSS %s", legacy)
			return
		}

		if strings.HasPrefix(name, scss.Sigil) {
			vars.Set(strings.TrimPrefix(name, scss.Sigil), ReferenceTo(name))
			log.Debugf("Mapped CSS %s -> %s (reference)", legacy, name)
			return
		}

		vars.Set(name, LiteralOf(value))
		log.Debugf("Mapped CSS %s -> %s = %s", legacy, name, value)
	})

	for _, ref := range fixedReferences {
		vars.Set(ref.css, ReferenceTo(initial.TargetOr(ref.legacy, ref.fallback)))
	}

	return vars
}
