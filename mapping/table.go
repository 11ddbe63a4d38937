// Package mapping carries the static rename tables and defaults that move legacy Bootswatch
// variables into the Bulma 1.x namespace, and the mappers that apply them.
package mapping

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Table maps a legacy variable name to its new name. mo.None marks a legacy variable that has
// no equivalent and must be dropped.
type Table map[string]mo.Option[string]

// Target returns the new name for legacy. The second result is false when the table does not mention legacy.
func (t Table) Target(legacy string) (mo.Option[string], bool) {
	target, ok := t[legacy]
	return target, ok
}

// TargetOr returns the new name for legacy, or fallback when legacy is unmapped or dropped.
func (t Table) TargetOr(legacy, fallback string) string {
	return t[legacy].OrElse(fallback)
}

// IsTarget reports whether name is the destination of any legacy variable.
func (t Table) IsTarget(name string) bool {
	for _, target := range t {
		if to, ok := target.Get(); ok && to == name {
			return true
		}
	}
	return false
}

// Defaults is an ordered set of default values keyed by new variable name.
type Defaults []lo.Entry[string, string]

// Value returns the default for name.
func (d Defaults) Value(name string) (string, bool) {
	entry, ok := lo.Find(d, func(e lo.Entry[string, string]) bool {
		return e.Key == name
	})
	return entry.Value, ok
}

func rename(to string) mo.Option[string] { return mo.Some(to) }

var drop = mo.None[string]()

// InitialVariables maps legacy names onto initial-variables.scss.
var InitialVariables = Table{
	"$brand-primary": rename("$primary"),
	"$brand-success": rename("$success"),
	"$brand-info":    rename("$info"),
	"$brand-warning": rename("$warning"),
	"$brand-danger":  rename("$danger"),
	"$gray-dark":     rename("$grey-dark"),
	"$gray":          rename("$grey"),
	"$gray-light":    rename("$grey-light"),
	"$gray-lighter":  rename("$grey-lighter"),

	"$font-family-sans-serif": rename("$family-sans-serif"),
	"$font-family-monospace":  rename("$family-code"),
	"$font-size-base":         rename("$size-normal"),
	"$font-size-lg":           rename("$size-medium"),
	"$font-size-sm":           rename("$size-small"),
	"$font-weight-light":      rename("$weight-light"),
	"$font-weight-normal":     rename("$weight-normal"),
	"$font-weight-bold":       rename("$weight-bold"),

	"$border-radius":     rename("$radius"),
	"$border-radius-lg":  rename("$radius-large"),
	"$border-radius-sm":  rename("$radius-small"),
	"$input-height-base": rename("$control-height"),
	"$navbar-default-bg": drop,
	"$link-color":        rename("$link"),
	"$link-hover-color":  drop,
}

// CSSVariables maps legacy names onto the CSS custom properties registered by <theme>.scss.
// A target carrying the sigil registers a reference to that initial variable.
var CSSVariables = Table{
	"$border-radius":        rename("radius"),
	"$border-radius-lg":     rename("radius-large"),
	"$border-radius-sm":     rename("radius-small"),
	"$headings-font-weight": rename("$weight-bold"),
	"$body-bg":              drop,
}

// InitialDefaults seeds initial-variables.scss. Values mirror the shared light utilities.
var InitialDefaults = Defaults{
	{Key: "$scheme-h", Value: "221"},
	{Key: "$scheme-s", Value: "14%"},
	{Key: "$dark-l", Value: "20%"},
	{Key: "$light-l", Value: "90%"},
	{Key: "$black", Value: "hsl(221, 14%, 4%)"},
	{Key: "$black-bis", Value: "hsl(221, 14%, 9%)"},
	{Key: "$black-ter", Value: "hsl(221, 14%, 14%)"},
	{Key: "$grey-darker", Value: "hsl(221, 14%, 21%)"},
	{Key: "$grey-dark", Value: "hsl(221, 14%, 29%)"},
	{Key: "$grey", Value: "hsl(221, 14%, 48%)"},
	{Key: "$grey-light", Value: "hsl(221, 14%, 71%)"},
	{Key: "$grey-lighter", Value: "hsl(221, 14%, 86%)"},
	{Key: "$grey-lightest", Value: "hsl(221, 14%, 93%)"},
	{Key: "$white-ter", Value: "hsl(221, 14%, 96%)"},
	{Key: "$white-bis", Value: "hsl(221, 14%, 98%)"},
	{Key: "$white", Value: "hsl(221, 14%, 100%)"},
	{Key: "$orange", Value: "hsl(14, 100%, 53%)"},
	{Key: "$yellow", Value: "hsl(42, 100%, 53%)"},
	{Key: "$green", Value: "hsl(153, 53%, 53%)"},
	{Key: "$turquoise", Value: "hsl(171, 100%, 41%)"},
	{Key: "$cyan", Value: "hsl(198, 100%, 70%)"},
	{Key: "$blue", Value: "hsl(233, 100%, 63%)"},
	{Key: "$purple", Value: "hsl(271, 100%, 71%)"},
	{Key: "$red", Value: "hsl(348, 100%, 70%)"},
	{Key: "$family-sans-serif", Value: `"Inter", "SF Pro", "Segoe UI", "Roboto", "Oxygen", "Ubuntu", "Helvetica Neue", "Helvetica", "Arial", sans-serif`},
	{Key: "$family-monospace", Value: `"Inconsolata", "Hack", "SF Mono", "Roboto Mono", "Source Code Pro", "Ubuntu Mono", monospace`},
	{Key: "$weight-light", Value: "300"},
	{Key: "$weight-normal", Value: "400"},
	{Key: "$weight-medium", Value: "500"},
	{Key: "$weight-semibold", Value: "600"},
	{Key: "$weight-bold", Value: "700"},
	{Key: "$weight-extrabold", Value: "800"},
	{Key: "$block-spacing", Value: "1.5rem"},
	{Key: "$radius-small", Value: "0.25rem"},
	{Key: "$radius", Value: "0.375rem"},
	{Key: "$radius-medium", Value: "0.5em"},
	{Key: "$radius-large", Value: "0.75rem"},
	{Key: "$custom-colors", Value: "()"},
	{Key: "$primary", Value: "$blue"},
	{Key: "$success", Value: "$green"},
	{Key: "$info", Value: "$cyan"},
	{Key: "$warning", Value: "$yellow"},
	{Key: "$danger", Value: "$red"},
	{Key: "$light", Value: "$white-ter"},
	{Key: "$dark", Value: "$grey-darker"},
	{Key: "$link", Value: "$blue"},
}

// CSSDefaults seeds the register-vars call of <theme>.scss.
var CSSDefaults = Defaults{
	{Key: "hover-background-l-delta", Value: "-5%"},
	{Key: "active-background-l-delta", Value: "-10%"},
	{Key: "hover-border-l-delta", Value: "-10%"},
	{Key: "active-border-l-delta", Value: "-20%"},
	{Key: "hover-color-l-delta", Value: "-5%"},
	{Key: "active-color-l-delta", Value: "-10%"},
	{Key: "hover-shadow-a-delta", Value: "-0.05"},
	{Key: "active-shadow-a-delta", Value: "-0.1"},

	{Key: "scheme-brightness", Value: "light"},
	{Key: "scheme-main-l", Value: "100%"},
	{Key: "scheme-main-bis-l", Value: "98%"},
	{Key: "scheme-main-ter-l", Value: "96%"},
	{Key: "background-l", Value: "96%"},
	{Key: "border-weak-l", Value: "93%"},
	{Key: "border-l", Value: "86%"},
	{Key: "text-weak-l", Value: "48%"},
	{Key: "text-l", Value: "29%"},
	{Key: "text-strong-l", Value: "21%"},
	{Key: "text-title-l", Value: "14%"},
	{Key: "scheme-invert-ter-l", Value: "14%"},
	{Key: "scheme-invert-bis-l", Value: "7%"},
	{Key: "scheme-invert-l", Value: "4%"},

	{Key: "duration", Value: "294ms"},
	{Key: "easing", Value: "ease-out"},
	{Key: "radius-rounded", Value: "9999px"},
	{Key: "speed", Value: "86ms"},

	{Key: "burger-border-radius", Value: "0.5em"},
	{Key: "burger-gap", Value: "5px"},
	{Key: "burger-item-height", Value: "2px"},
	{Key: "burger-item-width", Value: "20px"},

	{Key: "arrow-color", Value: `#{cv.getVar("link")}`},
	{Key: "loading-color", Value: `#{cv.getVar("border")}`},
	{Key: "burger-h", Value: `#{cv.getVar("link-h")}`},
	{Key: "burger-s", Value: `#{cv.getVar("link-s")}`},
	{Key: "burger-l", Value: `#{cv.getVar("link-l")}`},
}

// CriticalVariables are always written to initial-variables.scss, even when they equal their default.
var CriticalVariables = []string{
	"$primary",
	"$link",
	"$info",
	"$success",
	"$warning",
	"$danger",
	"$light",
	"$dark",
	"$family-sans-serif",
	"$family-code",
}
