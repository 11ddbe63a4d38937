// Package palette builds the semantic color map registered by generated themes.
package palette

import (
	"strings"

	"github.com/bulmaswatch/swatchport/log"
	"github.com/bulmaswatch/swatchport/ordered"
	"github.com/bulmaswatch/swatchport/scss"
	"github.com/samber/lo"
)

// Color is a base color paired with the color used for text drawn on top of it.
type Color struct {
	Base   string `json:"base" jsonschema:"description=Base color value"`
	Invert string `json:"invert" jsonschema:"description=Contrasting color for content on the base"`
}

// Colors maps color keys to their pair in palette order.
type Colors = ordered.Map[Color]

const (
	legacyPrefix = "brand-"
	colorSuffix  = "-color"

	// Text is the synthetic key every palette carries.
	Text = "text"
	// Transparent is the base of the Text entry. It is a sentinel, not a color.
	Transparent = "transparent"

	fallbackDark  = "$black"
	fallbackLight = "$white"
)

// Seed lists the keys every palette considers, ahead of discovered ones.
var Seed = []string{
	"white",
	"black",
	"light",
	"dark",
	"primary",
	"link",
	"info",
	"success",
	"warning",
	"danger",
}

var tokens = []string{"color", "primary", "secondary", "success", "info", "warning", "danger", "link"}

// KeyOf derives a palette key from a legacy variable name. The second result is false when the
// name does not look like a color.
func KeyOf(name string) (string, bool) {
	lower := strings.ToLower(name)
	if !lo.SomeBy(tokens, func(token string) bool { return strings.Contains(lower, token) }) {
		return "", false
	}

	key := strings.TrimPrefix(lower, scss.Sigil)
	key = strings.TrimPrefix(key, legacyPrefix)
	key = strings.TrimSuffix(key, colorSuffix)

	return key, key != ""
}

// Keys returns the seed keys followed by the keys discovered in legacy, without duplicates.
func Keys(legacy *scss.Declarations) []string {
	keys := make([]string, len(Seed))
	copy(keys, Seed)

	for _, name := range legacy.Keys() {
		if key, ok := KeyOf(name); ok && !lo.Contains(keys, key) {
			keys = append(keys, key)
		}
	}

	return keys
}

func lookup(name string, sets ...*scss.Declarations) (string, bool) {
	for _, set := range sets {
		if value, ok := set.Get(name); ok && value != "" {
			return value, true
		}
	}
	return "", false
}

func resolve(initial *scss.Declarations, name, fallback string) string {
	if value, ok := initial.Get(name); ok && value != "" {
		return value
	}
	return fallback
}

// Base resolves the base value of key from the mapped initial variables first, then from the
// legacy declarations under the bare and the legacy-prefixed name.
func Base(key string, legacy, initial *scss.Declarations) (string, bool) {
	if value, ok := lookup(scss.Sigil+key, initial, legacy); ok {
		return value, true
	}
	return lookup(scss.Sigil+legacyPrefix+key, legacy)
}

// FindInvert resolves the invert value of key. Explicit invert declarations win, checked in
// legacy before initial for each spelling. Otherwise light keys invert to dark and every
// other key inverts to light.
func FindInvert(key string, legacy, initial *scss.Declarations) string {
	candidates := []string{
		scss.Sigil + key + "-invert",
		scss.Sigil + legacyPrefix + key + "-invert",
		scss.Sigil + key + "_invert",
	}

	for _, name := range candidates {
		if value, ok := lookup(name, legacy, initial); ok {
			return value
		}
	}

	switch key {
	case "white", "light":
		return resolve(initial, "$dark", fallbackDark)
	default:
		return resolve(initial, "$light", fallbackLight)
	}
}

// Build resolves every key of legacy into a palette. Keys without a base value are left out.
// The Text entry is always present.
func Build(legacy, initial *scss.Declarations) *Colors {
	colors := ordered.New[Color]()

	for _, key := range Keys(legacy) {
		base, ok := Base(key, legacy, initial)
		if !ok {
			log.Debugf("No base value for color %q", key)
			continue
		}

		color := Color{Base: base, Invert: FindInvert(key, legacy, initial)}
		colors.Set(key, color)
		log.Debugf("Palette %s: (%s, %s)", key, color.Base, color.Invert)
	}

	colors.SetIfAbsent(Text, Color{Base: Transparent, Invert: resolve(initial, "$dark", fallbackDark)})

	return colors
}
