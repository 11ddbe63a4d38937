// Package icon renders status symbols in the variant chosen by the icons.variant setting.
package icon

import (
	"github.com/bulmaswatch/swatchport/key"
	"github.com/spf13/viper"
)

// Visual Variant Constants - these define the supported styles for icon rendering.
const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// Icon identifies a symbol of the registry.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Warn
	Skip
	Progress
	Theme
	File
	Question
)

// iconDef holds one symbol in every variant.
type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

// Get returns the symbol for the configured variant.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "🎉", nerd: "", plain: "✓", squares: "🟩"},
	Fail:     {emoji: "💀", nerd: "", plain: "✗", squares: "🟥"},
	Warn:     {emoji: "⚠️", nerd: "", plain: "!", squares: "🟨"},
	Skip:     {emoji: "💤", nerd: "", plain: "-", squares: "⬜"},
	Progress: {emoji: "⏳", nerd: "", plain: "~", squares: "🟦"},
	Theme:    {emoji: "🎨", nerd: "", plain: "#", squares: "🟪"},
	File:     {emoji: "📄", nerd: "", plain: "*", squares: "⬛"},
	Question: {emoji: "❓", nerd: "", plain: "?", squares: "🟧"},
}

// Get returns the rendered string for a specified Icon identifier from the global registry.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	return def.Get()
}
