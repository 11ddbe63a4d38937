package render

import (
	"regexp"
	"strings"

	"github.com/bulmaswatch/swatchport/mapping"
	"github.com/samber/lo"
)

var (
	numberPattern   = regexp.MustCompile(`^[+-]?(\d|\.\d)`)
	functionPattern = regexp.MustCompile(`^[a-zA-Z_-][\w.-]*\(`)
)

// bareKeywords render without quotes, compared case-insensitively.
var bareKeywords = []string{
	"inherit",
	"transparent",
	"initial",
	"unset",
	"none",
	"auto",
	"ease-out",
	"ease-in",
	"ease-in-out",
	"linear",
	"light",
	"dark",
}

var barePrefixes = []string{`"`, "'", "$", "#", mapping.ReferencePrefix, "dv."}

// Quote renders a CSS variable value for the register-vars map. References, numbers, variables,
// hex colors, interpolations, function calls, percentages and known keywords stay bare.
// Anything else is treated as a string and double-quoted.
func Quote(value mapping.CSSValue) string {
	if value.IsReference() {
		return value.String()
	}

	text := value.Value
	lower := strings.ToLower(text)

	switch {
	case lo.SomeBy(barePrefixes, func(prefix string) bool { return strings.HasPrefix(lower, prefix) }):
	case strings.HasSuffix(text, "%"):
	case numberPattern.MatchString(text):
	case functionPattern.MatchString(text):
	case lo.Contains(bareKeywords, lower):
	default:
		return `"` + text + `"`
	}

	return text
}
