// Package scss extracts variable declarations from legacy Bootswatch stylesheet fragments.
package scss

import "github.com/bulmaswatch/swatchport/ordered"

// Sigil prefixes every SCSS variable name.
const Sigil = "$"

// Declarations maps sigil-prefixed variable names to their raw, unparsed value text in
// declaration order. The first value recorded for a name wins.
type Declarations = ordered.Map[string]

// NewDeclarations returns an empty declaration set.
func NewDeclarations() *Declarations {
	return ordered.New[string]()
}

// Merge copies every declaration of src that dst does not define yet.
// Calling it in precedence order makes the earlier sets win.
func Merge(dst, src *Declarations) {
	src.Each(func(name, value string) {
		dst.SetIfAbsent(name, value)
	})
}
