package scss

import (
	"errors"
	"strings"
	"testing"

	"github.com/bulmaswatch/swatchport/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestParseLine(t *testing.T) {
	Convey("ParseLine", t, func() {
		parse := func(line string) []any {
			name, value, ok := ParseLine(line)
			return []any{name, value, ok}
		}

		Convey("Recovers a plain declaration", func() {
			So(parse("$brand-primary: #3498db;"), ShouldResemble, []any{"$brand-primary", "#3498db", true})
		})

		Convey("Drops the !default marker", func() {
			So(parse("  $gray-dark:   #7b8a8b !default;"), ShouldResemble, []any{"$gray-dark", "#7b8a8b", true})
		})

		Convey("Strips comments before the terminator", func() {
			So(parse("$navbar-height: 60px // tall navbar;"), ShouldResemble, []any{"$navbar-height", "60px", true})
			So(parse("$radius: 4px /* rounded */;"), ShouldResemble, []any{"$radius", "4px", true})
		})

		Convey("Strips comments after the terminator", func() {
			So(parse("$brand-primary: darken(#428bca, 6.5%) !default; // #337ab7"),
				ShouldResemble, []any{"$brand-primary", "darken(#428bca, 6.5%)", true})
		})

		Convey("Strips one trailing map separator", func() {
			So(parse("$grid-breakpoints: (xs: 0, sm: 576px),;"), ShouldResemble, []any{"$grid-breakpoints", "(xs: 0, sm: 576px)", true})
		})

		Convey("Keeps list and expression values as raw text", func() {
			So(parse(`$font-family-sans-serif: "Helvetica Neue", Helvetica, Arial, sans-serif;`),
				ShouldResemble, []any{"$font-family-sans-serif", `"Helvetica Neue", Helvetica, Arial, sans-serif`, true})
			So(parse("$padding: ($spacer * .5) $spacer;"), ShouldResemble, []any{"$padding", "($spacer * .5) $spacer", true})
		})

		Convey("Tolerates CRLF line endings", func() {
			So(parse("$gray: #95a5a6;\r\n"), ShouldResemble, []any{"$gray", "#95a5a6", true})
		})

		Convey("Ignores comment lines", func() {
			So(parse("// $brand-primary: red;")[2], ShouldBeFalse)
			So(parse("  /* $brand-primary: red; */")[2], ShouldBeFalse)
		})

		Convey("Ignores anything else", func() {
			for _, line := range []string{
				"",
				".navbar { color: red; }",
				"@import 'bootstrap';",
				"$map: (",
				"  primary: $blue,",
				"$missing-terminator: red",
				"$empty: /* nothing */;",
			} {
				So(parse(line)[2], ShouldBeFalse)
			}
		})
	})
}

func TestExtract(t *testing.T) {
	Convey("Given a fragment with a redefined variable", t, func() {
		fragment := strings.Join([]string{
			"// Cosmo",
			"$brand-primary: #2780e3 !default;",
			"$brand-success: #3fb618;",
			".btn { padding: 0; }",
			"$brand-primary: #000;",
		}, "\n")

		decls, err := Extract(strings.NewReader(fragment))
		So(err, ShouldBeNil)

		Convey("The first occurrence wins and order is kept", func() {
			So(decls.Keys(), ShouldResemble, []string{"$brand-primary", "$brand-success"})
			v, _ := decls.Get("$brand-primary")
			So(v, ShouldEqual, "#2780e3")
		})
	})
}

func TestExtractTheme(t *testing.T) {
	fs := filesystem.API()

	Convey("Given a theme with both fragments", t, func() {
		So(fs.WriteFile("/old/flatly/_variables.scss", []byte("$brand-primary: #2c3e50;\n$gray: #95a5a6;\n"), 0o644), ShouldBeNil)
		So(fs.WriteFile("/old/flatly/_bootswatch.scss", []byte("$brand-primary: #ffffff;\n$web-font-path: \"x\";\n"), 0o644), ShouldBeNil)

		decls, warnings := ExtractTheme("/old/flatly")

		Convey("The primary fragment wins", func() {
			So(warnings, ShouldBeEmpty)
			v, _ := decls.Get("$brand-primary")
			So(v, ShouldEqual, "#2c3e50")
			So(decls.Keys(), ShouldResemble, []string{"$brand-primary", "$gray", "$web-font-path"})
		})
	})

	Convey("Given a theme with only the secondary fragment", t, func() {
		So(fs.WriteFile("/old/lux/_bootswatch.scss", []byte("$brand-info: #1f9bcf;\n"), 0o644), ShouldBeNil)

		decls, warnings := ExtractTheme("/old/lux")

		Convey("The missing fragment is a warning", func() {
			So(warnings, ShouldHaveLength, 1)
			So(errors.Is(warnings[0], ErrMissingFragment), ShouldBeTrue)
			So(decls.Len(), ShouldEqual, 1)
		})
	})

	Convey("Given a missing fragment file", t, func() {
		decls, err := ExtractFile("/old/none/_variables.scss")

		Convey("An empty set is returned with ErrMissingFragment", func() {
			So(errors.Is(err, ErrMissingFragment), ShouldBeTrue)
			So(decls.Len(), ShouldEqual, 0)
		})
	})
}

func TestMerge(t *testing.T) {
	Convey("Merge keeps existing declarations", t, func() {
		dst := NewDeclarations()
		dst.Set("$a", "1")
		src := NewDeclarations()
		src.Set("$a", "2")
		src.Set("$b", "3")

		Merge(dst, src)
		So(dst.Keys(), ShouldResemble, []string{"$a", "$b"})
		v, _ := dst.Get("$a")
		So(v, ShouldEqual, "1")
	})
}
