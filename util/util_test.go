package util

import (
	"path/filepath"
	"regexp"
	"testing"

	"github.com/bulmaswatch/swatchport/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "theme", "themes"), ShouldEqual, "1 theme")
		So(Quantify(2, "theme", "themes"), ShouldEqual, "2 themes")
		So(Quantify(0, "theme", "themes"), ShouldEqual, "0 themes")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("cerulean"), ShouldEqual, "Cerulean")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestReGroups(t *testing.T) {
	Convey("ReGroups", t, func() {
		re := regexp.MustCompile(`(?P<first>\w+)\s(?P<last>\w+)`)

		Convey("Maps named groups of a match", func() {
			groups := ReGroups(re, "John Doe")
			So(groups["first"], ShouldEqual, "John")
			So(groups["last"], ShouldEqual, "Doe")
		})

		Convey("Is empty without a match", func() {
			So(ReGroups(re, "single"), ShouldBeEmpty)
		})
	})
}

func TestMax(t *testing.T) {
	Convey("Max", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestCopyDir(t *testing.T) {
	Convey("Given a utilities tree", t, func() {
		fs := filesystem.API()
		So(fs.WriteFile("/src/utilities/functions.scss", []byte("@function x() {}"), 0o644), ShouldBeNil)
		So(fs.WriteFile("/src/utilities/nested/setup.scss", []byte("// setup"), 0o644), ShouldBeNil)

		Convey("It is copied verbatim", func() {
			So(CopyDir("/src/utilities", "/out/utilities"), ShouldBeNil)

			data := lo.Must(fs.ReadFile("/out/utilities/nested/setup.scss"))
			So(string(data), ShouldEqual, "// setup")
			So(lo.Must(fs.Exists("/out/utilities/functions.scss")), ShouldBeTrue)
		})

		Convey("A stale copy is replaced", func() {
			So(fs.WriteFile("/out/utilities/stale.scss", []byte("old"), 0o644), ShouldBeNil)
			So(CopyDir("/src/utilities", "/out/utilities"), ShouldBeNil)
			So(lo.Must(fs.Exists("/out/utilities/stale.scss")), ShouldBeFalse)
		})

		Convey("A missing source is an error", func() {
			So(CopyDir("/nope", "/out/nope"), ShouldNotBeNil)
		})

		Convey("Overlapping directories are refused untouched", func() {
			So(CopyDir("/src/utilities", "/src/utilities"), ShouldNotBeNil)
			So(CopyDir("/src/utilities", "/src/utilities/nested"), ShouldNotBeNil)
			So(CopyDir("/src/utilities/nested", "/src"), ShouldNotBeNil)
			So(lo.Must(fs.Exists("/src/utilities/nested/setup.scss")), ShouldBeTrue)
		})

		Convey("Sibling prefixes do not count as overlap", func() {
			So(IsWithin("/src/utilities", "/src/utilities-copy"), ShouldBeFalse)
			So(IsWithin("/src", "/src/utilities"), ShouldBeTrue)
		})

		Convey("Delete removes the copy", func() {
			So(CopyDir("/src/utilities", "/out/utilities"), ShouldBeNil)
			So(Delete(filepath.Join("/out", "utilities")), ShouldBeNil)
			So(lo.Must(fs.Exists("/out/utilities")), ShouldBeFalse)
		})
	})
}
