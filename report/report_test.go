package report

import (
	"errors"
	"testing"

	"github.com/bulmaswatch/swatchport/filesystem"
	"github.com/bulmaswatch/swatchport/manifest"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestReport(t *testing.T) {
	Convey("Given a report", t, func() {
		r := New("/new_themes", "/new_themes/generated_themes.json")
		r.Add(&Theme{Name: "cosmo", Status: Succeeded})
		r.Add(&Theme{Name: "empty", Status: Skipped})
		r.Add(&Theme{Name: "broken", Status: Failed, Error: "boom"})
		r.Add(&Theme{Name: "flatly", Status: Succeeded})
		r.Finish()

		Convey("Themes are counted by status", func() {
			So(r.Count(Succeeded), ShouldEqual, 2)
			So(r.Count(Skipped), ShouldEqual, 1)
			So(r.Named(Failed), ShouldResemble, []string{"broken"})
		})

		Convey("A failed theme makes the run not OK", func() {
			So(r.OK(), ShouldBeFalse)
		})

		Convey("The duration is never negative", func() {
			So(r.Duration() >= 0, ShouldBeTrue)
		})
	})

	Convey("A clean run is OK until a file or batch error is recorded", t, func() {
		r := New("/out", "/out/m.json")
		r.Add(&Theme{Name: "lux", Status: Succeeded})
		So(r.OK(), ShouldBeTrue)

		r.Note("nothing generated")
		So(r.OK(), ShouldBeTrue)

		r.FileErrors = append(r.FileErrors, manifest.FileError{Path: "lux/lux.scss", Err: "denied"})
		So(r.OK(), ShouldBeFalse)

		r.FileErrors = nil
		r.Fail(errors.New("utilities missing"))
		So(r.OK(), ShouldBeFalse)
	})
}

func TestStore(t *testing.T) {
	Convey("Given a saved report", t, func() {
		r := New("/out", "/out/m.json")
		r.Add(&Theme{Name: "lux", Status: Succeeded, Files: []string{"lux/lux.scss"}})
		r.Finish()

		So(Save(r), ShouldBeNil)

		Convey("Last returns it", func() {
			last, err := Last()
			So(err, ShouldBeNil)
			So(last.IsPresent(), ShouldBeTrue)
			So(last.MustGet().Themes[0].Name, ShouldEqual, "lux")
		})

		Convey("Forget removes it", func() {
			So(Forget(), ShouldBeNil)
			last, err := Last()
			So(err, ShouldBeNil)
			So(last.IsPresent(), ShouldBeFalse)
		})
	})
}
