package theme

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/bulmaswatch/swatchport/mapping"
	"github.com/bulmaswatch/swatchport/scss"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTransform(t *testing.T) {
	Convey("Given a legacy theme declaring only the brand primary", t, func() {
		decls := scss.NewDeclarations()
		decls.Set("$brand-primary", "#3498db")

		model, err := Transform("Flatly", decls)
		So(err, ShouldBeNil)

		Convey("The primary is mapped and every default is intact", func() {
			v, _ := model.InitialVars.Get("$primary")
			So(v, ShouldEqual, "#3498db")

			for _, entry := range mapping.InitialDefaults {
				if entry.Key == "$primary" {
					continue
				}
				got, ok := model.InitialVars.Get(entry.Key)
				So(ok, ShouldBeTrue)
				So(got, ShouldEqual, entry.Value)
			}
		})

		Convey("The palette carries the primary pair", func() {
			c, ok := model.Colors.Get("primary")
			So(ok, ShouldBeTrue)
			So(c.Base, ShouldEqual, "#3498db")
			So(c.Invert, ShouldEqual, "$white-ter")
		})

		Convey("The slug is lower case", func() {
			So(model.Slug(), ShouldEqual, "flatly")
		})

		Convey("The model encodes in declaration order", func() {
			data, err := json.Marshal(model)
			So(err, ShouldBeNil)
			So(string(data), ShouldStartWith, `{"name":"Flatly","initial_vars":{"$scheme-h":"221"`)
		})
	})

	Convey("Given a theme with no declarations", t, func() {
		_, err := Transform("empty", scss.NewDeclarations())

		Convey("ErrNoDeclarations is returned", func() {
			So(errors.Is(err, ErrNoDeclarations), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "empty")
		})
	})

	Convey("Given a nameless theme", t, func() {
		decls := scss.NewDeclarations()
		decls.Set("$gray", "#999")
		_, err := Transform("", decls)
		So(err, ShouldNotBeNil)
	})
}
