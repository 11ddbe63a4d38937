package config

import (
	"encoding/json"
	"testing"

	"github.com/bulmaswatch/swatchport/filesystem"
	"github.com/bulmaswatch/swatchport/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should populate every default", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.PathsLegacyThemes), ShouldEqual, "old")
			So(viper.GetBool(key.MigrateCopyUtilities), ShouldBeTrue)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("paths.legacy_themes"), ShouldEqual, "paths_legacy_themes")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.PathsOutput]

		Convey("Its environment variable carries the application prefix", func() {
			So(field.Env(), ShouldEqual, "SWATCHPORT_PATHS_OUTPUT")
		})

		Convey("It marshals with its type and default", func() {
			data, err := json.Marshal(&field)
			So(err, ShouldBeNil)

			var decoded map[string]any
			So(json.Unmarshal(data, &decoded), ShouldBeNil)
			So(decoded["type"], ShouldEqual, "string")
			So(decoded["default"], ShouldEqual, "new_themes")
		})

		Convey("It renders a pretty description", func() {
			So(field.Pretty(), ShouldContainSubstring, key.PathsOutput)
		})

		Convey("Values are parsed to the type of the default", func() {
			copyUtilities := Default[key.MigrateCopyUtilities]

			v, err := copyUtilities.Parse([]string{"false"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, false)

			_, err = copyUtilities.Parse([]string{"sometimes"})
			So(err, ShouldNotBeNil)

			v, err = field.Parse([]string{"dist"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "dist")

			_, err = field.Parse(nil)
			So(err, ShouldNotBeNil)
		})
	})
}
