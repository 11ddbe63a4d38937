package migrate

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/bulmaswatch/swatchport/filesystem"
	"github.com/bulmaswatch/swatchport/manifest"
	"github.com/bulmaswatch/swatchport/report"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func init() {
	filesystem.SetMemMapFs()
}

// panicFs panics when a fragment of a directory named "boom" is opened.
type panicFs struct {
	afero.Fs
}

func (p panicFs) Open(name string) (afero.File, error) {
	if strings.Contains(name, "boom") {
		panic("corrupted fragment")
	}
	return p.Fs.Open(name)
}

// jsonlessFs refuses to open JSON files.
type jsonlessFs struct {
	afero.Fs
}

func (j jsonlessFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if strings.HasSuffix(name, ".json") {
		return nil, errors.New("read-only volume")
	}
	return j.Fs.OpenFile(name, flag, perm)
}

func write(path, content string) {
	So(filesystem.API().WriteFile(path, []byte(content), 0o644), ShouldBeNil)
}

func options() Options {
	return Options{
		LegacyRoot:    "/old",
		OutputRoot:    "/new_themes",
		Utilities:     "/utilities",
		Manifest:      "/new_themes/generated_themes.json",
		CopyUtilities: true,
	}
}

func seed() {
	filesystem.SetMemMapFs()
	write("/old/flatly/_variables.scss", "$brand-primary: #2c3e50 !default;\n$gray: #95a5a6;\n")
	write("/old/flatly/_bootswatch.scss", "$brand-primary: #000;\n")
	write("/old/cosmo/_bootswatch.scss", "$brand-info: #9954bb;\n")
	write("/old/empty/_variables.scss", "// nothing here\n")
	write("/old/README.md", "not a theme")
	write("/utilities/functions.scss", "@function x() {}")
	write("/utilities/mixins/buttons.scss", "@mixin y {}")
}

func TestDiscover(t *testing.T) {
	Convey("Given a legacy tree", t, func() {
		seed()

		Convey("Theme directories are listed in order", func() {
			themes, err := Discover("/old")
			So(err, ShouldBeNil)
			So(themes, ShouldResemble, []string{"cosmo", "empty", "flatly"})
		})

		Convey("A missing root is an error", func() {
			_, err := Discover("/missing")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestProcess(t *testing.T) {
	Convey("Given a legacy tree", t, func() {
		seed()

		Convey("A theme with one fragment succeeds with a warning", func() {
			files, outcome := Process("/old/cosmo", "cosmo")
			So(outcome.Status, ShouldEqual, report.Succeeded)
			So(outcome.Warnings, ShouldHaveLength, 1)
			So(files, ShouldHaveLength, 4)
			So(files["cosmo/initial-variables.scss"], ShouldContainSubstring, "$info: #9954bb;")
		})

		Convey("A theme without declarations is skipped", func() {
			files, outcome := Process("/old/empty", "empty")
			So(outcome.Status, ShouldEqual, report.Skipped)
			So(files, ShouldBeNil)
		})

		Convey("A panicking theme fails without escaping", func() {
			write("/old/boom/_variables.scss", "$brand-primary: red;\n")
			filesystem.Use(panicFs{Fs: filesystem.API().Fs})

			files, outcome := Process("/old/boom", "boom")
			So(outcome.Status, ShouldEqual, report.Failed)
			So(outcome.Error, ShouldContainSubstring, "corrupted fragment")
			So(files, ShouldBeNil)
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Given a legacy tree", t, func() {
		seed()

		run, err := Run(options())
		So(err, ShouldBeNil)

		Convey("Every theme has an outcome in order", func() {
			So(run.Named(report.Succeeded), ShouldResemble, []string{"cosmo", "flatly"})
			So(run.Named(report.Skipped), ShouldResemble, []string{"empty"})
			So(run.OK(), ShouldBeTrue)
		})

		Convey("The manifest lists the generated files", func() {
			data, err := filesystem.API().ReadFile("/new_themes/generated_themes.json")
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"flatly/flatly.scss"`)
			So(string(data), ShouldNotContainSubstring, "empty/")
		})

		Convey("The files are materialized", func() {
			data, err := filesystem.API().ReadFile("/new_themes/flatly/initial-variables.scss")
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, "$primary: #2c3e50;")
			So(string(data), ShouldContainSubstring, "$grey: #95a5a6;")
		})

		Convey("The utilities are copied", func() {
			data, err := filesystem.API().ReadFile("/new_themes/utilities/mixins/buttons.scss")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "@mixin y {}")
		})

		Convey("Running again produces byte-identical output", func() {
			first, _ := filesystem.API().ReadFile("/new_themes/flatly/flatly.scss")
			firstManifest, _ := filesystem.API().ReadFile("/new_themes/generated_themes.json")

			_, err := Run(options())
			So(err, ShouldBeNil)

			second, _ := filesystem.API().ReadFile("/new_themes/flatly/flatly.scss")
			secondManifest, _ := filesystem.API().ReadFile("/new_themes/generated_themes.json")
			So(string(second), ShouldEqual, string(first))
			So(string(secondManifest), ShouldEqual, string(firstManifest))
		})

		Convey("Stale utilities are replaced", func() {
			write("/new_themes/utilities/stale.scss", "old")
			_, err := Run(options())
			So(err, ShouldBeNil)

			exists, _ := filesystem.API().Exists("/new_themes/utilities/stale.scss")
			So(exists, ShouldBeFalse)
		})
	})

	Convey("Given a run restricted to some themes", t, func() {
		seed()
		opts := options()
		opts.Themes = []string{"flatly"}

		var seen []string
		opts.OnTheme = func(_, _ int, name string) { seen = append(seen, name) }

		run, err := Run(opts)
		So(err, ShouldBeNil)

		Convey("Only those themes are processed", func() {
			So(seen, ShouldResemble, []string{"flatly"})
			So(run.Themes, ShouldHaveLength, 1)
		})
	})

	Convey("Given an unknown theme", t, func() {
		seed()
		opts := options()
		opts.Themes = []string{"nope"}

		_, err := Run(opts)
		So(errors.Is(err, ErrUnknownTheme), ShouldBeTrue)

		var unknown *UnknownThemeError
		So(errors.As(err, &unknown), ShouldBeTrue)
		So(unknown.Name, ShouldEqual, "nope")
		So(unknown.Known, ShouldResemble, []string{"cosmo", "empty", "flatly"})
	})

	Convey("Given missing utilities", t, func() {
		seed()
		opts := options()
		opts.Utilities = "/gone"

		run, err := Run(opts)
		So(err, ShouldBeNil)

		Convey("The run still completes and records the problem", func() {
			So(run.Count(report.Succeeded), ShouldEqual, 2)
			So(run.Errors, ShouldHaveLength, 1)
		})
	})

	Convey("Given an output root that contains the utilities source", t, func() {
		seed()
		opts := options()
		opts.OutputRoot = "/"
		opts.Manifest = "/generated_themes.json"

		run, err := Run(opts)
		So(err, ShouldBeNil)

		Convey("The source is left intact and the problem recorded", func() {
			data, err := filesystem.API().ReadFile("/utilities/functions.scss")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "@function x() {}")
			So(run.Errors, ShouldHaveLength, 1)
			So(run.Errors[0], ShouldContainSubstring, "overlap")
		})
	})

	Convey("Given a run that generates nothing", t, func() {
		seed()
		write("/new_themes/generated_themes.json", `{"flatly/a.scss": "x"}`)
		opts := options()
		opts.Themes = []string{"empty"}

		run, err := Run(opts)
		So(err, ShouldBeNil)

		Convey("The earlier manifest is kept", func() {
			stored, err := manifest.Read("/new_themes/generated_themes.json")
			So(err, ShouldBeNil)
			So(stored, ShouldResemble, manifest.Files{"flatly/a.scss": "x"})
			So(run.Notes, ShouldResemble, []string{ErrNothingGenerated.Error()})
		})

		Convey("Nothing is materialized", func() {
			exists, _ := filesystem.API().Exists("/new_themes/flatly/a.scss")
			So(exists, ShouldBeFalse)
		})
	})

	Convey("Given a restricted run after a full one", t, func() {
		seed()
		_, err := Run(options())
		So(err, ShouldBeNil)
		write("/old/flatly/_variables.scss", "$brand-primary: #123456;\n")

		opts := options()
		opts.Themes = []string{"flatly"}
		_, err = Run(opts)
		So(err, ShouldBeNil)

		stored, err := manifest.Read("/new_themes/generated_themes.json")
		So(err, ShouldBeNil)

		Convey("Other themes stay in the manifest", func() {
			So(stored.Themes(), ShouldResemble, []string{"cosmo", "flatly"})
		})

		Convey("The restricted theme is updated", func() {
			So(stored["flatly/initial-variables.scss"], ShouldContainSubstring, "$primary: #123456;")
		})
	})

	Convey("Given an unwritable manifest location", t, func() {
		seed()
		filesystem.Use(jsonlessFs{Fs: filesystem.API().Fs})

		run, err := Run(options())
		So(err, ShouldBeNil)

		Convey("The files are materialized from memory", func() {
			So(run.Errors, ShouldNotBeEmpty)
			exists, _ := filesystem.API().Exists("/new_themes/cosmo/cosmo.scss")
			So(exists, ShouldBeTrue)
		})
	})
}

func TestMaterialize(t *testing.T) {
	Convey("Given a manifest from an earlier run", t, func() {
		seed()
		_, err := Run(options())
		So(err, ShouldBeNil)
		So(filesystem.API().RemoveAll("/new_themes/flatly"), ShouldBeNil)

		result, err := Materialize("/new_themes/generated_themes.json", "/new_themes")
		So(err, ShouldBeNil)

		Convey("The tree is rebuilt without the legacy themes", func() {
			So(result.OK(), ShouldBeTrue)
			exists, _ := filesystem.API().Exists("/new_themes/flatly/bulmaswatch.scss")
			So(exists, ShouldBeTrue)
		})
	})
}
