// Package migrate drives a batch run: every legacy theme is extracted, transformed and rendered
// in name order, the generated files are persisted as a manifest and then written out.
package migrate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bulmaswatch/swatchport/constant"
	"github.com/bulmaswatch/swatchport/filesystem"
	"github.com/bulmaswatch/swatchport/key"
	"github.com/bulmaswatch/swatchport/log"
	"github.com/bulmaswatch/swatchport/manifest"
	"github.com/bulmaswatch/swatchport/render"
	"github.com/bulmaswatch/swatchport/report"
	"github.com/bulmaswatch/swatchport/scss"
	"github.com/bulmaswatch/swatchport/theme"
	"github.com/bulmaswatch/swatchport/util"
	"github.com/bulmaswatch/swatchport/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// Options configure a run.
type Options struct {
	LegacyRoot    string
	OutputRoot    string
	Utilities     string
	Manifest      string
	CopyUtilities bool
	SaveReport    bool

	// Themes restricts the run to these theme directories. Empty means all of them.
	Themes []string

	// OnTheme is called before each theme is processed.
	OnTheme func(index, total int, name string)
}

// DefaultOptions reads the options from the configuration.
func DefaultOptions() Options {
	return Options{
		LegacyRoot:    where.LegacyThemes(),
		OutputRoot:    where.Output(),
		Utilities:     where.Utilities(),
		Manifest:      where.Manifest(),
		CopyUtilities: viper.GetBool(key.MigrateCopyUtilities),
		SaveReport:    viper.GetBool(key.MigrateSaveReport),
	}
}

// Discover lists the theme directories under root in sorted order.
func Discover(root string) ([]string, error) {
	entries, err := filesystem.API().ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("list legacy themes: %w", err)
	}

	themes := lo.FilterMap(entries, func(entry os.FileInfo, _ int) (string, bool) {
		return entry.Name(), entry.IsDir()
	})
	slices.Sort(themes)

	return themes, nil
}

// Process turns one legacy theme directory into its generated files. Failures, panics included,
// are reported through the returned outcome and never escape.
func Process(dir, name string) (files manifest.Files, outcome *report.Theme) {
	outcome = &report.Theme{Name: name}

	defer func() {
		if r := recover(); r != nil {
			files = nil
			outcome.Status = report.Failed
			outcome.Error = fmt.Sprintf("panic: %v", r)
			log.Errorf("Theme %s panicked: %v", name, r)
		}
	}()

	decls, warnings := scss.ExtractTheme(dir)
	for _, warning := range warnings {
		outcome.Warnings = append(outcome.Warnings, warning.Error())
	}

	model, err := theme.Transform(name, decls)
	if errors.Is(err, theme.ErrNoDeclarations) {
		outcome.Status = report.Skipped
		outcome.Error = err.Error()
		log.Warnf("Skipping %s: %s", name, err)
		return nil, outcome
	}
	if err != nil {
		return fail(outcome, fmt.Errorf("transform %s: %w", name, err))
	}

	files, err = render.Render(model)
	if err != nil {
		return fail(outcome, fmt.Errorf("render %s: %w", name, err))
	}

	outcome.Status = report.Succeeded
	outcome.Files = files.Paths()
	log.Infof("Generated %s", name)

	return files, outcome
}

func fail(outcome *report.Theme, err error) (manifest.Files, *report.Theme) {
	outcome.Status = report.Failed
	outcome.Error = err.Error()
	log.Error(err)
	return nil, outcome
}

// ErrUnknownTheme is returned when a requested theme has no legacy directory.
var ErrUnknownTheme = errors.New("unknown theme")

// UnknownThemeError names the requested theme and the themes that do exist.
type UnknownThemeError struct {
	Name  string
	Known []string
}

func (e *UnknownThemeError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownTheme, e.Name)
}

func (e *UnknownThemeError) Is(target error) bool {
	return target == ErrUnknownTheme
}

// Run migrates the selected themes. Only a missing legacy root stops it early; every other problem
// is recorded in the returned report.
func Run(opts Options) (*report.Report, error) {
	themes, err := Discover(opts.LegacyRoot)
	if err != nil {
		return nil, err
	}

	if len(opts.Themes) > 0 {
		for _, name := range opts.Themes {
			if !lo.Contains(themes, name) {
				return nil, &UnknownThemeError{Name: name, Known: themes}
			}
		}
		themes = lo.Filter(themes, func(name string, _ int) bool {
			return lo.Contains(opts.Themes, name)
		})
	}

	log.Infof("Migrating %s from %s", util.Quantify(len(themes), "theme", "themes"), opts.LegacyRoot)

	run := report.New(opts.OutputRoot, opts.Manifest)
	files := manifest.Files{}

	for i, name := range themes {
		if opts.OnTheme != nil {
			opts.OnTheme(i, len(themes), name)
		}

		generated, outcome := Process(filepath.Join(opts.LegacyRoot, name), name)
		run.Add(outcome)
		files.Merge(generated)
	}

	Persist(run, files, opts)

	if opts.CopyUtilities {
		if err := CopyUtilities(opts.Utilities, opts.OutputRoot); err != nil {
			log.Warn(err)
			run.Fail(err)
		}
	}

	run.Finish()

	if opts.SaveReport {
		if err := report.Save(run); err != nil {
			log.Warnf("save report: %s", err)
		}
	}

	return run, nil
}

// ErrNothingGenerated is noted on the report when no theme produced any file.
var ErrNothingGenerated = errors.New("no themes were generated, manifest left untouched")

// Persist writes the manifest and materializes the files it holds. A run that generated nothing
// leaves the manifest and output alone. A run restricted to some themes merges its files into the
// existing manifest. When the manifest cannot be written or read back the in-memory files are
// materialized instead.
func Persist(run *report.Report, files manifest.Files, opts Options) {
	if len(files) == 0 {
		log.Warn(ErrNothingGenerated)
		run.Note(ErrNothingGenerated.Error())
		return
	}

	if len(opts.Themes) > 0 {
		files = withPrevious(run, files, opts.Manifest)
	}

	source := files

	if err := manifest.Write(opts.Manifest, files); err != nil {
		log.Error(err)
		run.Fail(err)
	} else if stored, err := manifest.Read(opts.Manifest); err != nil {
		log.Error(err)
		run.Fail(err)
	} else {
		source = stored
	}

	result := manifest.Materialize(source, opts.OutputRoot)
	run.FileErrors = append(run.FileErrors, result.Failed...)
}

// withPrevious returns the manifest at path with files merged over it.
func withPrevious(run *report.Report, files manifest.Files, path string) manifest.Files {
	if exists, _ := filesystem.API().Exists(path); !exists {
		return files
	}

	previous, err := manifest.Read(path)
	if err != nil {
		log.Warn(err)
		run.Fail(err)
		return files
	}

	log.Infof("Merging into %s", util.Quantify(len(previous.Themes()), "existing theme", "existing themes"))
	previous.Merge(files)
	return previous
}

// CopyUtilities replaces the utilities directory of the output tree with a fresh copy of src.
func CopyUtilities(src, outputRoot string) error {
	dst := filepath.Join(outputRoot, constant.UtilitiesDir)

	if exists, _ := filesystem.API().DirExists(src); !exists {
		return fmt.Errorf("utilities directory %s not found", src)
	}

	if err := util.CopyDir(src, dst); err != nil {
		return fmt.Errorf("copy utilities: %w", err)
	}

	log.Infof("Copied utilities to %s", dst)
	return nil
}

// Materialize rebuilds the output tree from an existing manifest.
func Materialize(manifestPath, outputRoot string) (*manifest.Result, error) {
	files, err := manifest.Read(manifestPath)
	if err != nil {
		return nil, err
	}
	return manifest.Materialize(files, outputRoot), nil
}
