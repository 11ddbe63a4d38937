// Package report describes the outcome of a migration run and keeps the most recent one.
package report

import (
	"time"

	"github.com/bulmaswatch/swatchport/filesystem"
	"github.com/bulmaswatch/swatchport/manifest"
	"github.com/bulmaswatch/swatchport/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Status is the outcome of one theme.
type Status string

const (
	Succeeded Status = "succeeded"
	Skipped   Status = "skipped"
	Failed    Status = "failed"
)

// Theme records what happened to one legacy theme.
type Theme struct {
	Name     string   `json:"name"`
	Status   Status   `json:"status"`
	Files    []string `json:"files,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// Report summarizes a run.
type Report struct {
	Started    time.Time            `json:"started"`
	Finished   time.Time            `json:"finished"`
	Themes     []*Theme             `json:"themes"`
	Manifest   string               `json:"manifest"`
	Output     string               `json:"output"`
	Errors     []string             `json:"errors,omitempty"`
	Notes      []string             `json:"notes,omitempty"`
	FileErrors []manifest.FileError `json:"file_errors,omitempty"`
}

// New starts a report.
func New(output, manifestPath string) *Report {
	return &Report{
		Started:  time.Now(),
		Output:   output,
		Manifest: manifestPath,
	}
}

// Add records the outcome of a theme.
func (r *Report) Add(theme *Theme) {
	r.Themes = append(r.Themes, theme)
}

// Fail records a batch-level problem that did not stop the run.
func (r *Report) Fail(err error) {
	r.Errors = append(r.Errors, err.Error())
}

// Note records something worth telling the user that is not a failure.
func (r *Report) Note(message string) {
	r.Notes = append(r.Notes, message)
}

// Finish stamps the end time.
func (r *Report) Finish() {
	r.Finished = time.Now()
}

// Duration returns how long the run took.
func (r *Report) Duration() time.Duration {
	return r.Finished.Sub(r.Started)
}

// Count returns the number of themes with status.
func (r *Report) Count(status Status) int {
	return lo.CountBy(r.Themes, func(t *Theme) bool {
		return t.Status == status
	})
}

// Named returns the themes with status.
func (r *Report) Named(status Status) []string {
	return lo.FilterMap(r.Themes, func(t *Theme, _ int) (string, bool) {
		return t.Name, t.Status == status
	})
}

// OK reports whether no theme failed and every file was written.
func (r *Report) OK() bool {
	return r.Count(Failed) == 0 && len(r.FileErrors) == 0 && len(r.Errors) == 0
}

var cacher = gache.New[*Report](
	&gache.Options{
		Path:       where.Report(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Save stores r as the most recent run.
func Save(r *Report) error {
	return cacher.Set(r)
}

// Last returns the most recent stored run, if any.
func Last() (mo.Option[*Report], error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return mo.None[*Report](), err
	}

	if expired || cached == nil {
		return mo.None[*Report](), nil
	}

	return mo.Some(cached), nil
}

// Forget removes the stored run.
func Forget() error {
	return cacher.Set(nil)
}
