// Package manifest persists generated files as a flat path to content document and
// materializes them into a directory tree.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bulmaswatch/swatchport/filesystem"
	"github.com/bulmaswatch/swatchport/log"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Files maps slash-separated paths, relative to the output root, to file contents.
type Files map[string]string

// Paths returns the file paths in sorted order.
func (f Files) Paths() []string {
	paths := lo.Keys(f)
	slices.Sort(paths)
	return paths
}

// Merge copies every file of other into f, replacing existing paths.
func (f Files) Merge(other Files) {
	for p, content := range other {
		f[p] = content
	}
}

// Encode serializes files as indented JSON with sorted keys. Markup characters are kept verbatim.
func (f Files) Encode() ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(map[string]string(f)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Write saves files to path, creating parent directories.
func Write(path string, files Files) error {
	data, err := files.Encode()
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	fs := filesystem.API()
	if err := fs.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}

	if err := fs.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	log.Infof("Wrote manifest %s (%d files)", path, len(files))
	return nil
}

// Read loads a manifest written by Write.
func Read(path string) (Files, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var files Files
	if err := json.Unmarshal(data, &files); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", path, err)
	}

	if files == nil {
		files = Files{}
	}

	return files, nil
}

// FileError is a failed write of one materialized file.
type FileError struct {
	Path string `json:"path"`
	Err  string `json:"error"`
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

// Result lists what Materialize wrote and what it could not.
type Result struct {
	Written []string    `json:"written"`
	Failed  []FileError `json:"failed,omitempty"`
}

// OK reports whether every file was written.
func (r *Result) OK() bool {
	return len(r.Failed) == 0
}

// Materialize writes every file under root in path order. A failing file is recorded and the
// remaining files are still written.
func Materialize(files Files, root string) *Result {
	fs := filesystem.API()
	result := &Result{}

	for _, p := range files.Paths() {
		target := filepath.Join(root, filepath.FromSlash(p))

		err := fs.MkdirAll(filepath.Dir(target), os.ModePerm)
		if err == nil {
			err = fs.WriteFile(target, []byte(files[p]), 0o644)
		}

		if err != nil {
			log.Errorf("Materialize %s: %s", target, err)
			result.Failed = append(result.Failed, FileError{Path: p, Err: err.Error()})
			continue
		}

		log.Debugf("Wrote %s", target)
		result.Written = append(result.Written, p)
	}

	return result
}

// Themes returns the sorted theme directories named by files.
func (f Files) Themes() []string {
	return lo.Uniq(lo.FilterMap(f.Paths(), func(p string, _ int) (string, bool) {
		dir, _, found := strings.Cut(p, "/")
		return dir, found
	}))
}
