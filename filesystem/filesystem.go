// Package filesystem routes every read and write of swatchport through one swappable afero backend.
//
// Production runs use the operating system; tests swap in an in-memory tree so legacy themes
// and generated output never touch the disk.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// Use replaces the backend with an arbitrary afero filesystem.
func Use(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	Use(afero.NewOsFs())
}

// SetMemMapFs installs a fresh in-memory backend. Anything written before the call is discarded.
func SetMemMapFs() {
	Use(afero.NewMemMapFs())
}
