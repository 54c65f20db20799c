// Package pathresolve finds commands on a colon-separated search path.
package pathresolve

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// SplitSearchPath splits a colon-separated value such as $PATH into its
// directories, left to right. Empty segments are skipped.
func SplitSearchPath(value string) []string {
	var dirs []string
	for _, dir := range strings.Split(value, ":") {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// Resolver looks up command names in directories of Fs.
type Resolver struct {
	Fs afero.Fs
}

func New(fs afero.Fs) *Resolver {
	return &Resolver{Fs: fs}
}

// NewOS returns a Resolver backed by the real filesystem.
func NewOS() *Resolver {
	return New(afero.NewOsFs())
}

// Resolve returns the path of the first directory in dirs holding an entry
// named name. The entry is not checked for being executable or a regular
// file. A name containing a slash is taken as a path and returned as is when
// it exists.
func (r *Resolver) Resolve(name string, dirs []string) (string, bool) {
	if name == "" {
		return "", false
	}

	if strings.Contains(name, "/") {
		if r.exists(name) {
			return name, true
		}
		return "", false
	}

	for _, dir := range dirs {
		candidate := filepath.Join(dir, name)
		if r.exists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func (r *Resolver) exists(path string) bool {
	if lstater, ok := r.Fs.(afero.Lstater); ok {
		_, _, err := lstater.LstatIfPossible(path)
		return err == nil
	}
	_, err := r.Fs.Stat(path)
	return err == nil
}
