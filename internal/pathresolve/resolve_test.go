package pathresolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSearchPath(t *testing.T) {
	cases := []struct {
		value string
		want  []string
	}{
		{"/usr/local/bin:/usr/bin:/bin", []string{"/usr/local/bin", "/usr/bin", "/bin"}},
		{"/bin", []string{"/bin"}},
		{"::/bin::/sbin:", []string{"/bin", "/sbin"}},
		{"", nil},
	}

	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitSearchPath(tc.value))
		})
	}
}

func newTestFs(t *testing.T, files ...string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, f, []byte("#!/bin/sh\n"), 0755))
	}
	return fs
}

func TestResolve(t *testing.T) {
	fs := newTestFs(t,
		"/opt/tools/only-here",
		"/usr/bin/ls",
		"/bin/ls",
		"/bin/notes.txt",
	)
	require.NoError(t, fs.MkdirAll("/usr/bin/subdir", 0755))
	dirs := []string{"/usr/local/bin", "/usr/bin", "/opt/tools", "/bin"}
	r := New(fs)

	cases := []struct {
		name  string
		want  string
		found bool
	}{
		{"only-here", "/opt/tools/only-here", true},
		{"ls", "/usr/bin/ls", true},
		// Any entry matches, not just executables.
		{"notes.txt", "/bin/notes.txt", true},
		{"subdir", "/usr/bin/subdir", true},
		{"missing", "", false},
		{"", "", false},
		{"/bin/ls", "/bin/ls", true},
		{"/nowhere/ls", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, found := r.Resolve(tc.name, dirs)

			assert.Equal(t, tc.found, found)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveNoSearchPath(t *testing.T) {
	r := New(newTestFs(t, "/bin/ls"))

	_, found := r.Resolve("ls", nil)

	assert.False(t, found)
}

func TestResolveOS(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()
	target := filepath.Join(dir, "mytool")
	require.NoError(t, os.WriteFile(target, []byte("#!/bin/sh\n"), 0755))

	// A dangling symlink is still a directory entry.
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), filepath.Join(other, "dangling")))

	r := NewOS()

	got, found := r.Resolve("mytool", []string{other, dir})
	assert.True(t, found)
	assert.Equal(t, target, got)

	got, found = r.Resolve("dangling", []string{dir, other})
	assert.True(t, found)
	assert.Equal(t, filepath.Join(other, "dangling"), got)
}
