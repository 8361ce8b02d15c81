package internalmatch

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// IsChildName tells whether name can only ever denote an immediate child of a directory
func IsChildName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}

	return !strings.ContainsRune(name, os.PathSeparator) && !strings.ContainsRune(name, '/')
}

// Dir tells whether dir/name exists and is a directory.
//
// Links are followed.
func Dir(fs afero.Fs, dir, name string) bool {
	info, ok := stat(fs, dir, name)

	return ok && info.IsDir()
}

// File tells whether dir/name exists and is a regular file.
//
// Links are followed.
func File(fs afero.Fs, dir, name string) bool {
	info, ok := stat(fs, dir, name)

	return ok && info.Mode().IsRegular()
}

func stat(fs afero.Fs, dir, name string) (os.FileInfo, bool) {
	if !IsChildName(name) {
		return nil, false
	}
	// Any error (missing child, permissions) just means no match
	info, err := fs.Stat(filepath.Join(dir, name))
	if err != nil {
		return nil, false
	}

	return info, true
}
