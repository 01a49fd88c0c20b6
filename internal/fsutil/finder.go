// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// FindFile walks rootPath in lexical order and returns the first regular file
// whose base name equals name, ignoring case. An empty path and a nil error
// mean nothing matched.
func FindFile(rootPath string, name string) (string, error) {
	if name == "" {
		panic("name must not be empty")
	}

	var found string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(d.Name(), name) {
			found = path
			return fs.SkipAll
		}
		return nil
	})

	if err != nil {
		return "", err
	}

	return found, nil
}
