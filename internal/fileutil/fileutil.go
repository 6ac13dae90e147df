// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"os"
	"strings"
)

// ErrEmptyFileName indicates a name that sanitizes down to nothing.
var ErrEmptyFileName = errors.New("file name cannot be empty")

// unsafeNameChars are characters rejected by at least one common filesystem.
const unsafeNameChars = `<>:"/\|?*`

// SanitizeFileName makes a string safe for use as a file name: spaces become
// underscores and filesystem-reserved characters are dropped.
func SanitizeFileName(name string) (string, error) {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r == ' ':
			b.WriteByte('_')
		case strings.ContainsRune(unsafeNameChars, r) || r == 0:
			// dropped
		default:
			b.WriteRune(r)
		}
	}
	result := strings.Trim(b.String(), ". ")
	if result == "" {
		return "", ErrEmptyFileName
	}
	return result, nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// RemoveDirIfEmpty removes the directory when it contains no entries.
// A missing directory is not an error.
func RemoveDirIfEmpty(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if len(entries) > 0 {
		return nil
	}
	return os.Remove(path)
}
