// Package fileio provides text file and filesystem helpers
package fileio

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/dperussina/code-library/pkg/errors"
)

// ReadLines reads a text file and returns its lines with surrounding
// whitespace trimmed.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrorTypeNotFound, "file not found: %s", path)
		}
		return nil, errors.Wrapf(err, errors.ErrorTypeFile, "failed to open %s", path)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	// Allow lines up to 1MB
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrorTypeFile, "failed to read %s", path)
	}

	return lines, nil
}

// WriteLines writes lines to a text file, one per line. When overwrite is
// false the lines are appended to an existing file.
func WriteLines(path string, lines []string, overwrite bool) error {
	flags := os.O_CREATE | os.O_WRONLY
	if overwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return errors.Wrapf(err, errors.ErrorTypeFile, "failed to open %s for writing", path)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return errors.Wrapf(err, errors.ErrorTypeFile, "failed to write to %s", path)
		}
	}
	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, errors.ErrorTypeFile, "failed to flush %s", path)
	}

	return nil
}

// ListFiles returns paths in dir matching the glob pattern.
func ListFiles(dir, pattern string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, errors.Newf(errors.ErrorTypeNotFound, "directory not found: %s", dir)
	}

	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrorTypeValidation, "invalid pattern %q", pattern)
	}

	return matches, nil
}

// EnsureDir creates a directory, including parents, if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrorTypeFile, "failed to create directory %s", dir)
	}
	return nil
}

// Exists reports whether a file or directory exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile reports whether path is an existing regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path is an existing directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
