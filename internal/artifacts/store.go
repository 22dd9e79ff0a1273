// Package artifacts handles reading and writing compiler inputs and outputs on disk.
package artifacts

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/davide/cairo-compile-gateway/internal/types"
)

// NotTextError indicates a file whose content is not valid UTF-8.
type NotTextError struct {
	Path string
}

func (e *NotTextError) Error() string {
	return fmt.Sprintf("file %s is not valid UTF-8 text", e.Path)
}

// EnsureParentDir creates every missing ancestor directory of path.
// It is idempotent: an already-existing directory is not an error.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(path string, data []byte) error {
	if err := EnsureParentDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// ReadText reads path fully as UTF-8 text. Non-text content yields a
// *NotTextError; a missing file surfaces the underlying fs error.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", &NotTextError{Path: path}
	}
	return string(data), nil
}

// ListTextFiles walks dir depth-first and returns every regular file that
// decodes as UTF-8 text, keyed by base name. Binary artifacts and unreadable
// entries are skipped, not reported. A missing dir yields an empty list.
// Entries come back in the walk's lexical order, so the result is
// deterministic for a given tree.
func ListTextFiles(dir string) ([]types.FileContentMap, error) {
	files := []types.FileContentMap{}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return files, nil
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entry: drop it and keep walking.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		content, err := ReadText(path)
		if err != nil {
			return nil
		}
		files = append(files, types.FileContentMap{
			FileName:    d.Name(),
			FileContent: content,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", dir, err)
	}

	return files, nil
}
