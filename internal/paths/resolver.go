// Package paths maps caller-supplied relative identifiers onto absolute
// locations under a fixed root directory.
package paths

import (
	"fmt"
	"path/filepath"
	"strings"
)

// InvalidPathError indicates a relative path that cannot be safely resolved
// under a root: empty, absolute, or containing traversal segments.
type InvalidPathError struct {
	Path   string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid path %q: %s", e.Path, e.Reason)
}

// Resolver joins validated relative paths onto a single root. Resolved paths
// are always descendants of the root.
type Resolver struct {
	root string
}

// NewResolver creates a Resolver for the given root directory.
func NewResolver(root string) *Resolver {
	return &Resolver{root: filepath.Clean(root)}
}

// Root returns the resolver's root directory.
func (r *Resolver) Root() string {
	return r.root
}

// Resolve validates rel and joins it under the root. Traversal segments,
// absolute paths, and empty paths are rejected rather than joined.
func (r *Resolver) Resolve(rel string) (string, error) {
	if rel == "" {
		return "", &InvalidPathError{Path: rel, Reason: "path is empty"}
	}
	// Callers may use either separator; normalize before validation.
	rel = filepath.FromSlash(rel)
	if filepath.IsAbs(rel) {
		return "", &InvalidPathError{Path: rel, Reason: "path must be relative"}
	}
	cleaned := filepath.Clean(rel)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", &InvalidPathError{Path: rel, Reason: "path escapes the root"}
	}
	if cleaned == "." {
		return "", &InvalidPathError{Path: rel, Reason: "path resolves to the root itself"}
	}
	return filepath.Join(r.root, cleaned), nil
}

// Ext returns the substring after the last dot of the final path element,
// or "" when the path has no extension.
func Ext(path string) string {
	base := filepath.Base(path)
	idx := strings.LastIndex(base, ".")
	if idx < 0 || idx == len(base)-1 {
		return ""
	}
	return base[idx+1:]
}

// ReplaceExt swaps the final extension of path for newExt. A path without an
// extension gets newExt appended.
func ReplaceExt(path, newExt string) string {
	if ext := Ext(path); ext != "" {
		return strings.TrimSuffix(path, ext) + newExt
	}
	return path + "." + newExt
}
