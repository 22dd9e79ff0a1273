// Package types provides type definitions for structured data used throughout the compile gateway.
package types

// Status identifies the outcome of a compile job. It is derived from the
// subprocess exit code and pre-flight validation, never set ad hoc.
type Status string

const (
	// StatusSuccess indicates the external tool exited with code 0.
	StatusSuccess Status = "Success"
	// StatusCompilationFailed indicates a nonzero exit from the Cairo-to-Sierra compiler.
	StatusCompilationFailed Status = "CompilationFailed"
	// StatusSierraCompilationFailed indicates a nonzero exit from the Sierra-to-CASM compiler.
	StatusSierraCompilationFailed Status = "SierraCompilationFailed"
	// StatusScarbBuildFailed indicates a nonzero exit from scarb build.
	StatusScarbBuildFailed Status = "ScarbBuildFailed"
	// StatusUnknownError indicates the process terminated without an exit code
	// (killed or signaled).
	StatusUnknownError Status = "UnknownError"
	// StatusFileNotFound indicates the request named a source file or project
	// directory that does not exist.
	StatusFileNotFound Status = "FileNotFound"
	// StatusFileExtensionNotSupported indicates the request path had the wrong extension.
	StatusFileExtensionNotSupported Status = "FileExtensionNotSupported"
	// StatusInvalidPath indicates the request path was empty, absolute, or escaped
	// the project root.
	StatusInvalidPath Status = "InvalidPath"
	// StatusSpawnFailed indicates the external tool could not be launched at all.
	StatusSpawnFailed Status = "SpawnFailed"
	// StatusTimeout indicates the external tool exceeded the configured deadline
	// and was terminated.
	StatusTimeout Status = "Timeout"
	// StatusDirectoryCreationFailed indicates the artifact destination directory
	// could not be created.
	StatusDirectoryCreationFailed Status = "DirectoryCreationFailed"
)

// CompileResponse is the result of a single-file compile job (Cairo to Sierra,
// or Sierra to CASM). Message carries the tool's sanitized diagnostics;
// FileContent is the produced artifact, empty when none was written.
type CompileResponse struct {
	Status      Status `json:"status"`
	Message     string `json:"message"`
	FileContent string `json:"file_content"`
}

// FileContentMap pairs one build artifact's base name with its content.
type FileContentMap struct {
	FileName    string `json:"file_name"`
	FileContent string `json:"file_content"`
}

// ScarbBuildResponse is the result of a project-level scarb build. The artifact
// array holds every text file found under the project's target/dev tree,
// collected whether or not the build succeeded.
type ScarbBuildResponse struct {
	Status              Status           `json:"status"`
	Message             string           `json:"message"`
	FileContentMapArray []FileContentMap `json:"file_content_map_array"`
}
