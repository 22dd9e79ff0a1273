package server

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/davide/cairo-compile-gateway/internal/paths"
)

// maxUploadBytes bounds save-code request bodies.
const maxUploadBytes = 64 << 20 // 64 MiB

// handleSaveCode writes the request body verbatim under the project root and
// returns the resolved absolute path as plain text. On write failure the body
// is an empty string, matching what uploading clients expect.
func (s *Server) handleSaveCode(w http.ResponseWriter, r *http.Request) {
	relPath := r.PathValue("path")

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusRequestEntityTooLarge, "upload too large")
		return
	}

	absPath, err := s.compiler.SaveCode(relPath, data)
	if err != nil {
		var invalidPath *paths.InvalidPathError
		if errors.As(err, &invalidPath) {
			s.errorResponse(w, http.StatusBadRequest, invalidPath.Error())
			return
		}
		log.Printf("Error saving code to %s: %v", relPath, err)
		s.plainTextResponse(w, http.StatusOK, "")
		return
	}

	s.plainTextResponse(w, http.StatusOK, absPath)
}

// handleCompileToSierra compiles a .cairo file to Sierra. The response is
// always a well-formed CompileResponse; tool failures live in its status.
func (s *Server) handleCompileToSierra(w http.ResponseWriter, r *http.Request) {
	resp := s.compiler.CompileToSierra(r.Context(), r.PathValue("path"))
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleCompileToCasm compiles a .sierra file to CASM.
func (s *Server) handleCompileToCasm(w http.ResponseWriter, r *http.Request) {
	resp := s.compiler.CompileToCasm(r.Context(), r.PathValue("path"))
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleScarbBuild runs scarb build on a project directory and returns the
// collected artifacts.
func (s *Server) handleScarbBuild(w http.ResponseWriter, r *http.Request) {
	resp := s.compiler.ScarbBuild(r.Context(), r.PathValue("path"))
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleVersion returns the Cairo compiler version as plain text.
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	version, err := s.compiler.Version(r.Context())
	if err != nil {
		log.Printf("Error querying compiler version: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.plainTextResponse(w, http.StatusOK, version)
}

// plainTextResponse writes a plain text response.
func (s *Server) plainTextResponse(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
