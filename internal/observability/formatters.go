// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/davide/cairo-compile-gateway/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxMessageLines bounds how much tool output is shown in a summary box
	maxMessageLines = 10
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCompileResult outputs a human-readable summary of a single-file
// compile job.
func (p *Printer) PrintCompileResult(relPath string, resp *types.CompileResponse) {
	if resp == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:      %s\n", relPath))
	sb.WriteString(fmt.Sprintf("Status:    %s\n", resp.Status))
	sb.WriteString(fmt.Sprintf("Artifact:  %d bytes\n", len(resp.FileContent)))

	if msg := trimmedMessage(resp.Message); msg != "" {
		sb.WriteString("\n")
		sb.WriteString(msg)
	}

	p.printBox("Compile Result", sb.String())
}

// PrintScarbResult outputs a human-readable summary of a scarb build.
func (p *Printer) PrintScarbResult(relPath string, resp *types.ScarbBuildResponse) {
	if resp == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Project:   %s\n", relPath))
	sb.WriteString(fmt.Sprintf("Status:    %s\n", resp.Status))
	sb.WriteString(fmt.Sprintf("Artifacts: %d\n", len(resp.FileContentMapArray)))

	for _, f := range resp.FileContentMapArray {
		sb.WriteString(fmt.Sprintf("  • %s (%d bytes)\n", f.FileName, len(f.FileContent)))
	}

	if msg := trimmedMessage(resp.Message); msg != "" {
		sb.WriteString("\n")
		sb.WriteString(msg)
	}

	p.printBox("Scarb Build Result", sb.String())
}

// trimmedMessage caps tool output at maxMessageLines for box display.
func trimmedMessage(message string) string {
	message = strings.TrimRight(message, "\n")
	if message == "" {
		return ""
	}

	lines := strings.Split(message, "\n")
	if len(lines) <= maxMessageLines {
		return message
	}
	kept := lines[:maxMessageLines]
	return strings.Join(kept, "\n") + fmt.Sprintf("\n... and %d more lines", len(lines)-maxMessageLines)
}
