// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cainthebest/fibext/internal/config"
	"github.com/cainthebest/fibext/internal/ui"
)

const (
	// TruncationLimit is the digit threshold from which a term is truncated
	// in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of digits to display at the beginning
	// and end of a truncated term.
	DisplayEdges = 25
)

// FormatTerm formats a decimal term for terminal display, truncating very
// large values to their leading and trailing digits.
//
// Parameters:
//   - term: The term in decimal notation.
//
// Returns:
//   - string: The possibly truncated display string.
func FormatTerm(term string) string {
	if len(term) <= TruncationLimit {
		return term
	}
	return fmt.Sprintf("%s...%s (%d digits)",
		term[:DisplayEdges], term[len(term)-DisplayEdges:], len(term))
}

// DisplayTerm writes one sequence term. Quiet mode emits the bare value for
// scripting; otherwise the term is labeled with its index.
func DisplayTerm(out io.Writer, index uint64, term string, quiet bool) {
	if quiet {
		fmt.Fprintln(out, term)
		return
	}
	fmt.Fprintf(out, "%sF(%d)%s = %s\n", ui.ColorPrimary(), index, ui.ColorReset(), FormatTerm(term))
}

// DisplayRunHeader writes the execution configuration banner shown before a
// generation run.
func DisplayRunHeader(out io.Writer, cfg config.AppConfig) {
	policy := "wrapping"
	if cfg.Checked {
		policy = "checked"
	}
	fmt.Fprintf(out, "%sGenerating %d Fibonacci terms%s (width=%s, policy=%s)\n\n",
		ui.Bold(), cfg.Count, ui.ColorReset(), cfg.Width, policy)
}

// DisplayExhaustion reports the clean end of a checked sequence.
func DisplayExhaustion(out io.Writer, emitted uint64) {
	fmt.Fprintf(out, "\n%sSequence exhausted after %d terms (next sum would overflow).%s\n",
		ui.ColorYellow(), emitted, ui.ColorReset())
}

// RunMeta describes a completed generation run for file output.
type RunMeta struct {
	// Count is the number of terms written.
	Count uint64
	// Width is the element width label.
	Width string
	// Policy is the overflow policy name.
	Policy string
	// Duration is the generation wall-clock time.
	Duration time.Duration
}

// WriteTermsToFile writes generated terms to a file, one per line, preceded
// by a commented header describing the run.
//
// Parameters:
//   - path: Destination file path; parent directories are created.
//   - meta: Run description written into the header.
//   - terms: The terms in decimal notation.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteTermsToFile(path string, meta RunMeta, terms []string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Fibonacci sequence\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Terms: %d\n", meta.Count)
	fmt.Fprintf(file, "# Width: %s\n", meta.Width)
	fmt.Fprintf(file, "# Policy: %s\n", meta.Policy)
	fmt.Fprintf(file, "# Duration: %s\n", meta.Duration)
	fmt.Fprintf(file, "\n")

	for _, term := range terms {
		if _, err := fmt.Fprintln(file, term); err != nil {
			return fmt.Errorf("failed to write term: %w", err)
		}
	}
	return nil
}
