// Package observability provides human-readable output for validation results.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/structured-data-validator/internal/schemas"
	"github.com/jonathan/structured-data-validator/internal/types"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles formatted text output
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

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// PrintResult outputs every diagnostic of one result, errors first.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintResult(source string, res *types.ValidationResult) {
	if res == nil {
		return
	}

	status := "✓"
	if !res.Valid() {
		status = "✗"
	}
	fmt.Fprintf(p.out, "%s %s: %s, %s\n", status, source,
		plural(len(res.Errors), "error"), plural(len(res.Warnings), "warning"))

	for _, e := range res.Errors {
		fmt.Fprintf(p.out, "  ERROR    %s: %s\n", location(e.Path, e.Line), e.Message)
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(p.out, "  WARNING  %s: %s\n", location(w.Path, w.Line), w.Message)
	}
	if len(res.UnresolvedTypes) > 0 {
		fmt.Fprintf(p.out, "  note: unrecognized @type %s checked as the default type\n",
			strings.Join(res.UnresolvedTypes, ", "))
	}
}

// PrintBlocks outputs the results of every block extracted from one page.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintBlocks(source string, blocks []types.BlockResult) {
	if len(blocks) == 0 {
		fmt.Fprintf(p.out, "- %s: no ld+json blocks found\n", source)
		return
	}
	for _, b := range blocks {
		p.PrintResult(fmt.Sprintf("%s#%d", source, b.Index), b.Result)
	}
}

// PrintConformance outputs the definitions whose exported JSON Schema disagrees
// with the structural validator.
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) PrintConformance(source string, checks []*schemas.Conformance) {
	for _, c := range checks {
		if c == nil || c.Agree() {
			continue
		}
		fmt.Fprintf(p.out, "cross-check %s: %s structural=%t json-schema=%t\n",
			source, c.Definition, c.StructuralValid, c.JSONSchemaValid)
		for _, e := range c.JSONSchemaErrors {
			fmt.Fprintf(p.out, "  %s: %s\n", e.Field, e.Message)
		}
	}
}

// Summary accumulates counts across every validated block.
type Summary struct {
	Sources  int
	Blocks   int
	Errors   int
	Warnings int
	Invalid  int
}

// Add counts one result.
func (s *Summary) Add(res *types.ValidationResult) {
	if res == nil {
		return
	}
	s.Blocks++
	s.Errors += len(res.Errors)
	s.Warnings += len(res.Warnings)
	if !res.Valid() {
		s.Invalid++
	}
}

// PrintSummary outputs the totals in a box.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSummary(s Summary) {
	if s.Errors == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4,
			fmt.Sprintf("✅ NO ERRORS FOUND (%s)", plural(s.Warnings, "warning")))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Sources:  %d\n", s.Sources))
	sb.WriteString(fmt.Sprintf("Blocks:   %d (%d invalid)\n", s.Blocks, s.Invalid))
	sb.WriteString(fmt.Sprintf("Errors:   %d\n", s.Errors))
	sb.WriteString(fmt.Sprintf("Warnings: %d", s.Warnings))

	p.printBox("VALIDATION SUMMARY", sb.String())
}

func location(path string, line *int) string {
	if line == nil {
		return path
	}
	return fmt.Sprintf("%s (line %d)", path, *line)
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
