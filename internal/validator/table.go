// Package validator reports structural problems in the tables of an org
// document.
package validator

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"orglite/internal/config"
	"orglite/internal/formatter"
	"orglite/internal/table"
)

// Rule names reported in ValidationError.Rule.
const (
	RuleOpenRow    = "open-row"
	RuleRagged     = "ragged"
	RuleUnaligned  = "unaligned"
	RuleMaxColumns = "max-columns"
)

// ValidationError represents a validation error with context. Line and
// Column are 1-based; Column counts bytes.
type ValidationError struct {
	Line    int
	Column  int
	Rule    string
	Message string
}

// ValidationResult contains validation results. Warnings never make a
// result invalid.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []string
	Stats    ValidationStats
	IsValid  bool
}

// ValidationStats contains validation statistics.
type ValidationStats struct {
	Tables         int
	Rows           int
	InvalidTables  int
	UnalignedLines int
}

// TableValidator checks the tables of a document against the lint settings.
type TableValidator struct {
	cfg *config.Config
}

// NewTableValidator creates a new validator. A nil cfg means config.Default.
func NewTableValidator(cfg *config.Config) *TableValidator {
	if cfg == nil {
		cfg = config.Default()
	}

	return &TableValidator{cfg: cfg}
}

// Validate checks every table in content.
func (v *TableValidator) Validate(content string) *ValidationResult {
	result := &ValidationResult{
		IsValid:  true,
		Errors:   []ValidationError{},
		Warnings: []string{},
	}

	lines := strings.Split(content, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	if v.cfg.Lint.CheckOpenRows {
		result.Errors = append(result.Errors, openRows(lines)...)
	}

	for _, r := range formatter.Regions(lines) {
		result.Stats.Tables++

		if v.cfg.Lint.CheckWidth {
			result.Warnings = append(result.Warnings, widthWarnings(lines, r)...)
		}

		errs := v.validateTable(lines, r, &result.Stats)
		if len(errs) > 0 {
			result.Stats.InvalidTables++
			result.Errors = append(result.Errors, errs...)
		}
	}

	slices.SortStableFunc(result.Errors, func(a, b ValidationError) int {
		return cmp.Compare(a.Line, b.Line)
	})

	result.IsValid = len(result.Errors) == 0

	return result
}

// validateTable runs the per-table rules on region r.
func (v *TableValidator) validateTable(lines []string, r table.Range, stats *ValidationStats) []ValidationError {
	var errs []ValidationError

	tableLines := r.Lines(lines)
	rows := table.SplitTableRows(tableLines)
	cols := table.MaxCols(rows)

	for _, row := range rows {
		if !row.IsSeparator() {
			stats.Rows++
		}
	}

	if v.cfg.Lint.MaxColumns > 0 && cols > v.cfg.Lint.MaxColumns {
		errs = append(errs, ValidationError{
			Line:    r.Start + 1,
			Column:  pipeColumn(lines[r.Start]),
			Rule:    RuleMaxColumns,
			Message: fmt.Sprintf("table has %d columns, at most %d allowed", cols, v.cfg.Lint.MaxColumns),
		})
	}

	if v.cfg.Lint.CheckRagged {
		for i, row := range rows {
			if row.IsSeparator() || row.Len() == cols {
				continue
			}

			errs = append(errs, ValidationError{
				Line:    r.Start + i + 1,
				Column:  pipeColumn(tableLines[i]),
				Rule:    RuleRagged,
				Message: fmt.Sprintf("row has %d cells, table has %d columns", row.Len(), cols),
			})
		}
	}

	if v.cfg.Lint.CheckAlignment {
		formatted, _ := table.Reformat(tableLines, v.cfg.Table.DefaultWidths)

		first := -1
		for i, line := range formatted {
			if line != tableLines[i] {
				stats.UnalignedLines++

				if first == -1 {
					first = i
				}
			}
		}

		if first != -1 {
			errs = append(errs, ValidationError{
				Line:    r.Start + first + 1,
				Column:  1,
				Rule:    RuleUnaligned,
				Message: "table is not aligned",
			})
		}
	}

	return errs
}

// widthWarnings reports cells that a terminal draws at a different width
// than the table counts them, which leaves the aligned table looking ragged
// in a terminal.
func widthWarnings(lines []string, r table.Range) []string {
	var warnings []string

	for n := r.Start; n <= r.End; n++ {
		if table.IsSeparatorLine(lines[n]) {
			continue
		}

		for c, cell := range table.SplitCells(lines[n]) {
			aligned, drawn := table.DisplayWidth(cell), table.TerminalWidth(cell)
			if aligned == drawn {
				continue
			}

			warnings = append(warnings, fmt.Sprintf(
				"line %d, cell %d: %q is aligned as %d columns but a terminal draws %d",
				n+1, c+1, cell, aligned, drawn,
			))
		}
	}

	return warnings
}

// openRows reports lines that start a table row but never close it.
func openRows(lines []string) []ValidationError {
	var errs []ValidationError

	for i, line := range lines {
		if !table.IsTableLine(line) || table.IsTableRow(line) {
			continue
		}

		errs = append(errs, ValidationError{
			Line:    i + 1,
			Column:  len(strings.TrimRight(line, " \t")) + 1,
			Rule:    RuleOpenRow,
			Message: "table row has no closing pipe",
		})
	}

	return errs
}

// pipeColumn returns the 1-based column of the first pipe in line.
func pipeColumn(line string) int {
	return strings.IndexByte(line, '|') + 1
}

// String returns string representation of validation result.
func (r *ValidationResult) String() string {
	status := "✅ VALID"
	if !r.IsValid {
		status = "❌ INVALID"
	}

	return fmt.Sprintf(
		"%s | Tables: %d | Rows: %d | Invalid tables: %d | Errors: %d | Warnings: %d",
		status,
		r.Stats.Tables,
		r.Stats.Rows,
		r.Stats.InvalidTables,
		len(r.Errors),
		len(r.Warnings),
	)
}

// PrintErrors writes validation errors to w in readable format.
func (r *ValidationResult) PrintErrors(w io.Writer) {
	if len(r.Errors) == 0 {
		return
	}

	fmt.Fprintln(w, "❌ Validation Errors:")

	for _, err := range r.Errors {
		fmt.Fprintf(w, "  Line %d, Col %d [%s]: %s\n", err.Line, err.Column, err.Rule, err.Message)
	}
}

// PrintWarnings writes validation warnings to w.
func (r *ValidationResult) PrintWarnings(w io.Writer) {
	if len(r.Warnings) == 0 {
		return
	}

	fmt.Fprintln(w, "⚠️  Validation Warnings:")

	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "  %s\n", warn)
	}
}
