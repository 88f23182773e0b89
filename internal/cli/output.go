package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacksmith/bizdir/internal/model"
	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
)

// colorEnabled tracks whether color output is enabled.
// It is set based on terminal detection but can be overridden.
var colorEnabled = true

func init() {
	// Disable colors if stdout is not a terminal
	colorEnabled = IsTerminal(os.Stdout)
}

// SetColorEnabled allows overriding the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled returns whether color output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// ApplyColorMode sets color output from a config value: "always", "never",
// or "auto" (enabled when w is a terminal).
func ApplyColorMode(mode string, w io.Writer) {
	switch mode {
	case "always":
		colorEnabled = true
	case "never":
		colorEnabled = false
	default:
		colorEnabled = IsTerminal(w)
	}
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// IsInteractive returns true if r is a terminal.
func IsInteractive(r io.Reader) bool {
	if f, ok := r.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func colorize(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + colorReset
}

// Green returns s wrapped in green ANSI codes if colors are enabled.
func Green(s string) string { return colorize(colorGreen, s) }

// Red returns s wrapped in red ANSI codes if colors are enabled.
func Red(s string) string { return colorize(colorRed, s) }

// Yellow returns s wrapped in yellow ANSI codes if colors are enabled.
func Yellow(s string) string { return colorize(colorYellow, s) }

// Cyan returns s wrapped in cyan ANSI codes if colors are enabled.
func Cyan(s string) string { return colorize(colorCyan, s) }

// Gray returns s wrapped in gray ANSI codes if colors are enabled.
func Gray(s string) string { return colorize(colorGray, s) }

// Bold returns s wrapped in bold ANSI codes if colors are enabled.
func Bold(s string) string { return colorize(colorBold, s) }

// CategoryColor returns the category name in its badge color:
// restaurants green, retail cyan, services yellow.
func CategoryColor(c model.Category) string {
	switch c {
	case model.CategoryRestaurant:
		return Green(string(c))
	case model.CategoryRetail:
		return Cyan(string(c))
	case model.CategoryService:
		return Yellow(string(c))
	}
	return string(c)
}

// OrDash returns s, or a gray "-" when s is empty.
func OrDash(s string) string {
	if s == "" {
		return Gray("-")
	}
	return s
}

// EmptyMessage is shown when the active filter matches no business.
const EmptyMessage = "No businesses found in this category."

// DefaultMaxTextWidth is the default maximum visible width for free-text columns.
const DefaultMaxTextWidth = 40

// Table formats columnar output with automatic column width calculation.
type Table struct {
	header    []string
	rows      [][]string
	colWidths []int
	maxWidths map[int]int // optional per-column max visible width
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{}
}

// SetMaxWidth sets the maximum visible width for a column.
// Content exceeding the limit is truncated with an ellipsis ("...").
func (t *Table) SetMaxWidth(col, maxWidth int) {
	if t.maxWidths == nil {
		t.maxWidths = make(map[int]int)
	}
	t.maxWidths[col] = maxWidth
	for i := range t.colWidths {
		if m, ok := t.maxWidths[i]; ok && t.colWidths[i] > m {
			t.colWidths[i] = m
		}
	}
}

// SetHeader sets a bold header row rendered above the data rows.
func (t *Table) SetHeader(cols ...string) {
	t.header = cols
	t.track(cols)
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	t.track(cols)
	t.rows = append(t.rows, cols)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// track widens colWidths to fit cols, measured without ANSI codes and capped
// at any configured max width.
func (t *Table) track(cols []string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}
	for i, col := range cols {
		width := visibleWidth(col)
		if maxW, ok := t.maxWidths[i]; ok && width > maxW {
			width = maxW
		}
		if width > t.colWidths[i] {
			t.colWidths[i] = width
		}
	}
}

// Render writes the table to w with columns separated by two spaces.
func (t *Table) Render(w io.Writer) {
	if len(t.header) > 0 {
		fmt.Fprintln(w, t.formatRow(t.header, Bold))
	}
	for _, row := range t.rows {
		fmt.Fprintln(w, t.formatRow(row, nil))
	}
}

func (t *Table) formatRow(row []string, style func(string) string) string {
	parts := make([]string, 0, len(row))
	for i, col := range row {
		if maxW, ok := t.maxWidths[i]; ok {
			col = Truncate(col, maxW)
		}
		// The last column is not padded
		padding := 0
		if i < len(t.colWidths)-1 {
			padding = t.colWidths[i] - visibleWidth(col)
		}
		if style != nil {
			col = style(col)
		}
		parts = append(parts, col+strings.Repeat(" ", padding))
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

// Truncate returns s truncated to maxWidth visible characters. If s exceeds
// maxWidth, it is cut and "..." is appended (counted within the limit).
// ANSI escape codes are preserved up to the truncation point with a reset appended.
// When maxWidth cannot fit the ellipsis, s is hard-cut to maxWidth characters.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if visibleWidth(s) <= maxWidth {
		return s
	}

	const ellipsis = "..."
	if maxWidth < len(ellipsis) {
		cut, _ := cutVisible(s, maxWidth)
		return cut
	}

	cut, hasAnsi := cutVisible(s, maxWidth-len(ellipsis))
	cut += ellipsis
	if hasAnsi {
		cut += colorReset
	}
	return cut
}

// cutVisible returns the prefix of s holding limit visible characters,
// keeping any escape sequences inside it. hasAnsi reports whether one was seen.
func cutVisible(s string, limit int) (cut string, hasAnsi bool) {
	var b strings.Builder
	visible := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
			hasAnsi = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case visible >= limit:
			return b.String(), hasAnsi
		default:
			visible++
		}
		b.WriteRune(r)
	}
	return b.String(), hasAnsi
}

// visibleWidth returns the visible width of s, excluding ANSI escape codes.
func visibleWidth(s string) int {
	width := 0
	inEscape := false

	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			width++
		}
	}

	return width
}
