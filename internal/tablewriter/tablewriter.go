// Package tablewriter renders small ASCII tables for terminal output.
package tablewriter

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// Writer buffers rows and renders them as a bordered table. Cell widths are
// measured in terminal columns, ignoring ANSI color sequences.
type Writer struct {
	out     io.Writer
	headers []string
	rows    [][]string
	widths  []int
	columns int
}

func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// DisplayWidth returns the number of terminal columns s occupies.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(stripANSI(s))
}

// NewWriter creates a table writer that renders to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{out: w}
}

// Header sets the column headers. Rows are truncated to the header count.
func (t *Writer) Header(headers ...string) {
	t.headers = headers
	t.columns = len(headers)
	t.measure(headers)
}

// Append adds a row.
func (t *Writer) Append(row ...string) {
	t.rows = append(t.rows, row)
	t.measure(row)
}

// Len returns the number of rows appended so far.
func (t *Writer) Len() int {
	return len(t.rows)
}

func (t *Writer) measure(row []string) {
	limit := len(row)
	if t.columns > 0 {
		limit = min(limit, t.columns)
	}
	for i := 0; i < limit; i++ {
		if i >= len(t.widths) {
			t.widths = append(t.widths, 0)
		}
		t.widths[i] = max(t.widths[i], DisplayWidth(row[i]))
	}
}

// Render writes the table. Nothing is written for an empty table.
func (t *Writer) Render() error {
	if len(t.headers) == 0 && len(t.rows) == 0 {
		return nil
	}
	var b strings.Builder
	t.writeBorder(&b)
	if len(t.headers) > 0 {
		t.writeRow(&b, t.headers)
		t.writeBorder(&b)
	}
	for _, row := range t.rows {
		t.writeRow(&b, row)
	}
	t.writeBorder(&b)
	_, err := io.WriteString(t.out, b.String())
	return err
}

func (t *Writer) writeBorder(b *strings.Builder) {
	b.WriteString("+")
	for _, width := range t.widths {
		b.WriteString(strings.Repeat("-", width+2))
		b.WriteString("+")
	}
	b.WriteString("\n")
}

func (t *Writer) writeRow(b *strings.Builder, row []string) {
	b.WriteString("|")
	for i, width := range t.widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		fmt.Fprintf(b, " %s%s |", cell, strings.Repeat(" ", width-DisplayWidth(cell)))
	}
	b.WriteString("\n")
}
