package exporter

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/badele/keygrabstats/internal/processor"
)

var tableColumns = []struct {
	Title string
	Width int
}{
	{"Rank", 7},
	{"Keys", 28},
	{"Name", 12},
	{"Count", 9},
	{"%", 8},
}

// ExportTable writes each group of the report as a box drawn table.
// Write errors are kept by the buffered writer and returned by Flush.
func ExportTable(w io.Writer, report *processor.Report) error {
	bw := bufio.NewWriter(w)

	for i, g := range []processor.Group{report.Keys, report.Shortcuts} {
		if i > 0 {
			fmt.Fprintln(bw)
		}
		exportGroupTable(bw, g)
	}

	return bw.Flush()
}

func exportGroupTable(w *bufio.Writer, g processor.Group) {
	fmt.Fprintf(w, "=== %d %s ===\n", g.Total, g.Title)
	fmt.Fprintln(w, tableRule("┌", "┬", "┐"))

	titles := make([]string, len(tableColumns))
	for i, c := range tableColumns {
		titles[i] = c.Title
	}
	fmt.Fprintln(w, tableRow(titles))
	fmt.Fprintln(w, tableRule("├", "┼", "┤"))

	for _, e := range g.Entries {
		fmt.Fprintln(w, tableRow([]string{
			fmt.Sprintf("%d", e.Rank),
			e.Display,
			KeyName(e.Key),
			fmt.Sprintf("%d", e.Count),
			FormatPercent(e.Percent),
		}))
	}

	fmt.Fprintln(w, tableRule("└", "┴", "┘"))
}

func tableRule(left, middle, right string) string {
	parts := make([]string, len(tableColumns))
	for i, c := range tableColumns {
		parts[i] = strings.Repeat("─", c.Width+2)
	}
	return left + strings.Join(parts, middle) + right
}

func tableRow(cells []string) string {
	var sb strings.Builder
	sb.WriteString("│")
	for i, c := range tableColumns {
		sb.WriteString(" ")
		sb.WriteString(pad(truncate(cells[i], c.Width), c.Width))
		sb.WriteString(" │")
	}
	return sb.String()
}

// truncate escapes control characters and shortens s to maxLen display
// columns.
func truncate(s string, maxLen int) string {
	s = fmt.Sprintf("%q", s)

	// Remove quote added by %q
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	if uniseg.StringWidth(s) <= maxLen {
		return s
	}

	var sb strings.Builder
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if width+g.Width() > maxLen-3 {
			break
		}
		width += g.Width()
		sb.WriteString(g.Str())
	}
	return sb.String() + "..."
}

func pad(s string, width int) string {
	if n := width - uniseg.StringWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
