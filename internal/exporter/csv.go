package exporter

import (
	"fmt"
	"io"

	"github.com/badele/keygrabstats/internal/processor"
)

const csvHeader = "Position, Keys, NbOfTimes, %"

// ExportCSV writes both groups of the report as comma separated rows:
// rank, key display, count, percentage.
func ExportCSV(w io.Writer, report *processor.Report) error {
	if _, err := fmt.Fprintf(w, "Summary of %d %s :\n", report.Keys.Total, report.Keys.Title); err != nil {
		return err
	}
	if err := writeCSVRows(w, report.Keys); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\nSummary of %d %s\n", report.Shortcuts.Total, report.Shortcuts.Title); err != nil {
		return err
	}
	return writeCSVRows(w, report.Shortcuts)
}

func writeCSVRows(w io.Writer, g processor.Group) error {
	if _, err := fmt.Fprintln(w, csvHeader); err != nil {
		return err
	}

	for _, e := range g.Entries {
		if _, err := fmt.Fprintf(w, "%d,%s,%d,%s\n", e.Rank, e.Display, e.Count, FormatPercent(e.Percent)); err != nil {
			return err
		}
	}

	return nil
}
