package exporter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/badele/keygrabstats/internal/processor"
	"github.com/badele/keygrabstats/internal/types"
)

type ReportOutput struct {
	Stats     types.TokenizerStats `json:"stats" yaml:"stats"`
	Keys      processor.Group      `json:"keys" yaml:"keys"`
	Shortcuts processor.Group      `json:"shortcuts" yaml:"shortcuts"`
}

func newReportOutput(report *processor.Report, stats types.TokenizerStats) ReportOutput {
	return ReportOutput{
		Stats:     stats,
		Keys:      report.Keys,
		Shortcuts: report.Shortcuts,
	}
}

func ExportJSON(w io.Writer, report *processor.Report, stats types.TokenizerStats) error {
	data, err := json.MarshalIndent(newReportOutput(report, stats), "", "  ")
	if err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}
