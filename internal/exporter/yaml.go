package exporter

import (
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/badele/keygrabstats/internal/processor"
	"github.com/badele/keygrabstats/internal/types"
)

func ExportYAML(w io.Writer, report *processor.Report, stats types.TokenizerStats) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(newReportOutput(report, stats)); err != nil {
		return fmt.Errorf("YAML serialization error: %w", err)
	}

	return enc.Close()
}
