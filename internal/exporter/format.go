package exporter

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/badele/keygrabstats/internal/processor"
	"github.com/badele/keygrabstats/internal/types"
)

var ErrUnsupportedFormat = errors.New("unsupported format")

type Format int

const (
	FormatCSV Format = iota
	FormatTable
	FormatJSON
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatTable:
		return "table"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", f)
	}
}

// Formats lists the accepted format names.
var Formats = []string{"csv", "table", "json", "yaml"}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "csv", "":
		return FormatCSV, nil
	case "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, s)
	}
}

// Export writes the report in the given format.
func Export(w io.Writer, format Format, report *processor.Report, stats types.TokenizerStats) error {
	switch format {
	case FormatCSV:
		return ExportCSV(w, report)
	case FormatTable:
		return ExportTable(w, report)
	case FormatJSON:
		return ExportJSON(w, report, stats)
	case FormatYAML:
		return ExportYAML(w, report, stats)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// FormatPercent renders a percentage without trailing zeros (75, 33.333,
// 12.5). Rounding is done by processor.Percent.
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
