// Package keygrabstats provides a public API for parsing keystroke logger
// output and computing key press statistics.
//
// This package provides functions to:
//   - Convert log files from their encoding (ISO-8859-1, CP437, ...) to UTF-8
//   - Tokenize log lines into key presses with their modifiers
//   - Count key presses and rank keys and shortcuts
//   - Export the ranking (CSV, table, JSON, YAML)
//
// Example usage:
//
//	import "github.com/badele/keygrabstats/pkg/keygrabstats"
//
//	data, _ := os.ReadFile("LOG.TXT")
//	report, stats, _ := keygrabstats.Analyze(data, "iso-8859-1")
//	_ = keygrabstats.Export(os.Stdout, keygrabstats.FormatCSV, report, stats)
package keygrabstats

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/badele/keygrabstats/internal/exporter"
	"github.com/badele/keygrabstats/internal/importer/keygrabber"
	"github.com/badele/keygrabstats/internal/processor"
	"github.com/badele/keygrabstats/internal/types"
)

// Type aliases for public API
type (
	// KeyPress is one key event with the modifiers held while it was typed
	KeyPress = types.KeyPress

	// Modifier is a set of modifier keys
	Modifier = types.Modifier

	// Stats contains counters collected while tokenizing
	Stats = types.TokenizerStats

	// Tokenizer tokenizes a whole log file
	Tokenizer = keygrabber.Tokenizer

	// Counter counts key presses
	Counter = processor.Counter

	// Report ranks counted keys and shortcuts
	Report = processor.Report

	// Group is one ranked group of a report
	Group = processor.Group

	// Entry is one ranked key of a group
	Entry = processor.Entry

	// Format selects an export format
	Format = exporter.Format
)

// Modifier constants
const (
	ModNone  = types.ModNone
	ModSuper = types.ModSuper
	ModCtrl  = types.ModCtrl
	ModAlt   = types.ModAlt
	ModShift = types.ModShift
)

// Format constants
const (
	FormatCSV   = exporter.FormatCSV
	FormatTable = exporter.FormatTable
	FormatJSON  = exporter.FormatJSON
	FormatYAML  = exporter.FormatYAML
)

// DefaultEncoding is the encoding written by KeyGrabber hardware loggers.
const DefaultEncoding = "iso-8859-1"

var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// Encodings lists the accepted source encodings.
var Encodings = []string{"utf8", "iso-8859-1", "windows-1252", "cp437", "cp850"}

// UTF-8 BOM (Byte Order Mark) sequence
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// stripUTF8BOM removes the UTF-8 BOM if present at the beginning of the data
func stripUTF8BOM(data []byte) []byte {
	if len(data) >= 3 && bytes.Equal(data[:3], utf8BOM) {
		return data[3:]
	}
	return data
}

// ConvertToUTF8 converts byte data from a source encoding to UTF-8.
// Supported encodings: "utf8", "iso-8859-1", "windows-1252", "cp437", "cp850"
// The UTF-8 BOM (Byte Order Mark) is automatically stripped if present.
func ConvertToUTF8(data []byte, sourceEncoding string) ([]byte, error) {
	var decoder *encoding.Decoder

	switch strings.ToLower(sourceEncoding) {
	case "utf8", "utf-8":
		return stripUTF8BOM(data), nil
	case "iso-8859-1", "latin1":
		decoder = charmap.ISO8859_1.NewDecoder()
	case "windows-1252", "cp1252":
		decoder = charmap.Windows1252.NewDecoder()
	case "cp437":
		decoder = charmap.CodePage437.NewDecoder()
	case "cp850":
		decoder = charmap.CodePage850.NewDecoder()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, sourceEncoding)
	}

	reader := transform.NewReader(bytes.NewReader(data), decoder)
	utf8Data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("encoding conversion error: %w", err)
	}

	// Strip BOM if present after conversion
	return stripUTF8BOM(utf8Data), nil
}

// TokenizeLine returns the key presses of one log line.
func TokenizeLine(line string) []KeyPress {
	return keygrabber.TokenizeLine(line)
}

// NewTokenizer creates a tokenizer for UTF-8 log data.
func NewTokenizer(data []byte) *Tokenizer {
	return keygrabber.NewTokenizer(data)
}

// NewCounter creates an empty key press counter.
func NewCounter() *Counter {
	return processor.NewCounter()
}

// NewReport ranks the counted keys and shortcuts.
func NewReport(c *Counter) *Report {
	return processor.NewReport(c)
}

// Analyze decodes a raw log, counts every key press and returns the ranking.
// When reading fails part way, the report of the lines read so far is
// returned along with the error.
func Analyze(data []byte, sourceEncoding string) (*Report, Stats, error) {
	utf8Data, err := ConvertToUTF8(data, sourceEncoding)
	if err != nil {
		return nil, Stats{}, err
	}

	counter := processor.NewCounter()
	stats, err := keygrabber.ScanLines(bytes.NewReader(utf8Data), func(keys []KeyPress) {
		counter.Add(keys...)
	})
	stats.FileSize = int64(len(data))

	// Lines read before a failure are still reported.
	return processor.NewReport(counter), stats, err
}

// ParseFormat returns the format named s ("csv", "table", "json", "yaml").
func ParseFormat(s string) (Format, error) {
	return exporter.ParseFormat(s)
}

// Export writes the report to w in the requested format.
func Export(w io.Writer, format Format, report *Report, stats Stats) error {
	return exporter.Export(w, format, report, stats)
}

// KeyName returns a readable name for the key label ("[Ent]" -> "Enter").
func KeyName(k KeyPress) string {
	return exporter.KeyName(k)
}
