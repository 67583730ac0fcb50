package keygrabber

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/badele/keygrabstats/internal/types"
)

func TestTokenizeLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []types.KeyPress
	}{
		{"Empty", "", []types.KeyPress{}},
		{"Single", "a", []types.KeyPress{types.NewKeyPress("a")}},
		{"Two", "ab", []types.KeyPress{types.NewKeyPress("a"), types.NewKeyPress("b")}},
		{"Enter", "[Ent]", []types.KeyPress{types.NewKeyPress("[Ent]")}},
		{"TextEnter", "ab[Ent]", []types.KeyPress{
			types.NewKeyPress("a"), types.NewKeyPress("b"), types.NewKeyPress("[Ent]"),
		}},
		{"UnknownBracket", "[Rgh]ab[Ent]", []types.KeyPress{
			types.NewKeyPress("[Rgh]"), types.NewKeyPress("a"), types.NewKeyPress("b"), types.NewKeyPress("[Ent]"),
		}},
		{"Shift", "[Sh]Ab[Ent]", []types.KeyPress{
			types.ShiftPressed("A"), types.NewKeyPress("b"), types.NewKeyPress("[Ent]"),
		}},
		{"AltSpace", "[Alt] [Ent]", []types.KeyPress{
			types.AltPressed(" "), types.NewKeyPress("[Ent]"),
		}},
		{"Ctrl", "[Ctl]v[Ent]", []types.KeyPress{
			types.CtrlPressed("v"), types.NewKeyPress("[Ent]"),
		}},
		{"SuperBracket", "[Win][Lft][Ent]", []types.KeyPress{
			types.SuperPressed("[Lft]"), types.NewKeyPress("[Ent]"),
		}},
		{"Accumulated", "[Ctl][Sh]a", []types.KeyPress{
			types.NewKeyPressWith("a", false, true, false, true),
		}},
		{"AllModifiers", "[Win][Ctl][Alt][Sh]x", []types.KeyPress{
			types.NewKeyPressWith("x", true, true, true, true),
		}},
		{"RepeatedModifier", "[Sh][Sh]a", []types.KeyPress{types.ShiftPressed("a")}},
		{"LoneClose", "a]b", []types.KeyPress{
			types.NewKeyPress("a"), types.NewKeyPress("]"), types.NewKeyPress("b"),
		}},
		{"NestedOpen", "[[x]", []types.KeyPress{types.NewKeyPress("[[x]")}},
		{"EmptyBrackets", "[]", []types.KeyPress{types.NewKeyPress("[]")}},
		{"Unicode", "é€", []types.KeyPress{types.NewKeyPress("é"), types.NewKeyPress("€")}},
		{"CaseSensitive", "[sh]a", []types.KeyPress{types.NewKeyPress("[sh]"), types.NewKeyPress("a")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TokenizeLine(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTokenizeLineUnclosedBracket(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []types.KeyPress
	}{
		{"OnlyOpen", "[", []types.KeyPress{}},
		{"Partial", "ab[En", []types.KeyPress{types.NewKeyPress("a"), types.NewKeyPress("b")}},
		{"PendingModifier", "[Sh][Ent", []types.KeyPress{}},
		{"ModifierOnly", "[Ctl]", []types.KeyPress{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TokenizeLine(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTokenizeLineWithoutBrackets(t *testing.T) {
	input := "Hello, World! 0123 \t~"
	got := TokenizeLine(input)

	runes := []rune(input)
	if len(got) != len(runes) {
		t.Fatalf("Expected %d keys, got %d", len(runes), len(got))
	}

	for i, c := range runes {
		if got[i] != types.NewKeyPress(string(c)) {
			t.Errorf("key %d: expected plain %q, got %v", i, string(c), got[i])
		}
	}
}

func TestTokenizeLineIdempotent(t *testing.T) {
	line := "[Sh]Hello [Ctl]c[Win][Lft][Ent]"
	first := TokenizeLine(line)
	second := TokenizeLine(line)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical results, got %v and %v", first, second)
	}
}

func TestScan(t *testing.T) {
	state, _, emitted := Scan(State{}, '[')
	if emitted || !state.InToken() {
		t.Fatalf("Expected open bracket to start a token, got %+v", state)
	}

	for _, c := range "Ctl" {
		state, _, emitted = Scan(state, c)
		if emitted {
			t.Fatalf("unexpected emit while inside a token")
		}
	}

	state, _, emitted = Scan(state, ']')
	if emitted {
		t.Fatalf("modifier token should not emit a key")
	}
	if state.Buffer != "" || state.Pending != types.ModCtrl {
		t.Fatalf("Expected empty buffer with Ctrl pending, got %+v", state)
	}

	state, key, emitted := Scan(state, 'z')
	if !emitted {
		t.Fatalf("Expected a key to be emitted")
	}
	if key != types.CtrlPressed("z") {
		t.Errorf("Expected Ctrl+z, got %v", key)
	}
	if state != (State{}) {
		t.Errorf("Expected state to be reset, got %+v", state)
	}
}

func TestTokenizerLinesAreIndependent(t *testing.T) {
	input := []byte("[Sh]\ra[Ent\nb]\r\n[Ctl]c\r")
	tok := NewTokenizer(input)
	keys := tok.Tokenize()

	expected := []types.KeyPress{
		types.NewKeyPress("a"),
		types.NewKeyPress("b"),
		types.NewKeyPress("]"),
		types.CtrlPressed("c"),
	}

	if !reflect.DeepEqual(keys, expected) {
		t.Fatalf("Expected %v, got %v", expected, keys)
	}

	stats := tok.GetStats()
	if stats.Lines != 4 {
		t.Errorf("Expected 4 lines, got %d", stats.Lines)
	}
	if stats.KeyPresses != 4 {
		t.Errorf("Expected 4 key presses, got %d", stats.KeyPresses)
	}
	if stats.ModifierTokens != 2 {
		t.Errorf("Expected 2 modifier tokens, got %d", stats.ModifierTokens)
	}
	if stats.DroppedTokens != 1 {
		t.Errorf("Expected 1 dropped token, got %d", stats.DroppedTokens)
	}
	if stats.FileSize != int64(len(input)) {
		t.Errorf("Expected file size %d, got %d", len(input), stats.FileSize)
	}
	if tok.Err != nil {
		t.Errorf("unexpected error: %v", tok.Err)
	}
}

func TestTokenizerEmptyInput(t *testing.T) {
	tok := NewTokenizer(nil)
	keys := tok.Tokenize()

	if len(keys) != 0 {
		t.Errorf("Expected no keys, got %v", keys)
	}
	if tok.Stats.Lines != 0 {
		t.Errorf("Expected 0 lines, got %d", tok.Stats.Lines)
	}
}

func TestScanLinesCallsPerLine(t *testing.T) {
	var perLine [][]types.KeyPress
	stats, err := ScanLines(strings.NewReader("ab\n\n[Ent]"), func(keys []types.KeyPress) {
		perLine = append(perLine, keys)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(perLine) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(perLine))
	}
	if len(perLine[0]) != 2 || len(perLine[1]) != 0 || len(perLine[2]) != 1 {
		t.Errorf("unexpected line split: %v", perLine)
	}
	if stats.KeyPresses != 3 {
		t.Errorf("Expected 3 key presses, got %d", stats.KeyPresses)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk unplugged")
}

func TestScanLinesReadError(t *testing.T) {
	_, err := ScanLines(failingReader{}, func([]types.KeyPress) {})
	if err == nil {
		t.Fatal("Expected an error")
	}
	if !strings.Contains(err.Error(), "disk unplugged") {
		t.Errorf("Expected wrapped read error, got %v", err)
	}
}

func TestScanLinesLineEndings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected [][]types.KeyPress
	}{
		{"LF", "a\nb\n", [][]types.KeyPress{
			{types.NewKeyPress("a")}, {types.NewKeyPress("b")},
		}},
		{"CRLF", "a\r\nb", [][]types.KeyPress{
			{types.NewKeyPress("a")}, {types.NewKeyPress("b")},
		}},
		{"LoneCR", "[Sh]\ra\r", [][]types.KeyPress{
			{}, {types.NewKeyPress("a")},
		}},
		{"DoubleCR", "a\r\rb", [][]types.KeyPress{
			{types.NewKeyPress("a")}, {}, {types.NewKeyPress("b")},
		}},
		{"LFCR", "a\n\rb", [][]types.KeyPress{
			{types.NewKeyPress("a")}, {}, {types.NewKeyPress("b")},
		}},
		{"NoEnding", "ab", [][]types.KeyPress{
			{types.NewKeyPress("a"), types.NewKeyPress("b")},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := [][]types.KeyPress{}
			_, err := ScanLines(strings.NewReader(tt.input), func(keys []types.KeyPress) {
				got = append(got, keys)
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

// oneByteReader returns the input one byte per Read call, so a CR and the
// LF that follows it arrive in separate reads.
type oneByteReader struct {
	data []byte
}

func (r *oneByteReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	p[0] = r.data[0]
	r.data = r.data[1:]
	return 1, nil
}

func TestScanLinesCRLFAcrossReads(t *testing.T) {
	var lines int
	stats, err := ScanLines(&oneByteReader{data: []byte("a\r\nb\r\n")}, func([]types.KeyPress) {
		lines++
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lines != 2 || stats.KeyPresses != 2 {
		t.Errorf("Expected 2 lines and 2 keys, got %d lines and %d keys", lines, stats.KeyPresses)
	}
}

func TestScanLinesLongLine(t *testing.T) {
	long := strings.Repeat("x", 2<<20)
	input := "ab\n" + long + "\ncd\n"

	var perLine []int
	stats, err := ScanLines(strings.NewReader(input), func(keys []types.KeyPress) {
		perLine = append(perLine, len(keys))
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []int{2, len(long), 2}
	if !reflect.DeepEqual(perLine, expected) {
		t.Fatalf("Expected keys per line %v, got %v", expected, perLine)
	}
	if stats.Lines != 3 {
		t.Errorf("Expected 3 lines, got %d", stats.Lines)
	}
	if stats.KeyPresses != len(long)+4 {
		t.Errorf("Expected %d key presses, got %d", len(long)+4, stats.KeyPresses)
	}
}

func TestScanLinesKeepsLinesBeforeReadError(t *testing.T) {
	r := io.MultiReader(strings.NewReader("ab\n[Ctl]c\n"), failingReader{})

	var keys []types.KeyPress
	stats, err := ScanLines(r, func(line []types.KeyPress) {
		keys = append(keys, line...)
	})
	if err == nil {
		t.Fatal("Expected an error")
	}

	expected := []types.KeyPress{
		types.NewKeyPress("a"), types.NewKeyPress("b"), types.CtrlPressed("c"),
	}
	if !reflect.DeepEqual(keys, expected) {
		t.Errorf("Expected %v, got %v", expected, keys)
	}
	if stats.Lines != 2 || stats.KeyPresses != 3 {
		t.Errorf("Expected 2 lines and 3 keys, got %+v", stats)
	}
}

func TestModifierTokens(t *testing.T) {
	expected := map[string]types.Modifier{
		"[Sh]":  types.ModShift,
		"[Ctl]": types.ModCtrl,
		"[Alt]": types.ModAlt,
		"[Win]": types.ModSuper,
	}

	if !reflect.DeepEqual(modifierTokens, expected) {
		t.Errorf("Expected %v, got %v", expected, modifierTokens)
	}
}
