package keygrabber

// KeyGrabber log format
//
// Every character of a line is a key press, except bracket tokens:
//
//   [Sh] [Ctl] [Alt] [Win]   modifier held for the next key only
//   [Ent] [Lft] [Rgh] ...    special key, kept verbatim as the label
//
// Examples:
//   [Sh]Ab[Ent]      -> Shift+A, b, [Ent]
//   [Ctl][Sh]t       -> Ctrl+Shift+t
//   [Win][Lft][Ent]  -> Super+[Lft], [Ent]
//
// A bracket token still open at the end of a line is dropped.

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/badele/keygrabstats/internal/types"
)

// Lines are not length limited; the scanner buffer grows as needed.
const maxLineSize = math.MaxInt

/////////////////////////////////////////////////////////////////////////////
// LINE STATE MACHINE
/////////////////////////////////////////////////////////////////////////////

// State is the scanning state of a single line: the characters read since
// the last resolved token and the modifiers waiting for the next key.
type State struct {
	Buffer  string
	Pending types.Modifier
}

// InToken reports whether a bracket token is being accumulated.
func (s State) InToken() bool {
	return len(s.Buffer) > 0 && s.Buffer[0] == tokenOpen
}

// Scan consumes one character and returns the next state. When the character
// resolves a key, that key is returned with emitted set to true.
func Scan(s State, c rune) (next State, key types.KeyPress, emitted bool) {
	buffer := s.Buffer + string(c)

	if buffer[0] == tokenOpen {
		if c != tokenClose {
			return State{Buffer: buffer, Pending: s.Pending}, types.KeyPress{}, false
		}

		if mod, ok := modifierTokens[buffer]; ok {
			return State{Pending: s.Pending.With(mod)}, types.KeyPress{}, false
		}
	}

	return State{}, types.NewKeyPressMod(buffer, s.Pending), true
}

// TokenizeLine returns the key presses of one log line, in typing order.
func TokenizeLine(line string) []types.KeyPress {
	keys, _, _ := tokenizeLine(line)
	return keys
}

func tokenizeLine(line string) ([]types.KeyPress, State, int) {
	keys := make([]types.KeyPress, 0, len(line))
	modifiers := 0

	var state State
	for _, c := range line {
		var key types.KeyPress
		var emitted bool

		state, key, emitted = Scan(state, c)
		if emitted {
			keys = append(keys, key)
		} else if c == tokenClose {
			modifiers++
		}
	}

	return keys, state, modifiers
}

/////////////////////////////////////////////////////////////////////////////
// FILE TOKENIZER
/////////////////////////////////////////////////////////////////////////////

// splitLines is a bufio.SplitFunc ending lines at "\n", "\r\n" or a lone
// "\r". The line ending is not part of the returned line.
func splitLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}

		// "\r" as the last byte read: wait to know whether "\n" follows
		if i+1 == len(data) && !atEOF {
			return 0, nil, nil
		}
		if i+1 < len(data) && data[i+1] == '\n' {
			return i + 2, data[:i], nil
		}
		return i + 1, data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}

	// Request more data.
	return 0, nil, nil
}

// ScanLines reads r line by line and calls fn with the key presses of each
// line. Lines are tokenized independently and end at LF, CRLF or a lone CR.
// On a read error, the lines read so far have been passed to fn and are
// counted in the returned stats.
func ScanLines(r io.Reader, fn func(keys []types.KeyPress)) (types.TokenizerStats, error) {
	var stats types.TokenizerStats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(splitLines)

	for scanner.Scan() {
		keys, state, modifiers := tokenizeLine(scanner.Text())

		stats.Lines++
		stats.KeyPresses += len(keys)
		stats.ModifierTokens += modifiers
		if state.InToken() {
			stats.DroppedTokens++
		}

		fn(keys)
	}

	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("error reading line %d: %w", stats.Lines+1, err)
	}

	return stats, nil
}

var _ types.TokenizerWithStats = (*Tokenizer)(nil)

// Tokenizer tokenizes a whole log, line by line.
type Tokenizer struct {
	input []byte
	Keys  []types.KeyPress     `json:"keys"`
	Stats types.TokenizerStats `json:"stats"`
	Err   error                `json:"-"`
}

func NewTokenizer(input []byte) *Tokenizer {
	return &Tokenizer{
		input: input,
		Keys:  make([]types.KeyPress, 0),
		Stats: types.TokenizerStats{FileSize: int64(len(input))},
	}
}

func (t *Tokenizer) Tokenize() []types.KeyPress {
	t.Keys = t.Keys[:0]

	stats, err := ScanLines(bytes.NewReader(t.input), func(keys []types.KeyPress) {
		t.Keys = append(t.Keys, keys...)
	})
	stats.FileSize = int64(len(t.input))

	t.Stats = stats
	t.Err = err

	return t.Keys
}

func (t *Tokenizer) GetStats() types.TokenizerStats {
	return t.Stats
}
