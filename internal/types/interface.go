package types

type Tokenizer interface {
	Tokenize() []KeyPress
}

// Tokenize with statistics
type TokenizerWithStats interface {
	Tokenizer
	GetStats() TokenizerStats
}
