package internal

// Codebook swaps sensitive plain words for code words and back. Both
// directions are a single pass over the tokens and return a new slice of the
// same length; tokens without an entry pass through unchanged.
type Codebook struct {
	forward map[string]string
	reverse map[string]string
}

// NewCodebook indexes a code table. When a word (or a code) appears more than
// once, the first entry in table order wins.
func NewCodebook(table []CodeEntry) Codebook {
	cb := Codebook{
		forward: make(map[string]string, len(table)),
		reverse: make(map[string]string, len(table)),
	}
	for _, e := range table {
		if _, ok := cb.forward[e.Word]; !ok {
			cb.forward[e.Word] = e.Code
		}
		if _, ok := cb.reverse[e.Code]; !ok {
			cb.reverse[e.Code] = e.Word
		}
	}
	return cb
}

// Forward replaces every plain word that has an entry with its code word.
func (cb Codebook) Forward(tokens []string) []string {
	return substitute(tokens, cb.forward)
}

// Reverse replaces every code word with the plain word it stands for.
func (cb Codebook) Reverse(tokens []string) []string {
	return substitute(tokens, cb.reverse)
}

// ApplyForward is NewCodebook(table).Forward(tokens).
func ApplyForward(tokens []string, table []CodeEntry) []string {
	return NewCodebook(table).Forward(tokens)
}

// ApplyReverse is NewCodebook(table).Reverse(tokens).
func ApplyReverse(tokens []string, table []CodeEntry) []string {
	return NewCodebook(table).Reverse(tokens)
}

func substitute(tokens []string, m map[string]string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		if r, ok := m[t]; ok {
			out[i] = r
			continue
		}
		out[i] = t
	}
	return out
}
