package internal

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
)

// LengthError reports a message whose word count does not fill the grid.
// It matches ErrLengthMismatch under errors.Is.
type LengthError struct {
	Mode Mode
	Have int
	Want int
}

func (e *LengthError) Error() string {
	diff := e.Want - e.Have
	how := "short"
	if diff < 0 {
		diff, how = -diff, "long"
	}
	return fmt.Sprintf("%s input is %d word(s) too %s (have %d, want %d)", e.Mode, diff, how, e.Have, e.Want)
}

func (e *LengthError) Unwrap() error { return ErrLengthMismatch }

// Reconcile brings tokens to exactly rows*cols words.
//
// In decode mode any other length is an error. In encode mode a short message
// is padded with words drawn uniformly, with replacement, from dummies; a long
// one is an error. The input slice is never modified.
//
// The token count and its divisors (candidate row/column counts) are written
// to diag as advisory output.
func Reconcile(tokens []string, rows, cols int, mode Mode, dummies []string, rnd *rand.Rand, diag io.Writer) ([]string, error) {
	if diag == nil {
		diag = io.Discard
	}
	n := len(tokens)
	want := rows * cols
	fmt.Fprintf(diag, "\nLength of cipher = %d\n", n)
	fmt.Fprintf(diag, "\nAcceptable row/columns values include: %s\n\n", formatInts(Divisors(n)))

	out := make([]string, n, max(n, want))
	copy(out, tokens)

	switch {
	case n == want:
		return out, nil
	case n > want:
		return nil, &LengthError{Mode: mode, Have: n, Want: want}
	case mode != ModeEncode:
		return nil, &LengthError{Mode: mode, Have: n, Want: want}
	}

	if len(dummies) == 0 {
		return nil, fmt.Errorf("%w: cannot pad %d word(s) with an empty dummy pool", ErrLengthMismatch, want-n)
	}
	if rnd == nil {
		rnd = DefaultConfig().rng()
	}
	for len(out) < want {
		out = append(out, dummies[rnd.Intn(len(dummies))])
	}
	return out, nil
}

// Divisors returns the divisors of n in [2, n), in ascending order.
func Divisors(n int) []int {
	var out []int
	for i := 2; i < n; i++ {
		if n%i == 0 {
			out = append(out, i)
		}
	}
	return out
}

func formatInts(v []int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.Itoa(x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
