package internal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for the cipher core. Callers match with errors.Is; the
// wrapped message carries the detail.
var (
	ErrInvalidSize    = errors.New("invalid message size")
	ErrInvalidMode    = errors.New("invalid mode")
	ErrInvalidKey     = errors.New("invalid key")
	ErrLengthMismatch = errors.New("message length mismatch")
	ErrGridUnderflow  = errors.New("grid underflow")
)

// ParseKey converts a space-separated column key (e.g. "-1 2 -3 4") into its
// signed integers and validates it against cols.
//
// A valid key has exactly cols entries, no zero, every magnitude in
// [1, cols], and every magnitude exactly once. The sign selects the read
// direction of that column and is returned unchanged.
func ParseKey(raw string, cols int) ([]int, error) {
	fields := strings.Fields(raw)
	key := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidKey, f)
		}
		key = append(key, v)
	}
	if err := ValidateKey(key, cols); err != nil {
		return nil, err
	}
	return key, nil
}

// ValidateKey checks an already-parsed column key. See ParseKey.
func ValidateKey(key []int, cols int) error {
	if cols <= 0 {
		return fmt.Errorf("%w: column count must be positive, got %d", ErrInvalidKey, cols)
	}
	if len(key) != cols {
		return fmt.Errorf("%w: need %d values, got %d", ErrInvalidKey, cols, len(key))
	}
	seen := make([]bool, cols+1)
	for _, k := range key {
		m := abs(k)
		switch {
		case k == 0:
			return fmt.Errorf("%w: zero is not a column", ErrInvalidKey)
		case m > cols:
			return fmt.Errorf("%w: column %d out of range 1..%d", ErrInvalidKey, k, cols)
		case seen[m]:
			return fmt.Errorf("%w: column %d used more than once", ErrInvalidKey, m)
		}
		seen[m] = true
	}
	return nil
}

// FormatKey renders a key in its space-separated form.
func FormatKey(key []int) string {
	parts := make([]string, len(key))
	for i, k := range key {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, " ")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
