package internal

import (
	"fmt"
	"strings"
)

// BuildColumns lays ciphertext tokens into the decode grid.
//
// The tokens are cut into len(key) runs of rows words. Run i belongs to
// column |key[i]|; it is stored as-is when key[i] < 0 and reversed when
// key[i] > 0, so that Decrypt can always take the next plaintext word from
// the end of every column.
func BuildColumns(key []int, tokens []string, rows, cols int) ([][]string, error) {
	if err := ValidateKey(key, cols); err != nil {
		return nil, err
	}
	if len(tokens) != rows*cols {
		return nil, &LengthError{Mode: ModeDecode, Have: len(tokens), Want: rows * cols}
	}
	columns := make([][]string, cols)
	for i, k := range key {
		run := tokens[i*rows : i*rows+rows]
		col := make([]string, rows)
		if k < 0 {
			copy(col, run)
		} else {
			for j, t := range run {
				col[rows-1-j] = t
			}
		}
		columns[abs(k)-1] = col
	}
	return columns, nil
}

// Decrypt reads the plaintext out of columns built by BuildColumns. Each of
// the rows rounds takes the last word of every column in column order,
// dropping dummy words. The columns are consumed.
func Decrypt(columns [][]string, rows int, dummies []string) (string, error) {
	words, err := decryptTokens(columns, rows, dummies)
	if err != nil {
		return "", err
	}
	return strings.Join(words, " "), nil
}

func decryptTokens(columns [][]string, rows int, dummies []string) ([]string, error) {
	skip := make(map[string]struct{}, len(dummies))
	for _, d := range dummies {
		skip[d] = struct{}{}
	}
	out := make([]string, 0, rows*len(columns))
	for r := 0; r < rows; r++ {
		for c := range columns {
			n := len(columns[c])
			if n == 0 {
				return nil, fmt.Errorf("%w: column %d exhausted in round %d of %d", ErrGridUnderflow, c+1, r+1, rows)
			}
			w := columns[c][n-1]
			columns[c] = columns[c][:n-1]
			if _, ok := skip[w]; ok {
				continue
			}
			out = append(out, w)
		}
	}
	return out, nil
}

// Encrypt emits tokens in the order given by indexKey, space-joined.
func Encrypt(tokens []string, indexKey []int) (string, error) {
	words, err := encryptTokens(tokens, indexKey)
	if err != nil {
		return "", err
	}
	return strings.Join(words, " "), nil
}

func encryptTokens(tokens []string, indexKey []int) ([]string, error) {
	out := make([]string, 0, len(indexKey))
	for _, i := range indexKey {
		if i < 0 || i >= len(tokens) {
			return nil, fmt.Errorf("%w: index %d outside message of %d words", ErrInvalidKey, i, len(tokens))
		}
		out = append(out, tokens[i])
	}
	return out, nil
}
