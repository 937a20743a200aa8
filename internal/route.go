package internal

import "fmt"

// DeriveIndexKey flattens a signed column key into the word-position
// permutation used by Encrypt. Columns are visited in key order; column |k|
// of the row-major grid is read bottom to top when k < 0 and top to bottom
// when k > 0.
func DeriveIndexKey(key []int, rows, cols int) ([]int, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("%w: row count must be positive, got %d", ErrInvalidKey, rows)
	}
	if err := ValidateKey(key, cols); err != nil {
		return nil, err
	}
	out := make([]int, 0, rows*cols)
	for _, k := range key {
		c := abs(k) - 1
		if k < 0 {
			for r := rows - 1; r >= 0; r-- {
				out = append(out, r*cols+c)
			}
			continue
		}
		for r := 0; r < rows; r++ {
			out = append(out, r*cols+c)
		}
	}
	return out, nil
}

// Inv computes the inverse mapping of a permutation p where p[i] is the value
// at position i. The returned slice inv has inv[p[i]] = i for all i.
func Inv(p []int) []int {
	inv := make([]int, len(p))
	for i, v := range p {
		inv[v] = i
	}
	return inv
}

// IsPermutation reports whether p holds each of 0..len(p)-1 exactly once.
func IsPermutation(p []int) bool {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
