package internal

import (
	"fmt"
	"strings"
)

// EncodeVerified encodes message and then immediately decodes the result with
// the same tables. The decoded words must equal the message words exactly and
// in order; otherwise an error is returned and no ciphertext is produced.
//
// Before decoding, every message word is also looked up at its ciphertext
// position through the inverse of the encode key.
//
// Verification fails for messages that cannot survive the round trip, such as
// ones containing a dummy word or a code word as plain text.
func EncodeVerified(cfg Config, size, message string) (Result, error) {
	res, err := Encode(cfg, size, message)
	if err != nil {
		return Result{}, err
	}
	plain := NewCodebook(cfg.Codes).Forward(strings.Fields(message))
	if err := checkPositions(res.Words, plain, res.Preset.EncodeKey); err != nil {
		return Result{}, fmt.Errorf("verify: %w", err)
	}
	quiet := cfg
	quiet.Diag = nil
	back, err := Decode(quiet, size, res.Output)
	if err != nil {
		return Result{}, fmt.Errorf("verify: decode failed: %w", err)
	}
	if err := sameWords(back.Words, strings.Fields(message)); err != nil {
		return Result{}, fmt.Errorf("verify: %w", err)
	}
	return res, nil
}

// checkPositions confirms that plaintext word j sits at ciphertext position
// inv[j], where inv is the inverse of the encode key.
func checkPositions(cipher, plain []string, encodeKey []int) error {
	if len(cipher) != len(encodeKey) || !IsPermutation(encodeKey) {
		return fmt.Errorf("encode key does not cover %d ciphertext words", len(cipher))
	}
	inv := Inv(encodeKey)
	for j, w := range plain {
		if j >= len(inv) {
			return fmt.Errorf("plaintext has %d words, grid holds %d", len(plain), len(inv))
		}
		if cipher[inv[j]] != w {
			return fmt.Errorf("word %d (%q) not at ciphertext position %d (found %q)", j, w, inv[j], cipher[inv[j]])
		}
	}
	return nil
}

func sameWords(have, want []string) error {
	if len(have) != len(want) {
		return fmt.Errorf("round-trip mismatch: decoded %d words, want %d", len(have), len(want))
	}
	for i := range want {
		if have[i] != want[i] {
			return fmt.Errorf("round-trip mismatch at position %d: have %q, want %q", i, have[i], want[i])
		}
	}
	return nil
}
