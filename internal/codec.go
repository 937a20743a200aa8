package internal

import (
	"fmt"
	"io"
	"strings"
)

// Result is the outcome of one Encode or Decode run.
type Result struct {
	Output string   // space-joined output message
	Words  []string // Output as tokens
	Preset Preset
	Padded int // dummy words appended before encoding
}

// Encode turns a plaintext message into route-cipher text for the given size.
//
// Behavior:
//  1. Split message on whitespace.
//  2. Swap plain words for code words.
//  3. Pad to the grid size with dummy words (longer messages are rejected).
//  4. Emit the words in encode-key order.
//
// Diagnostics go to cfg.Diag.
func Encode(cfg Config, size, message string) (Result, error) {
	p, err := cfg.Lookup(size)
	if err != nil {
		return Result{}, err
	}
	d := cfg.diag()
	fmt.Fprintf(d, "\nPlain Text = %s\n", message)
	writeTrying(d, p, FormatKey(p.EncodeKey))

	tokens := NewCodebook(cfg.Codes).Forward(strings.Fields(message))
	n := len(tokens)
	tokens, err = Reconcile(tokens, p.Rows, p.Cols, ModeEncode, cfg.Dummies, cfg.rng(), d)
	if err != nil {
		return Result{}, err
	}
	words, err := encryptTokens(tokens, p.EncodeKey)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Output: strings.Join(words, " "),
		Words:  words,
		Preset: p,
		Padded: len(tokens) - n,
	}, nil
}

// Decode recovers the plaintext of a route-cipher message for the given size.
//
// Behavior:
//  1. Split message on whitespace.
//  2. Swap code words back to plain words.
//  3. Require exactly the grid size.
//  4. Build the column grid from the decode key and read it out row by row,
//     dropping dummy words.
//
// Diagnostics go to cfg.Diag.
func Decode(cfg Config, size, message string) (Result, error) {
	p, err := cfg.Lookup(size)
	if err != nil {
		return Result{}, err
	}
	d := cfg.diag()
	fmt.Fprintf(d, "\nCipher Text = %s\n", message)
	writeTrying(d, p, FormatKey(p.DecodeKey))

	tokens := NewCodebook(cfg.Codes).Reverse(strings.Fields(message))
	tokens, err = Reconcile(tokens, p.Rows, p.Cols, ModeDecode, cfg.Dummies, nil, d)
	if err != nil {
		return Result{}, err
	}
	columns, err := BuildColumns(p.DecodeKey, tokens, p.Rows, p.Cols)
	if err != nil {
		return Result{}, err
	}
	words, err := decryptTokens(columns, p.Rows, cfg.Dummies)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Output: strings.Join(words, " "),
		Words:  words,
		Preset: p,
	}, nil
}

// Run dispatches to Encode or Decode.
func Run(cfg Config, mode Mode, size, message string) (Result, error) {
	switch mode {
	case ModeEncode:
		return Encode(cfg, size, message)
	case ModeDecode:
		return Decode(cfg, size, message)
	default:
		return Result{}, fmt.Errorf("%w %v", ErrInvalidMode, mode)
	}
}

func writeTrying(d io.Writer, p Preset, key string) {
	fmt.Fprintf(d, "\nTrying %d columns\n", p.Cols)
	fmt.Fprintf(d, "\nTrying %d rows\n", p.Rows)
	fmt.Fprintf(d, "\nTrying key = %s\n", key)
}
