package internal

// Presets for the two supported message sizes, plus the code table and dummy
// pool used around the transposition.
//
// Grid layout (42 words, 7 rows × 6 columns), words numbered row-major:
//
//	 0  1  2  3  4  5
//	 6  7  8  9 10 11
//	12 13 14 15 16 17
//	18 19 20 21 22 23
//	24 25 26 27 28 29
//	30 31 32 33 34 35
//	36 37 38 39 40 41
//
// The decode key lists columns in the order the ciphertext visits them. A
// negative column is read bottom to top, a positive one top to bottom. The
// encode key is the same route flattened into word positions, so key
// "-1 3 -2 6 5 -4" starts with 36 30 24 18 12 6 0 and then 2 8 14 ...

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"
)

// Preset fixes the grid and keys for one message size.
type Preset struct {
	Size      string // "20" or "42"
	Rows      int
	Cols      int
	EncodeKey []int // flattened route, a permutation of 0..Rows*Cols-1
	DecodeKey []int // signed 1-based columns
}

// Words returns the number of words a message of this size holds.
func (p Preset) Words() int { return p.Rows * p.Cols }

// Validate reports whether the preset is internally consistent: the
// dimensions match the encode key, the encode key is a permutation, the
// decode key is a valid column key, and both keys describe the same route.
func (p Preset) Validate() error {
	if p.Rows <= 0 || p.Cols <= 0 {
		return fmt.Errorf("preset %q: grid %dx%d is empty", p.Size, p.Rows, p.Cols)
	}
	if len(p.EncodeKey) != p.Words() {
		return fmt.Errorf("preset %q: encode key has %d entries, grid holds %d", p.Size, len(p.EncodeKey), p.Words())
	}
	if !IsPermutation(p.EncodeKey) {
		return fmt.Errorf("preset %q: encode key is not a permutation of 0..%d", p.Size, p.Words()-1)
	}
	route, err := DeriveIndexKey(p.DecodeKey, p.Rows, p.Cols)
	if err != nil {
		return fmt.Errorf("preset %q: %w", p.Size, err)
	}
	for i := range route {
		if route[i] != p.EncodeKey[i] {
			return fmt.Errorf("preset %q: encode key diverges from decode key at position %d (have %d, want %d)",
				p.Size, i, p.EncodeKey[i], route[i])
		}
	}
	return nil
}

// CodeEntry maps a plain word to its code word.
type CodeEntry struct {
	Word string
	Code string
}

// Config carries every table the cipher core reads. The zero value is not
// usable; start from DefaultConfig and override fields as needed.
type Config struct {
	Presets []Preset
	Codes   []CodeEntry // table order decides which entry wins on a collision
	Dummies []string
	Rand    *rand.Rand // source for dummy padding; nil uses a time-seeded source
	Diag    io.Writer  // diagnostic output; nil discards
}

// DefaultConfig returns the built-in presets, code table and dummy pool.
func DefaultConfig() Config {
	return Config{
		Presets: []Preset{
			{
				Size:      "20",
				Rows:      5,
				Cols:      4,
				EncodeKey: []int{16, 12, 8, 4, 0, 1, 5, 9, 13, 17, 18, 14, 10, 6, 2, 3, 7, 11, 15, 19},
				DecodeKey: mustKey("-1 2 -3 4", 4),
			},
			{
				Size: "42",
				Rows: 7,
				Cols: 6,
				EncodeKey: []int{
					36, 30, 24, 18, 12, 6, 0,
					2, 8, 14, 20, 26, 32, 38,
					37, 31, 25, 19, 13, 7, 1,
					5, 11, 17, 23, 29, 35, 41,
					4, 10, 16, 22, 28, 34, 40,
					39, 33, 27, 21, 15, 9, 3,
				},
				DecodeKey: mustKey("-1 3 -2 6 5 -4", 6),
			},
		},
		Codes: []CodeEntry{
			{"east", "w3st"},
			{"west", "soutw@rd"},
			{"south", "n0rth"},
			{"forward", "b@ckward"},
			{"up", "d0wn"},
			{"increase", "007"},
			{"decrease", "008"},
			{"succeed", "009"},
			{"retreat", "010"},
		},
		Dummies: []string{
			"tset", "teh", "charlee", "whede", "theyre",
			"001", "002", "003", "004", "005", "006",
		},
	}
}

// mustKey parses a built-in column key.
func mustKey(raw string, cols int) []int {
	key, err := ParseKey(raw, cols)
	if err != nil {
		panic("internal: bad built-in key: " + err.Error())
	}
	return key
}

// Lookup returns the preset for size ("20" or "42" with the default config).
func (c Config) Lookup(size string) (Preset, error) {
	size = strings.TrimSpace(size)
	for _, p := range c.Presets {
		if p.Size == size {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w %q (supported: %s)", ErrInvalidSize, size, strings.Join(c.Sizes(), ", "))
}

// Sizes lists the configured message sizes in preset order.
func (c Config) Sizes() []string {
	out := make([]string, len(c.Presets))
	for i, p := range c.Presets {
		out[i] = p.Size
	}
	return out
}

func (c Config) rng() *rand.Rand {
	if c.Rand != nil {
		return c.Rand
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func (c Config) diag() io.Writer {
	if c.Diag != nil {
		return c.Diag
	}
	return io.Discard
}

// Mode selects the direction of a run.
type Mode int

const (
	ModeEncode Mode = iota + 1
	ModeDecode
)

func (m Mode) String() string {
	switch m {
	case ModeEncode:
		return "encode"
	case ModeDecode:
		return "decode"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts the menu choices "1"/"2" and the names "encode"/"decode".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "encode":
		return ModeEncode, nil
	case "2", "decode":
		return ModeDecode, nil
	default:
		return 0, fmt.Errorf("%w %q (enter '1' to encode, '2' to decode)", ErrInvalidMode, s)
	}
}
