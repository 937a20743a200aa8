package internal

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"
)

// SelfTestSet describes one randomized self-test message.
type SelfTestSet struct {
	Size  string // preset size
	Short int    // words left out so the encoder has to pad
}

// DefaultSelfTestSets covers every preset of cfg, once full and once short.
func DefaultSelfTestSets(cfg Config) []SelfTestSet {
	sets := make([]SelfTestSet, 0, 2*len(cfg.Presets))
	for _, p := range cfg.Presets {
		sets = append(sets,
			SelfTestSet{Size: p.Size},
			SelfTestSet{Size: p.Size, Short: min(3, p.Words()-1)},
		)
	}
	return sets
}

// RunSelfTest encodes and decodes random placeholder messages for each set,
// prints the words, the ciphertext and the verdict to out, and returns the
// number of failed sets.
//
// Parameters:
//   - cfg:  tables under test (cfg.Rand seeds the message generator when set)
//   - out:  report destination
//   - sets: messages to try
func RunSelfTest(cfg Config, out io.Writer, sets []SelfTestSet) int {
	r := cfg.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
		cfg.Rand = r
	}
	cfg.Diag = nil
	failed := 0

	for si, set := range sets {
		fmt.Fprintln(out, Style(fmt.Sprintf("Set %d (%s words, %d short):", si+1, set.Size, set.Short), Bold, Purple))

		p, err := cfg.Lookup(set.Size)
		if err != nil {
			fmt.Fprintf(out, "  %s\n", Style("Result: FAILED ("+err.Error()+")", Bold, Red))
			failed++
			continue
		}
		n := p.Words() - set.Short
		if n < 0 {
			n = 0
		}
		words := make([]string, n)
		for i := range words {
			words[i] = fmt.Sprintf("w%03d", r.Intn(1000))
		}
		message := strings.Join(words, " ")

		res, err := EncodeVerified(cfg, set.Size, message)
		fmt.Fprintf(out, "  Words:  %s\n", message)
		if err != nil {
			fmt.Fprintf(out, "  %s\n", Style("Result: FAILED ("+err.Error()+")", Bold, Red))
			failed++
			continue
		}
		fmt.Fprintf(out, "  Cipher: %s\n", res.Output)
		fmt.Fprintf(out, "  %s\n", Style(fmt.Sprintf("Result: PASSED (%d padded)", res.Padded), Bold))
	}

	if len(sets) > 1 {
		fmt.Fprintf(out, "%s %d, %s %d\n",
			Style("Total sets:", Bold), len(sets),
			Style("Failed:", Bold), failed)
	}
	return failed
}
