package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"routecipher/internal"
)

func TestExitStatus(t *testing.T) {
	cfg := internal.DefaultConfig()
	_, sizeErr := cfg.Lookup("99")
	_, modeErr := internal.ParseMode("3")
	_, lengthErr := internal.Decode(cfg, "20", "too few words")
	_, verifyErr := internal.EncodeVerified(cfg, "20", "charlee")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"length mismatch", lengthErr, 1},
		{"invalid key", fmt.Errorf("decode: %w", internal.ErrInvalidKey), 1},
		{"grid underflow", internal.ErrGridUnderflow, 1},
		{"verify failure", verifyErr, 1},
		{"unclassified", errors.New("boom"), 1},
		{"unknown size", sizeErr, 2},
		{"bad mode", modeErr, 2},
		{"input closed", fmt.Errorf("size: %w", internal.ErrInputClosed), 2},
		{"no terminal", internal.ErrNoTerminal, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want != 0 && tt.err == nil {
				t.Fatal("test setup produced no error")
			}
			if got := exitStatus(tt.err); got != tt.want {
				t.Errorf("exitStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestUsageListsEveryFlag(t *testing.T) {
	internal.SetColorEnabled(false)
	defer internal.SetColorEnabled(true)

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	stdout := os.Stdout
	os.Stdout = w
	usage()
	os.Stdout = stdout
	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}

	listed := make(map[string]bool)
	for _, tok := range strings.Fields(string(out)) {
		listed[tok] = true
	}
	for _, f := range []string{"size", "mode", "message", "hide", "mask", "verify", "qr", "quiet", "self-test", "no-color", "version"} {
		if !listed["--"+f] {
			t.Errorf("usage is missing --%s:\n%s", f, out)
		}
	}
}
