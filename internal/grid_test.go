package internal

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestRoundTrip20WordScenario(t *testing.T) {
	tokens := placeholders(20)
	encodeKey := []int{16, 12, 8, 4, 0, 1, 5, 9, 13, 17, 18, 14, 10, 6, 2, 3, 7, 11, 15, 19}
	decodeKey := []int{-1, 2, -3, 4}

	ct, err := Encrypt(tokens, encodeKey)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if !strings.HasPrefix(ct, "t16 t12 t8 t4 t0 t1 t5") {
		t.Errorf("unexpected ciphertext %q", ct)
	}
	cols, err := BuildColumns(decodeKey, strings.Fields(ct), 5, 4)
	if err != nil {
		t.Fatalf("BuildColumns failed: %v", err)
	}
	pt, err := Decrypt(cols, 5, DefaultConfig().Dummies)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if pt != strings.Join(tokens, " ") {
		t.Errorf("Decrypt = %q, want %q", pt, strings.Join(tokens, " "))
	}
}

func TestRoundTripPresets(t *testing.T) {
	cfg := DefaultConfig()
	for _, p := range cfg.Presets {
		t.Run(p.Size, func(t *testing.T) {
			tokens := placeholders(p.Words())
			ct, err := Encrypt(tokens, p.EncodeKey)
			if err != nil {
				t.Fatalf("Encrypt failed: %v", err)
			}
			cols, err := BuildColumns(p.DecodeKey, strings.Fields(ct), p.Rows, p.Cols)
			if err != nil {
				t.Fatalf("BuildColumns failed: %v", err)
			}
			pt, err := Decrypt(cols, p.Rows, cfg.Dummies)
			if err != nil {
				t.Fatalf("Decrypt failed: %v", err)
			}
			if !reflect.DeepEqual(strings.Fields(pt), tokens) {
				t.Errorf("round trip = %q", pt)
			}
			for i, c := range cols {
				if len(c) != 0 {
					t.Errorf("column %d not exhausted: %v", i+1, c)
				}
			}
		})
	}
}

func TestBuildColumnsDirection(t *testing.T) {
	tokens := []string{"a", "b", "c", "d", "e", "f"}
	cols, err := BuildColumns([]int{2, -1}, tokens, 3, 2)
	if err != nil {
		t.Fatalf("BuildColumns failed: %v", err)
	}
	// Run 0 (a b c) goes to column 2 reversed; run 1 (d e f) to column 1 as-is.
	want := [][]string{{"d", "e", "f"}, {"c", "b", "a"}}
	if !reflect.DeepEqual(cols, want) {
		t.Errorf("BuildColumns = %v, want %v", cols, want)
	}
}

func TestBuildColumnsErrors(t *testing.T) {
	if _, err := BuildColumns([]int{1, 1}, placeholders(6), 3, 2); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
	if _, err := BuildColumns([]int{-1, 2}, placeholders(5), 3, 2); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestDecryptDropsDummies(t *testing.T) {
	cols := [][]string{{"teh", "a"}, {"b", "001"}}
	got, err := Decrypt(cols, 2, DefaultConfig().Dummies)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if got != "a b" {
		t.Errorf("Decrypt = %q, want %q", got, "a b")
	}
}

func TestDecryptUnderflow(t *testing.T) {
	cols := [][]string{{"a", "b"}, {"c"}}
	_, err := Decrypt(cols, 2, nil)
	if !errors.Is(err, ErrGridUnderflow) {
		t.Errorf("expected ErrGridUnderflow, got %v", err)
	}
}

func TestEncryptRejectsOutOfRangeIndex(t *testing.T) {
	if _, err := Encrypt([]string{"a", "b"}, []int{0, 2}); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
	if _, err := Encrypt([]string{"a", "b"}, []int{-1}); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}
