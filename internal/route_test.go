package internal

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestDeriveIndexKeyMatchesPresets(t *testing.T) {
	for _, p := range DefaultConfig().Presets {
		got, err := DeriveIndexKey(p.DecodeKey, p.Rows, p.Cols)
		if err != nil {
			t.Fatalf("size %s: %v", p.Size, err)
		}
		if !reflect.DeepEqual(got, p.EncodeKey) {
			t.Errorf("size %s: derived %v, preset %v", p.Size, got, p.EncodeKey)
		}
		if !IsPermutation(got) {
			t.Errorf("size %s: derived key is not a permutation", p.Size)
		}
	}
}

func TestDeriveIndexKeyErrors(t *testing.T) {
	if _, err := DeriveIndexKey([]int{-1, 2}, 0, 2); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey for rows=0, got %v", err)
	}
	if _, err := DeriveIndexKey([]int{-1, 0}, 3, 2); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey for zero column, got %v", err)
	}
}

func TestInv(t *testing.T) {
	p := DefaultConfig().Presets[1].EncodeKey
	inv := Inv(p)
	for i, v := range p {
		if inv[v] != i {
			t.Fatalf("inv[p[%d]] = %d, want %d", i, inv[v], i)
		}
	}
	if !reflect.DeepEqual(Inv(inv), p) {
		t.Error("Inv(Inv(p)) should equal p")
	}
}

func TestIsPermutation(t *testing.T) {
	tests := []struct {
		p    []int
		want bool
	}{
		{nil, true},
		{[]int{0}, true},
		{[]int{2, 0, 1}, true},
		{[]int{0, 0, 1}, false},
		{[]int{0, 3, 1}, false},
		{[]int{-1, 0}, false},
	}
	for _, tt := range tests {
		if got := IsPermutation(tt.p); got != tt.want {
			t.Errorf("IsPermutation(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestPresetValidate(t *testing.T) {
	for _, p := range DefaultConfig().Presets {
		if err := p.Validate(); err != nil {
			t.Errorf("preset %s: %v", p.Size, err)
		}
	}

	bad := DefaultConfig().Presets[0]
	bad.EncodeKey = append([]int(nil), bad.EncodeKey...)
	bad.EncodeKey[0], bad.EncodeKey[1] = bad.EncodeKey[1], bad.EncodeKey[0]
	if err := bad.Validate(); err == nil {
		t.Error("swapped encode key should not validate")
	}

	short := DefaultConfig().Presets[0]
	short.EncodeKey = short.EncodeKey[:19]
	if err := short.Validate(); err == nil {
		t.Error("truncated encode key should not validate")
	}

	dup := DefaultConfig().Presets[0]
	dup.EncodeKey = append([]int(nil), dup.EncodeKey...)
	dup.EncodeKey[1] = dup.EncodeKey[0]
	if err := dup.Validate(); err == nil || !strings.Contains(err.Error(), "not a permutation") {
		t.Errorf("duplicate encode index: got %v, want a permutation error", err)
	}

	empty := Preset{Size: "0"}
	if err := empty.Validate(); err == nil {
		t.Error("empty grid should not validate")
	}
}
