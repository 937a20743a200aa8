package internal

import (
	"fmt"
	"strings"

	"rsc.io/qr"
)

// RenderQR encodes text as a QR code and draws it with Unicode half blocks,
// two modules per character cell, surrounded by a quiet zone of quiet
// modules. Light modules are drawn as blocks, so the terminal background
// must be dark.
func RenderQR(text string, level qr.Level, quiet int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("qr: nothing to encode")
	}
	code, err := qr.Encode(text, level)
	if err != nil {
		return "", fmt.Errorf("qr: %w", err)
	}
	if quiet < 0 {
		quiet = 0
	}
	size := code.Size + 2*quiet
	black := func(x, y int) bool {
		x, y = x-quiet, y-quiet
		if x < 0 || y < 0 || x >= code.Size || y >= code.Size {
			return false
		}
		return code.Black(x, y)
	}

	var b strings.Builder
	for y := 0; y < size; y += 2 {
		for x := 0; x < size; x++ {
			top := black(x, y)
			bottom := y+1 < size && black(x, y+1)
			switch {
			case !top && !bottom:
				b.WriteRune('█')
			case !top:
				b.WriteRune('▀')
			case !bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// QRWidth reports how many terminal columns RenderQR needs for text.
func QRWidth(text string, level qr.Level, quiet int) (int, error) {
	code, err := qr.Encode(text, level)
	if err != nil {
		return 0, fmt.Errorf("qr: %w", err)
	}
	return code.Size + 2*max(quiet, 0), nil
}
