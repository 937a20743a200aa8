// routecipher — word-level route transposition cipher
//
// Two fixed grids:
//   - 20 words: 5 rows × 4 columns, column key -1 2 -3 4
//   - 42 words: 7 rows × 6 columns, column key -1 3 -2 6 5 -4
//
// Encoding (plaintext -> ciphertext):
//   - Swap sensitive words for code words (east → w3st, up → d0wn, ...)
//   - Pad short messages with dummy words to fill the grid
//   - Read the grid column by column along the key; a negative column is read
//     bottom to top, a positive one top to bottom
//
// Decoding reverses the route, drops dummy words and swaps code words back.
//
// Exit status is 0 on success, 1 when the cipher rejects the message or a
// self-test fails, and 2 for usage errors (bad size or mode, closed input, no
// terminal for --hide).
//
// Notes:
//   - Size, mode and message come from --size/--mode/--message or are asked for
//     interactively; invalid answers are asked again
//   - This is a classroom cipher and offers no real secrecy
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"routecipher/internal"

	"golang.org/x/term"
	"rsc.io/qr"
)

var version = "dev"

func usage() {
	prog := filepath.Base(os.Args[0])

	fmt.Println(internal.Banner(version))
	fmt.Println()

	fmt.Println(internal.Style("Usage:", internal.Bold, internal.Blue))
	fmt.Printf("  %s %s\n", prog, internal.Style("[options]", internal.Cyan))
	fmt.Println()

	fmt.Println(internal.Style("Flags:", internal.Bold, internal.Blue))
	fmt.Println(internal.Style("  --size  --mode  --message  --hide  --mask  --verify  --qr  --quiet  --self-test  --no-color  --version", internal.Cyan))
	fmt.Println()

	fmt.Println(internal.Style("Examples:", internal.Bold, internal.Blue))
	fmt.Printf("  %s\n", prog)
	fmt.Printf("  %s --size 20 --mode encode --message '<up to 20 words>'\n", prog)
	fmt.Printf("  %s --size 42 --mode 2 --hide\n", prog)
	fmt.Printf("  %s --self-test\n", prog)
}

func main() {
	size := flag.String("size", "", "Message size: 20 or 42 (asked interactively when empty)")
	modeFlag := flag.String("mode", "", "1/encode or 2/decode (asked interactively when empty)")
	message := flag.String("message", "", "Message text (asked interactively when empty)")
	hide := flag.Bool("hide", false, "Read the message without echo (interactive terminal only)")
	mask := flag.Bool("mask", true, "With --hide, show * while typing (use --mask=false to disable)")
	verify := flag.Bool("verify", false, "When encoding, decode the result and refuse output that does not round-trip")
	showQR := flag.Bool("qr", false, "Also print the result as a QR code")
	quiet := flag.Bool("quiet", false, "Print only the result")
	selfTest := flag.Bool("self-test", false, "Run built-in round-trip test for every preset")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	noColor := flag.Bool("no-color", false, "Disable colored output (TTY-safe)")
	flag.Usage = usage

	flag.Parse()

	if *versionFlag {
		fmt.Println(version)
		return
	}

	// Color enablement: default on for TTY unless --no-color
	internal.SetColorEnabled(!*noColor && term.IsTerminal(int(syscall.Stdout)))

	cfg := internal.DefaultConfig()
	for _, p := range cfg.Presets {
		if err := p.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	if *selfTest {
		fmt.Println(internal.Style("== Self-test ==", internal.Bold))
		if internal.RunSelfTest(cfg, os.Stdout, internal.DefaultSelfTestSets(cfg)) > 0 {
			os.Exit(1)
		}
		return
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected arguments %q; pass the message with --message\n", flag.Args())
		os.Exit(2)
	}

	if !*quiet {
		fmt.Println(internal.Banner(version))
	}

	// Resolve size, mode and message; anything not given on the command line
	// is asked for.
	prompter := internal.NewPrompter(*hide, *mask)
	if strings.TrimSpace(*size) != "" {
		if _, err := cfg.Lookup(*size); err != nil {
			os.Exit(reportError(err))
		}
	} else {
		s, err := prompter.AskSize(cfg)
		if err != nil {
			os.Exit(reportError(err))
		}
		*size = s
	}

	var mode internal.Mode
	if strings.TrimSpace(*modeFlag) != "" {
		m, err := internal.ParseMode(*modeFlag)
		if err != nil {
			os.Exit(reportError(err))
		}
		mode = m
	} else {
		m, err := prompter.AskMode()
		if err != nil {
			os.Exit(reportError(err))
		}
		mode = m
	}

	text := *message
	if strings.TrimSpace(text) == "" {
		t, err := prompter.AskMessage(*size)
		if err != nil {
			os.Exit(reportError(err))
		}
		text = t
	}

	var diag io.Writer = os.Stdout
	if *quiet {
		diag = nil
	}
	cfg.Diag = diag

	var res internal.Result
	var err error
	if mode == internal.ModeEncode && *verify {
		res, err = internal.EncodeVerified(cfg, *size, text)
	} else {
		res, err = internal.Run(cfg, mode, *size, text)
	}
	if err != nil {
		os.Exit(reportError(err))
	}

	if *quiet {
		fmt.Println(res.Output)
	} else {
		fmt.Printf("Key check: %s\n", internal.Style(internal.Fingerprint(res.Preset), internal.Gray))
		if res.Padded > 0 {
			fmt.Printf("Padded with %d dummy word(s)\n", res.Padded)
		}
		label := "Encoded text ="
		if mode == internal.ModeDecode {
			label = "Plain text ="
		}
		fmt.Println(internal.Style(label, internal.Bold, internal.Green), res.Output)
	}

	if *showQR {
		printQR(res.Output)
	}
}

// exitStatus maps a failure to the process exit status: 2 for usage and
// input problems, 1 for everything the cipher itself rejects.
func exitStatus(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, internal.ErrInvalidSize),
		errors.Is(err, internal.ErrInvalidMode),
		errors.Is(err, internal.ErrInputClosed),
		errors.Is(err, internal.ErrNoTerminal):
		return 2
	default:
		return 1
	}
}

// reportError prints a failure, with a "Terminating..." line for length and
// key problems, and returns the exit status.
func reportError(err error) int {
	var lerr *internal.LengthError
	switch {
	case errors.As(err, &lerr):
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		fmt.Fprintln(os.Stderr, internal.Style("ERROR: Input does not meet proper message length. Terminating...", internal.Bold, internal.Red))
	case errors.Is(err, internal.ErrInvalidKey):
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		fmt.Fprintln(os.Stderr, internal.Style("ERROR: Problem with given key. Terminating...", internal.Bold, internal.Red))
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return exitStatus(err)
}

func printQR(text string) {
	const quietZone = 2
	need, err := internal.QRWidth(text, qr.L, quietZone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if w, _, err := term.GetSize(int(syscall.Stdout)); err == nil && w > 0 && w < need {
		fmt.Fprintf(os.Stderr, "warning: terminal is %d columns wide, QR code needs %d\n", w, need)
	}
	s, err := internal.RenderQR(text, qr.L, quietZone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	fmt.Print(s)
}
