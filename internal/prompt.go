package internal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"unicode/utf8"

	"golang.org/x/term"
)

// ErrInputClosed is returned when the input ends before a prompt is answered.
var ErrInputClosed = errors.New("input closed")

// ErrNoTerminal is returned when hidden entry is asked for without a terminal.
var ErrNoTerminal = errors.New("hidden entry requires an interactive terminal")

// Prompter asks the interactive questions of a run. Invalid size or mode
// answers are reported on Err and asked again; the message itself is taken
// as typed.
type Prompter struct {
	In  *bufio.Reader
	Out io.Writer // prompts
	Err io.Writer // retry notices

	// Hidden message entry reads stdin directly; TermFD is its descriptor.
	// Mask echoes '*' per character instead of nothing.
	Hide   bool
	Mask   bool
	TermFD int
}

// NewPrompter wires a Prompter to the process stdio.
func NewPrompter(hide, mask bool) *Prompter {
	return &Prompter{
		In:     bufio.NewReader(os.Stdin),
		Out:    os.Stdout,
		Err:    os.Stderr,
		Hide:   hide,
		Mask:   mask,
		TermFD: int(syscall.Stdin),
	}
}

// AskSize asks until the answer names one of cfg's presets.
func (p *Prompter) AskSize(cfg Config) (string, error) {
	sizes := cfg.Sizes()
	q := fmt.Sprintf("How long is your message to be encoded/decoded, %s words? (Enter %s): ",
		strings.Join(sizes, " words or "), "'"+strings.Join(sizes, "' or '")+"'")
	for {
		ans, err := p.ask(q)
		if err != nil {
			return "", err
		}
		if _, err := cfg.Lookup(ans); err == nil {
			return ans, nil
		}
		fmt.Fprintln(p.Err, Style("Invalid message size input. Please try again", Red))
	}
}

// AskMode asks until the answer is a valid mode.
func (p *Prompter) AskMode() (Mode, error) {
	for {
		ans, err := p.ask("\nDo you want to encode this message or decode it? (Enter '1' to encode, '2' to decode): ")
		if err != nil {
			return 0, err
		}
		if m, err := ParseMode(ans); err == nil {
			return m, nil
		}
		fmt.Fprintln(p.Err, Style("Invalid mode input. Please try again", Red))
	}
}

// AskMessage reads the message for a given size.
func (p *Prompter) AskMessage(size string) (string, error) {
	q := fmt.Sprintf("\nEnter your %s-word message:\n", size)
	if p.Hide {
		return p.readHidden(q)
	}
	return p.ask(q)
}

func (p *Prompter) ask(q string) (string, error) {
	fmt.Fprint(p.Out, q)
	line, err := p.In.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// readHidden reads one line without echoing it. With Mask set, input is read
// in raw mode with '*' echo and a signal-safe restore; otherwise it uses the
// terminal's hidden input via ReadPassword.
func (p *Prompter) readHidden(q string) (string, error) {
	fd := p.TermFD
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("%w (fd %d)", ErrNoTerminal, fd)
	}
	fmt.Fprint(p.Out, q)

	if !p.Mask {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(p.Out)
		if err != nil {
			return "", fmt.Errorf("failed to read message")
		}
		return strings.TrimSpace(string(b)), nil
	}

	oldState, err := term.GetState(fd)
	if err != nil {
		return "", fmt.Errorf("terminal not ready")
	}
	restore := func() { _ = term.Restore(fd, oldState) }

	done := make(chan struct{})
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigc:
			restore()
			os.Exit(130)
		case <-done:
		}
	}()

	if _, err := term.MakeRaw(fd); err != nil {
		signal.Stop(sigc)
		close(done)
		return "", fmt.Errorf("terminal not ready")
	}
	defer func() { restore(); signal.Stop(sigc); close(done) }()

	var buf []byte
	for {
		var b [1]byte
		n, er := os.Stdin.Read(b[:])
		if er != nil || n == 0 {
			break
		}
		ch := b[0]
		if ch == '\r' || ch == '\n' {
			fmt.Fprint(p.Out, "\r\n")
			break
		}
		if ch == 0x03 { // Ctrl-C is not delivered as a signal in raw mode
			restore()
			os.Exit(130)
		}
		if ch == 0x7f || ch == '\b' {
			if len(buf) > 0 {
				_, size := utf8.DecodeLastRune(buf)
				buf = buf[:len(buf)-size]
				fmt.Fprint(p.Out, "\b \b")
			}
			continue
		}
		if ch < 0x20 {
			continue
		}
		buf = append(buf, ch)
		if utf8.RuneStart(ch) {
			fmt.Fprint(p.Out, "*")
		}
	}
	return strings.TrimSpace(string(buf)), nil
}
