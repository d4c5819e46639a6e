package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

//go:generate mockgen -source=terminal.go -destination=mocks/terminal.go -package=mocks

// Reader captures operator input for the interactive shell.
type Reader interface {
	ReadLine(prompt string) (string, error)
	ReadSecret(prompt string) (string, error)
}

// TermReader reads from the process terminal. Secrets are read with echo
// suppressed when the reader wraps os.Stdin and it is a real terminal;
// otherwise (pipes, tests, injected readers) it falls back to plain line
// input.
type TermReader struct {
	in    *bufio.Reader
	stdin bool
	out   io.Writer
	limit int
}

func NewTermReader(in io.Reader, out io.Writer, limit int) *TermReader {
	return &TermReader{
		in:    bufio.NewReader(in),
		stdin: in == os.Stdin,
		out:   out,
		limit: limit,
	}
}

func (r *TermReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)

	line, err := r.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	return r.clip(strings.TrimRight(line, "\r\n")), nil
}

func (r *TermReader) ReadSecret(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)

	if r.stdin && term.IsTerminal(int(os.Stdin.Fd())) {
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(r.out)
		if err != nil {
			return "", err
		}
		return r.clip(string(raw)), nil
	}

	line, err := r.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	return r.clip(strings.TrimRight(line, "\r\n")), nil
}

// clip truncates to the limit in runes so a cut never leaves invalid UTF-8.
func (r *TermReader) clip(s string) string {
	if r.limit <= 0 || len(s) <= r.limit {
		return s
	}

	runes := []rune(s)
	if len(runes) <= r.limit {
		return s
	}
	return string(runes[:r.limit])
}
