// Package prompt reads banner text interactively.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// ErrCanceled is returned when the user interrupts the prompt.
var ErrCanceled = errors.New("prompt canceled")

// Line prints prompt and reads one line, trimmed of surrounding whitespace.
// A terminal gets line editing through readline; anything else (a pipe, a
// file) is read directly.
func Line(prompt string, in *os.File, out io.Writer) (string, error) {
	if term.IsTerminal(int(in.Fd())) {
		return editLine(prompt, in, out)
	}
	return ReadLine(prompt, in, out)
}

func editLine(prompt string, in *os.File, out io.Writer) (string, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		Stdin:           in,
		Stdout:          out,
	})
	if err != nil {
		return "", fmt.Errorf("starting prompt: %w", err)
	}
	defer rl.Close()

	line, err := rl.Readline()
	if err != nil {
		if err == readline.ErrInterrupt || err == io.EOF {
			return "", ErrCanceled
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadLine prints prompt to w and reads one line from r without line
// editing. Input ending without a newline still counts as a line; empty
// input at EOF is ErrCanceled.
func ReadLine(prompt string, r io.Reader, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			return "", ErrCanceled
		}
	}
	return strings.TrimSpace(line), nil
}
