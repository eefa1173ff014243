package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// interactive reports whether stdin is a terminal. Prompts are only printed
// for interactive sessions so piped scripts produce clean output.
func interactive() bool {
	return isTerminal(int(os.Stdin.Fd()))
}

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPosition returns the 1-based list position given as args[0], or asks
// for one when no argument was typed.
func GetPosition(args []string, reader *bufio.Reader, prompt string, w io.Writer) (int, error) {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else {
		var err error
		if raw, err = GetSimpleText(reader, prompt, w); err != nil {
			return 0, err
		}
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("not a list position: %q", raw)
	}
	return n, nil
}

// GetChoice shows numbered options and returns the picked one. A number
// selects from options; any other non-empty text is returned as typed.
// Empty input returns "".
func GetChoice(reader *bufio.Reader, prompt string, options []string, w io.Writer) (string, error) {
	for i, o := range options {
		if _, err := fmt.Fprintf(w, "  %d) %s\n", i+1, o); err != nil {
			return "", err
		}
	}

	s, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return "", err
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(options) {
		return options[n-1], nil
	}
	return s, nil
}
