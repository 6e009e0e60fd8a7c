/*
Package console implements the terminal side of the game: line input, yes/no prompts,
numbered menus and colored output.

All interaction is synchronous. Every read blocks until the player submits a line, and
invalid answers are re-prompted without limit.
*/
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"wbrcli/internal/pkg/errs"
)

var (
	// Prompt text, questions and neutral information.
	blue = color.New(color.FgBlue).SprintFunc()
	// Winning turns.
	green = color.New(color.FgGreen).SprintFunc()
	// Lost turns and errors.
	red = color.New(color.FgRed).SprintFunc()
	// Emphasis, combined with one of the colors above.
	bold = color.New(color.Bold).SprintFunc()
)

// Console reads player input and writes game output.
type Console struct {
	in  *bufio.Reader
	out io.Writer
	err io.Writer
}

// New creates a Console over arbitrary streams. Error messages go to out.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out, err: out}
}

// Stdio creates a Console over the process's standard streams.
func Stdio() *Console {
	return &Console{in: bufio.NewReader(os.Stdin), out: color.Output, err: color.Error}
}

// ReadLine reads one line and returns it with surrounding whitespace trimmed.
// It returns ErrInputClosed when the input ends before any character was read.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", errs.NewError(errs.ErrInputClosed)
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Ask writes prompt without a trailing newline and reads the answer.
func (c *Console) Ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	return c.ReadLine()
}

// Confirm asks a yes/no question. An empty answer, or closed input, selects the default.
// With defaultYes only an answer starting with "n" declines; otherwise only one starting
// with "y" accepts.
func (c *Console) Confirm(question string, defaultYes bool) bool {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	answer, err := c.Ask(blue(question+" "+hint) + " ")
	if err != nil {
		return defaultYes
	}

	answer = strings.ToLower(answer)
	if defaultYes {
		return !strings.HasPrefix(answer, "n")
	}
	return strings.HasPrefix(answer, "y")
}

// Choose shows a prompt until the player enters a number between 0 and max inclusive.
func (c *Console) Choose(prompt string, max int) (int, error) {
	for {
		answer, err := c.Ask(prompt)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(answer)
		if err != nil {
			c.Failure("Please enter a valid number!")
			continue
		}
		if n < 0 || n > max {
			c.Failure("%s", errs.Message(errs.NewError(errs.ErrInvalidSelection, max)))
			continue
		}
		return n, nil
	}
}

// Info writes a neutral line.
func (c *Console) Info(format string, args ...any) {
	fmt.Fprintln(c.out, blue(fmt.Sprintf(format, args...)))
}

// Success writes a line for a winning outcome.
func (c *Console) Success(format string, args ...any) {
	fmt.Fprintln(c.out, green(fmt.Sprintf(format, args...)))
}

// Failure writes a line for a losing outcome or an input problem.
func (c *Console) Failure(format string, args ...any) {
	fmt.Fprintln(c.out, red(fmt.Sprintf(format, args...)))
}

// Error writes a failed operation and its message.
func (c *Console) Error(label string, err error) {
	fmt.Fprintln(c.err, red(label), red(errs.Message(err)))
}

// Bold renders s in bold.
func Bold(s string) string {
	return bold(s)
}
