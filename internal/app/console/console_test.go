package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wbrcli/internal/pkg/errs"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out), &out
}

func TestReadLine(t *testing.T) {
	c, _ := newTestConsole("  paper  \nscissors")

	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "paper", line)

	line, err = c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "scissors", line)

	_, err = c.ReadLine()
	assert.ErrorIs(t, err, errs.NewError(errs.ErrInputClosed))
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{name: "default yes empty", input: "\n", defaultYes: true, want: true},
		{name: "default yes no", input: "no\n", defaultYes: true, want: false},
		{name: "default yes garbage", input: "maybe\n", defaultYes: true, want: true},
		{name: "default no empty", input: "\n", defaultYes: false, want: false},
		{name: "default no yes", input: "Yes\n", defaultYes: false, want: true},
		{name: "default no garbage", input: "maybe\n", defaultYes: false, want: false},
		{name: "closed input keeps default", input: "", defaultYes: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out := newTestConsole(tt.input)
			assert.Equal(t, tt.want, c.Confirm("Continue?", tt.defaultYes))

			if tt.defaultYes {
				assert.Contains(t, out.String(), "[Y/n]")
			} else {
				assert.Contains(t, out.String(), "[y/N]")
			}
		})
	}
}

func TestChoose_RepromptsUntilValid(t *testing.T) {
	c, out := newTestConsole("abc\n7\n-1\n2\n")

	n, err := c.Choose("Enter account number (0 for no account): ", 3)
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.Equal(t, 4, strings.Count(out.String(), "Enter account number"))
	assert.Contains(t, out.String(), "Please enter a valid number!")
	assert.Contains(t, out.String(), "between 0 and 3")
}

func TestChoose_ClosedInput(t *testing.T) {
	c, _ := newTestConsole("x\n")

	_, err := c.Choose("pick: ", 1)
	assert.ErrorIs(t, err, errs.NewError(errs.ErrInputClosed))
}
