package auth

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wbrcli/internal/app/console"
	"wbrcli/internal/app/user"
	"wbrcli/internal/pkg/errs"
)

func init() {
	color.NoColor = true
}

var (
	alice       = user.AuthInfo{UserID: "u1", Handle: "alice", AuthCookie: "cookie-alice"}
	aliceChrome = user.AuthInfo{UserID: "u1", Handle: "alice", AuthCookie: "cookie-alice-chrome"}
	bob         = user.AuthInfo{UserID: "u2", Handle: "bob", AuthCookie: "cookie-bob"}
)

func newConsole(input string) (*console.Console, *bytes.Buffer) {
	var out bytes.Buffer
	return console.New(strings.NewReader(input), &out), &out
}

func TestSelect_NoCandidates(t *testing.T) {
	e := newEnv(t, fakeSource{})
	e.client.SetAuthCookie("left-over")
	c, out := newConsole("")

	got, err := e.resolver.Select(c, nil)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, e.client.HasAuthCookie())
	assert.Contains(t, out.String(), "No logged in account found")
}

func TestSelect_SingleCandidate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *user.AuthInfo
	}{
		{"default accepts", "\n", &alice},
		{"yes", "y\n", &alice},
		{"no", "n\n", nil},
		{"No", "No thanks\n", nil},
		{"closed input accepts", "", &alice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t, fakeSource{})
			c, out := newConsole(tt.input)

			got, err := e.resolver.Select(c, []user.AuthInfo{alice})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want != nil, e.client.HasAuthCookie())
			assert.Contains(t, out.String(), "Found logged in account: @alice")
			assert.Contains(t, out.String(), "Use this account? [Y/n]")
		})
	}
}

func TestSelect_DuplicatesCollapse(t *testing.T) {
	e := newEnv(t, fakeSource{})
	c, out := newConsole("\n")

	got, err := e.resolver.Select(c, []user.AuthInfo{alice, aliceChrome})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "cookie-alice", got.AuthCookie)
	assert.NotContains(t, out.String(), "multiple")
}

func TestSelect_Menu(t *testing.T) {
	e := newEnv(t, fakeSource{})
	c, out := newConsole("abc\n7\n-1\n2\n")

	got, err := e.resolver.Select(c, []user.AuthInfo{alice, bob, aliceChrome})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, bob, *got)
	assert.True(t, e.client.HasAuthCookie())

	text := out.String()
	assert.Contains(t, text, "Found multiple logged in accounts:")
	assert.Contains(t, text, "[1]: @alice")
	assert.Contains(t, text, "[2]: @bob")
	assert.NotContains(t, text, "[3]")
	assert.Contains(t, text, "Please enter a valid number!")
	assert.Equal(t, 2, strings.Count(text, "Please enter a number between 0 and 2."))
	assert.Equal(t, 4, strings.Count(text, "Enter account number (0 for no account): "))
}

func TestSelect_MenuNone(t *testing.T) {
	e := newEnv(t, fakeSource{})
	c, _ := newConsole("0\n")

	got, err := e.resolver.Select(c, []user.AuthInfo{alice, bob})
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, e.client.HasAuthCookie())
}

func TestSelect_MenuInputClosed(t *testing.T) {
	e := newEnv(t, fakeSource{})
	c, _ := newConsole("")

	_, err := e.resolver.Select(c, []user.AuthInfo{alice, bob})
	assert.ErrorIs(t, err, errs.NewError(errs.ErrInputClosed))
}
