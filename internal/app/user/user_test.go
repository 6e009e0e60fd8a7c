package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnique(t *testing.T) {
	in := []AuthInfo{
		{UserID: "u1", Handle: "alice", AuthCookie: "firefox"},
		{UserID: "u2", Handle: "bob", AuthCookie: "chrome"},
		{UserID: "u1", Handle: "alice", AuthCookie: "chrome"},
	}

	out := Unique(in)
	assert.Len(t, out, 2)
	assert.Equal(t, "firefox", out[0].AuthCookie)
	assert.Equal(t, "u2", out[1].UserID)

	assert.Empty(t, Unique(nil))
}

func TestAuthInfoString(t *testing.T) {
	a := AuthInfo{UserID: "u1", Handle: "alice", AuthCookie: "secret"}
	assert.Equal(t, "@alice", a.String())
	assert.NotContains(t, a.String(), "secret")
}
