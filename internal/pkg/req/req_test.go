package req

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wbrcli/internal/pkg/errs"
)

func TestJSON_EncodesPayload(t *testing.T) {
	payload := struct {
		Gid   string `json:"gid"`
		Guess string `json:"guess"`
	}{Gid: "abc", Guess: "paper"}

	r, err := JSON(context.Background(), http.MethodPost, "https://example.com/api/vs", payload)
	require.NoError(t, err)

	body, err := io.ReadAll(r.Body)
	require.NoError(t, err)

	assert.JSONEq(t, `{"gid":"abc","guess":"paper"}`, string(body))
	assert.Equal(t, ContentTypeJSON, r.Header.Get("Content-Type"))
	assert.Equal(t, ContentTypeJSON, r.Header.Get("Accept"))
}

func TestJSON_NilPayload(t *testing.T) {
	r, err := JSON(context.Background(), http.MethodGet, "https://example.com/api/users/1/custom", nil)
	require.NoError(t, err)

	assert.Nil(t, r.Body)
	assert.Empty(t, r.Header.Get("Content-Type"))
}

func TestJSON_UnencodablePayload(t *testing.T) {
	_, err := JSON(context.Background(), http.MethodPost, "https://example.com", map[string]any{"ch": make(chan int)})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.NewError(errs.ErrInvalidRequest))
}

func TestBearer(t *testing.T) {
	r, err := JSON(context.Background(), http.MethodGet, "https://example.com", nil)
	require.NoError(t, err)

	Bearer(r, "tok")
	assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
}
