package logx

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitGlobalLoggerTo_Levels(t *testing.T) {
	var buf bytes.Buffer

	InitGlobalLoggerTo(&buf, false)
	Info("quiet info")
	Warn("loud warning")

	assert.NotContains(t, buf.String(), "quiet info")
	assert.Contains(t, buf.String(), "loud warning")

	buf.Reset()
	InitGlobalLoggerTo(&buf, true)
	Debug("debug line", "key", "value")
	Info("Save slot located", "path", "/data/wbr_save.json")

	assert.Contains(t, buf.String(), "debug line")
	assert.Contains(t, buf.String(), "value")
	assert.Contains(t, buf.String(), "Save slot located")
	assert.Contains(t, buf.String(), "/data/wbr_save.json")
}

func TestCheckFields_OddCountDropped(t *testing.T) {
	var buf bytes.Buffer
	InitGlobalLoggerTo(&buf, true)

	assert.Nil(t, checkFields("Info", []any{"lonely"}))
	assert.Contains(t, buf.String(), "odd number of fields")
	assert.Equal(t, []any{"k", 1}, checkFields("Info", []any{"k", 1}))
}

func TestTransport_LogsWithoutQuery(t *testing.T) {
	var buf bytes.Buffer
	InitGlobalLoggerTo(&buf, true)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	client := &http.Client{Transport: Transport(nil)}
	res, err := client.Get(srv.URL + "/api/vs?token=secret-token")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusTeapot, res.StatusCode)
	assert.Contains(t, buf.String(), "/api/vs")
	assert.Contains(t, buf.String(), "418")
	assert.NotContains(t, buf.String(), "secret-token")
}
