package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "https://www.whatbeatsrock.com/api/", cfg.APIBase)
	assert.Equal(t, "sb-xrrlbpmfxuxumxqbccxz-auth-token", cfg.AuthCookieName)
	assert.Equal(t, "wbr_save.json", cfg.SaveFile)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 4, cfg.RequestBurst)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("WBR_ENVIRONMENT", "development")
	t.Setenv("WBR_API_BASE", "http://localhost:9999/api")
	t.Setenv("WBR_HTTP_TIMEOUT", "5s")
	t.Setenv("WBR_REQUEST_RATE", "0.5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "http://localhost:9999/api/", cfg.APIBase)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.InDelta(t, 0.5, cfg.RequestRate, 1e-9)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		value  string
		errMsg string
	}{
		{name: "relative api base", key: "WBR_API_BASE", value: "api/", errMsg: "WBR_API_BASE"},
		{name: "save file with path", key: "WBR_SAVE_FILE", value: "../wbr.json", errMsg: "WBR_SAVE_FILE"},
		{name: "zero burst", key: "WBR_REQUEST_BURST", value: "0", errMsg: "WBR_REQUEST_BURST"},
		{name: "negative timeout", key: "WBR_HTTP_TIMEOUT", value: "-1s", errMsg: "WBR_HTTP_TIMEOUT"},
		{name: "unparsable burst", key: "WBR_REQUEST_BURST", value: "many", errMsg: "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
