package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("BOOKING_TIMEZONE", "UTC")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 1500*time.Millisecond, cfg.Chat.ReplyDelay)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, time.UTC, cfg.Booking.Location)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "127.0.0.1:9000")
	t.Setenv("CHAT_REPLY_DELAY", "250ms")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("BOOKING_TIMEZONE", "America/New_York")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 250*time.Millisecond, cfg.Chat.ReplyDelay)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "America/New_York", cfg.Booking.Location.String())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"port with spaces", "PORT", "80 80"},
		{"bad duration", "CHAT_REPLY_DELAY", "soon"},
		{"negative delay", "CHAT_REPLY_DELAY", "-1s"},
		{"unknown zone", "BOOKING_TIMEZONE", "Mars/Olympus"},
		{"zero burst", "RATE_LIMIT_BURST", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestParseAddr(t *testing.T) {
	addr, err := parseAddr("3000")
	require.NoError(t, err)
	assert.Equal(t, ":3000", addr)
}
