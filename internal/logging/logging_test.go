// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"info", zerolog.InfoLevel, false},
		{"DEBUG", zerolog.DebugLevel, false},
		{"warning", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"trace", zerolog.InfoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "planchat.log")

	logger, closer, err := New(Options{Level: "info", Format: "json", File: path})
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Uint64("id", 7).Msg("Message committed")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1, "debug event should be filtered")

	var event map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &event))
	assert.Equal(t, "info", event["level"])
	assert.Equal(t, "Message committed", event["message"])
	assert.EqualValues(t, 7, event["id"])
	assert.Contains(t, event, "time")
}

func TestNew_TextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planchat.log")

	logger, closer, err := New(Options{Level: "debug", Format: "text", File: path})
	require.NoError(t, err)
	logger.Debug().Msg("Scroll to latest dropped")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Scroll to latest dropped")
	assert.NotContains(t, string(data), "\x1b[", "file output should not be colored")
}

func TestNew_NoOutputs(t *testing.T) {
	logger, closer, err := New(Options{})
	require.NoError(t, err)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
	assert.NoError(t, closer.Close())
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandHome("~/.planchat/planchat.log")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".planchat", "planchat.log"), got)

	got, err = expandHome("/var/log/x.log")
	require.NoError(t, err)
	assert.Equal(t, "/var/log/x.log", got)
}
