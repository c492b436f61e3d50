package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologAdapter_InfoWritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.InfoLevel)

	log.Info("Frame", "constructed", map[string]interface{}{"fields": 11})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Frame", entry["component"])
	assert.Equal(t, "constructed", entry["message"])
	assert.EqualValues(t, 11, entry["fields"])
}

func TestZerologAdapter_ErrorIncludesCause(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.InfoLevel)

	log.Error("Parameters", errors.New("bad power"), nil)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "bad power", entry["error"])
}

func TestZerologAdapter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.WarnLevel)

	log.Debug("Frame", "hidden", nil)
	log.Info("Frame", "hidden", nil)
	assert.Empty(t, buf.String())

	log.Warning("Frame", "shown", nil)
	assert.Contains(t, buf.String(), "shown")
}

func TestNewNop_DiscardsOutput(t *testing.T) {
	log := NewNop()
	assert.NotPanics(t, func() {
		log.Info("Frame", "message", map[string]interface{}{"k": "v"})
		log.Error("Frame", errors.New("boom"), nil)
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}
