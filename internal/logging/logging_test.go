package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New("json", &buf)

	Log(context.Background(), logger, Fail, "t1_a delete failed", "id", "t1_a")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "FAIL", line["tag"])
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, "t1_a", line["id"])
	assert.Contains(t, line, "time")
}

func TestLogLevels(t *testing.T) {
	tests := map[string]string{
		Start: "INFO",
		OK:    "INFO",
		Fail:  "WARN",
		Error: "ERROR",
		Abort: "ERROR",
	}
	for tag, want := range tests {
		t.Run(tag, func(t *testing.T) {
			var buf bytes.Buffer
			Log(context.Background(), New("json", &buf), tag, "msg")

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, want, line["level"])
		})
	}
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	Log(context.Background(), New("TEXT", &buf), Done, "clean")

	out := buf.String()
	assert.True(t, strings.Contains(out, "tag=DONE"), out)
	assert.True(t, strings.Contains(out, "msg=clean"), out)
}
