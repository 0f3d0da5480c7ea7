// Package logging builds the process logger. Every line carries a "tag"
// attribute naming the step that produced it.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

const TagKey = "tag"

// Tags
const (
	Start   = "START"
	Init    = "INIT"
	Auth    = "AUTH"
	Fetch   = "FETCH"
	Round   = "ROUND"
	Summary = "SUMMARY"
	Delete  = "DELETE"
	OK      = "OK"
	Fail    = "FAIL"
	Error   = "ERROR"
	Abort   = "ABORT"
	Done    = "DONE"
)

// New returns a JSON logger, or a text logger when format is "text".
func New(format string, w io.Writer) *slog.Logger {
	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(w, nil))
	}
	return slog.New(slog.NewJSONHandler(w, nil))
}

// Log writes msg with the given tag at the level the tag implies.
func Log(ctx context.Context, logger *slog.Logger, tag, msg string, args ...any) {
	logger.Log(ctx, level(tag), msg, append([]any{TagKey, tag}, args...)...)
}

func level(tag string) slog.Level {
	switch tag {
	case Fail:
		return slog.LevelWarn
	case Error, Abort:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
