package logging

import (
	"log/slog"
	"strings"
)

// DefaultLevel is the log level used when none is configured.
const DefaultLevel = slog.LevelWarn

// levelNames maps accepted configuration spellings to levels.
var levelNames = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// LevelNames lists the canonical level names in increasing severity.
func LevelNames() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ParseLevel converts a configured level name to an slog.Level.
// Matching ignores case and surrounding whitespace; "warning" is accepted for warn.
// Unrecognized names return (DefaultLevel, false).
func ParseLevel(s string) (slog.Level, bool) {
	level, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return DefaultLevel, false
	}
	return level, true
}

// ParseLevelOrDefault is ParseLevel without the ok result.
func ParseLevelOrDefault(s string) slog.Level {
	level, _ := ParseLevel(s)
	return level
}
