package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	charmlog "charm.land/log/v2"
)

// Level is a log severity name.
type Level string

// Log levels.
const (
	LevelError Level = "error"
	LevelWarn  Level = "warn"
	LevelInfo  Level = "info"
	LevelDebug Level = "debug"
)

// Format represents the log output format.
type Format string

const (
	// FormatJSON outputs logs as JSON objects.
	FormatJSON Format = "json"
	// FormatLogfmt outputs logs in logfmt format.
	FormatLogfmt Format = "logfmt"
	// FormatText outputs human-readable logs, styled when writing to a
	// terminal.
	FormatText Format = "text"
)

var (
	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownLogLevel indicates an unrecognized log level string.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownLogFormat indicates an unrecognized log format string.
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// GetAllLevelStrings returns the accepted level names.
func GetAllLevelStrings() []string {
	return []string{string(LevelError), string(LevelWarn), string(LevelInfo), string(LevelDebug)}
}

// GetAllFormatStrings returns the accepted format names.
func GetAllFormatStrings() []string {
	return []string{string(FormatJSON), string(FormatLogfmt), string(FormatText)}
}

// NewHandlerFromStrings creates a [slog.Handler] by strings.
func NewHandlerFromStrings(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	lvl, err := ParseLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	format, err := ParseFormat(logFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return NewHandler(w, lvl, format), nil
}

// NewHandler creates a [slog.Handler] with the specified level and format.
// Unknown formats fall back to [FormatText].
func NewHandler(w io.Writer, lvl Level, format Format) slog.Handler {
	switch format {
	case FormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource: true,
			Level:     lvl.slog(),
		})

	case FormatLogfmt:
		return slog.NewTextHandler(w, &slog.HandlerOptions{
			AddSource: true,
			Level:     lvl.slog(),
		})
	}

	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           lvl.charm(),
		ReportTimestamp: true,
	})
}

// ParseLevel parses a log level string. "warning" is accepted as an alias
// of [LevelWarn].
func ParseLevel(level string) (Level, error) {
	lvl := Level(strings.ToLower(level))
	if lvl == "warning" {
		return LevelWarn, nil
	}

	if slices.Contains(GetAllLevelStrings(), string(lvl)) {
		return lvl, nil
	}

	return "", fmt.Errorf("%w %q", ErrUnknownLogLevel, level)
}

// ParseFormat parses a log format string and returns the corresponding [Format].
func ParseFormat(format string) (Format, error) {
	logFmt := Format(strings.ToLower(format))
	if slices.Contains(GetAllFormatStrings(), string(logFmt)) {
		return logFmt, nil
	}

	return "", fmt.Errorf("%w %q", ErrUnknownLogFormat, format)
}

func (l Level) slog() slog.Level {
	switch l {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelDebug:
		return slog.LevelDebug
	}

	return slog.LevelInfo
}

func (l Level) charm() charmlog.Level {
	switch l {
	case LevelError:
		return charmlog.ErrorLevel
	case LevelWarn:
		return charmlog.WarnLevel
	case LevelDebug:
		return charmlog.DebugLevel
	}

	return charmlog.InfoLevel
}
