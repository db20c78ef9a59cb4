package logger

import (
	"fmt"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const logFileName = "rdctl.log"

type Options struct {
	Prefix string
	Level  string
	Output io.Writer
	// Dir enables a rotating log file in that directory when set.
	Dir string
}

func formatLevel(i interface{}) string {
	return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
}

func NewLogger(opts Options) (zerolog.Logger, error) {
	output := opts.Output
	if output == nil {
		output = os.Stderr
	}
	formatMessage := func(i interface{}) string {
		return fmt.Sprintf("[%s] %v", opts.Prefix, i)
	}

	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:           output,
		TimeFormat:    "2006-01-02 15:04:05",
		NoColor:       false,
		FormatLevel:   formatLevel,
		FormatMessage: formatMessage,
	}}

	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return zerolog.Nop(), fmt.Errorf("creating log directory: %w", err)
		}
		rotatingLogFile := &lumberjack.Logger{
			Filename: filepath.Join(opts.Dir, logFileName),
			MaxSize:  10,
			MaxAge:   15,
			Compress: true,
		}
		writers = append(writers, zerolog.ConsoleWriter{
			Out:           rotatingLogFile,
			TimeFormat:    "2006-01-02 15:04:05",
			NoColor:       true, // No colors in file output
			FormatLevel:   formatLevel,
			FormatMessage: formatMessage,
		})
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Logger().
		Level(ParseLevel(opts.Level))
	return logger, nil
}

// ParseLevel maps a config level to zerolog. Unknown levels mean info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// ValidLevel reports whether level is one ParseLevel knows.
func ValidLevel(level string) bool {
	switch strings.ToLower(level) {
	case "", "trace", "debug", "info", "warn", "error", "disabled":
		return true
	}
	return false
}
