package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type ZerologAdapter struct {
	logger zerolog.Logger
}

func NewZerolog(writer io.Writer, level zerolog.Level) *ZerologAdapter {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &ZerologAdapter{logger: logger}
}

func NewConsoleLogger(level zerolog.Level) *ZerologAdapter {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
	}
	return NewZerolog(consoleWriter, level)
}

// NewNop returns a logger that discards everything.
func NewNop() *ZerologAdapter {
	return &ZerologAdapter{logger: zerolog.Nop()}
}

// ParseLevel maps a config string onto a zerolog level, defaulting to info.
func ParseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	z.write(z.logger.Info(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	z.write(z.logger.Error(), component, fields).Err(err).Msg("operation failed")
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	z.write(z.logger.Warn(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	z.write(z.logger.Debug(), component, fields).Msg(message)
}

// write returns a nil event when the level is disabled; zerolog treats
// calls on a nil event as no-ops.
func (z *ZerologAdapter) write(event *zerolog.Event, component string, fields map[string]interface{}) *zerolog.Event {
	if !event.Enabled() {
		return nil
	}

	event = event.Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	return event
}
