// Package logger builds the logrus loggers used for optional tracing by the
// minima and linebreak packages. Algorithms stay silent unless a caller hands
// them a logger.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// TimestampFormat is the layout used by the prefixed text formatter.
const TimestampFormat = "2006-01-02 15:04:05"

// New returns a logger writing prefixed text lines to stderr at the given level.
func New(level logrus.Level) *logrus.Logger {
	return NewWithOutput(os.Stderr, level)
}

// NewWithOutput is New with an explicit destination.
func NewWithOutput(out io.Writer, level logrus.Level) *logrus.Logger {
	return &logrus.Logger{
		Out:   out,
		Level: level,
		Hooks: make(logrus.LevelHooks),
		Formatter: &prefixed.TextFormatter{
			TimestampFormat: TimestampFormat,
			FullTimestamp:   true,
			ForceFormatting: true,
			DisableColors:   true,
		},
	}
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	return NewWithOutput(io.Discard, logrus.PanicLevel)
}
