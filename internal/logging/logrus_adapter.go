package logging

import (
	"github.com/sirupsen/logrus"
)

// LogrusAdapter backs the Logger interface with logrus.
type LogrusAdapter struct {
	entry *logrus.Entry
}

// NewLogrusAdapter builds a logrus-backed logger with the given level and
// format ("text" or "json"). An unknown level falls back to info.
func NewLogrusAdapter(level, format string) Logger {
	l := logrus.New()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	if format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &LogrusAdapter{entry: logrus.NewEntry(l)}
}

// FromLogrus wraps an existing logrus logger.
func FromLogrus(l *logrus.Logger) Logger {
	if l == nil {
		l = logrus.New()
	}
	return &LogrusAdapter{entry: logrus.NewEntry(l)}
}

func (a *LogrusAdapter) Debug(msg string, fields ...Field) {
	a.entry.WithFields(toLogrusFields(fields)).Debug(msg)
}

func (a *LogrusAdapter) Info(msg string, fields ...Field) {
	a.entry.WithFields(toLogrusFields(fields)).Info(msg)
}

func (a *LogrusAdapter) Warn(msg string, fields ...Field) {
	a.entry.WithFields(toLogrusFields(fields)).Warn(msg)
}

func (a *LogrusAdapter) Error(msg string, fields ...Field) {
	a.entry.WithFields(toLogrusFields(fields)).Error(msg)
}

func (a *LogrusAdapter) WithError(err error) Logger {
	return &LogrusAdapter{entry: a.entry.WithError(err)}
}

func (a *LogrusAdapter) WithField(key string, value interface{}) Logger {
	return &LogrusAdapter{entry: a.entry.WithField(key, value)}
}

func toLogrusFields(fields []Field) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value
	}
	return out
}
