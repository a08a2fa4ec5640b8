// Package logging provides a small structured-logging abstraction so the
// parsing packages do not depend on a concrete logging framework.
package logging

// Field is a key-value pair attached to a log message.
type Field struct {
	Key   string
	Value interface{}
}

// Logger is the structured logger used throughout the module.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a logger with an error field attached.
	WithError(err error) Logger

	// WithField returns a logger with a single field attached.
	WithField(key string, value interface{}) Logger
}

// Nop returns a logger that discards everything. Useful as a default in
// constructors and in tests that do not inspect log output.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...Field)                {}
func (nopLogger) Info(string, ...Field)                 {}
func (nopLogger) Warn(string, ...Field)                 {}
func (nopLogger) Error(string, ...Field)                {}
func (nopLogger) WithError(error) Logger                { return nopLogger{} }
func (nopLogger) WithField(string, interface{}) Logger  { return nopLogger{} }
