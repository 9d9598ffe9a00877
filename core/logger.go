package core

// Logger is the contract all application loggers must satisfy.
// Implementations may report to an external error tracker in addition to
// the standard output.
type Logger interface {
	Enable(enabled bool)

	// expected args: error, map[string]interface{}, Identity
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
