package notifier

// Logger is the logging contract the client needs.
type Logger interface {
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
}
