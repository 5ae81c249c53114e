package log

// nullLogger discards everything. Used by tests that construct many cores
// and don't want their output interleaved.
type nullLogger struct{}

func (n nullLogger) Debugf(format string, args ...interface{}) {}
func (n nullLogger) Infof(format string, args ...interface{})  {}
func (n nullLogger) Warnf(format string, args ...interface{})  {}
func (n nullLogger) Errorf(format string, args ...interface{}) {}

// NewNullLogger returns a Logger that discards everything.
func NewNullLogger() Logger {
	return nullLogger{}
}
