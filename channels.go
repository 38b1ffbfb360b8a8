package ircdconf

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrorSink accumulates diagnostics produced while validating or loading a
// configuration. It exposes a three-channel diagnostic surface - error,
// status and progress - each routed through Log and, once the daemon is
// booted, expected to also reach the oper notice channel and the log file
// (the embedding daemon's responsibility - this package only guarantees
// the Log side).
type ErrorSink struct {
	errs     []*ValidationError
	warnings int
}

// NewErrorSink returns an empty ErrorSink.
func NewErrorSink() *ErrorSink {
	return &ErrorSink{}
}

// Error records a fatal validation error at file:line. Validate returns
// success only if no ErrorSink passed to it accumulated any.
func (s *ErrorSink) Error(file string, line int, format string, args ...interface{}) {
	e := &ValidationError{File: file, Line: line, Message: fmt.Sprintf(format, args...)}
	s.errs = append(s.errs, e)
	Log.WithFields(logrus.Fields{"file": file, "line": line}).Error(e.Message)
}

// Status records a non-fatal status message: an ignored duplicate, a
// tolerated unknown child, a class falling back to "default", etc.
func (s *ErrorSink) Status(file string, line int, format string, args ...interface{}) {
	s.warnings++
	Log.WithFields(logrus.Fields{"file": file, "line": line}).Warn(fmt.Sprintf(format, args...))
}

// Progress records an informational message: a file being loaded, a
// rehash starting, etc.
func (s *ErrorSink) Progress(format string, args ...interface{}) {
	Log.Info(fmt.Sprintf(format, args...))
}

// Errors returns the accumulated validation errors, in the order reported.
func (s *ErrorSink) Errors() []*ValidationError {
	return s.errs
}

// Count returns the number of fatal errors accumulated.
func (s *ErrorSink) Count() int {
	return len(s.errs)
}

// Warnings returns the number of status messages recorded.
func (s *ErrorSink) Warnings() int {
	return s.warnings
}

// OK reports whether zero errors have been accumulated - the sole
// condition under which Commit may run.
func (s *ErrorSink) OK() bool {
	return len(s.errs) == 0
}
