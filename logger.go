package ircdconf

import "github.com/sirupsen/logrus"

// Log is the package-level logger. The embedding daemon can replace it, or
// call SetLevel/SetOutput/SetFormatter on it, before Load/Validate/Commit
// are used. Defaults to a new logrus logger (stderr, Info level).
var Log = logrus.New()

// booted tracks whether the daemon has finished its initial boot sequence.
// Before boot, diagnostics are only as visible as Log's configured output
// (typically stderr); after boot the embedding daemon is expected to also
// route them to its log file and oper-notice channel - see channels.go.
var booted bool

// SetBooted marks that the daemon has completed its initial configuration
// load. Diagnostics reported after this call are expected to be routed to
// the running daemon's log and oper-notice channels in addition to Log.
func SetBooted(v bool) {
	booted = v
}

// Booted reports whether SetBooted(true) has been called.
func Booted() bool {
	return booted
}
