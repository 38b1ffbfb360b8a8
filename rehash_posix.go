//go:build !windows

package ircdconf

import "syscall"

// RehashOnSIGHUP runs ListenForSignal with the platform's rehash signal
// (SIGHUP on POSIX) on the calling goroutine.
func (r *Rehasher) RehashOnSIGHUP(stop <-chan struct{}) {
	r.ListenForSignal(syscall.SIGHUP, stop)
}
