//go:build windows

package ircdconf

import "os"

// RehashOnSIGHUP runs ListenForSignal with os.Interrupt on the calling
// goroutine, since Windows has no SIGHUP; on this platform an interrupt
// (Ctrl+C or Ctrl+Break) triggers a rehash.
func (r *Rehasher) RehashOnSIGHUP(stop <-chan struct{}) {
	r.ListenForSignal(os.Interrupt, stop)
}
