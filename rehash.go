package ircdconf

import (
	"os"
	"os/signal"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// CloseListenersFunc is invoked, after a successful rehash, with every
// temporary listener whose client count has reached zero and that is
// therefore being unlinked. The embedding daemon is responsible for
// actually closing the underlying socket; this package only stops
// tracking the record.
type CloseListenersFunc func(closed []*ListenerRecord)

// Rehasher drives the load -> validate -> commit pipeline for both the
// initial boot and every subsequent live reload, against a fixed root
// path and a single long-lived ConfigurationStore.
type Rehasher struct {
	RootPath     string
	Store        *ConfigurationStore
	AuthConv     AuthConverter
	OnClose      CloseListenersFunc

	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	stopWatch chan struct{}
}

// NewRehasher returns a Rehasher for rootPath, writing into store.
func NewRehasher(rootPath string, store *ConfigurationStore) *Rehasher {
	return &Rehasher{RootPath: rootPath, Store: store}
}

// Run performs one load/validate/commit cycle. On validation failure the
// store is left completely untouched and ok is false; the caller decides
// whether a failed initial boot is fatal (it always is) or a failed
// rehash is merely logged (it always is).
func (r *Rehasher) Run() (sink *ErrorSink, ok bool) {
	sink = NewErrorSink()
	loader := NewLoader(sink)
	files, err := loader.Load(r.RootPath)
	if err != nil {
		return sink, false
	}
	if !Validate(files, sink) {
		sink.Progress("%d errors encountered, configuration not applied", sink.Count())
		return sink, false
	}
	Commit(files, r.Store, sink, r.AuthConv)
	r.cleanupTemporaryListeners()
	sink.Progress("rehash complete: %d warnings", sink.Warnings())
	return sink, true
}

// cleanupTemporaryListeners unlinks temporary listeners with zero
// attached clients after a successful commit, and invokes OnClose with
// the set removed. Listeners with live clients persist until their
// clients drain; records merely unreferenced by the new configuration
// are never freed here, since existing connections may still hold them.
func (r *Rehasher) cleanupTemporaryListeners() {
	var closed []*ListenerRecord
	r.Store.withWriteLock(func() {
		kept := r.Store.Listeners[:0]
		for _, l := range r.Store.Listeners {
			if l.Temporary && l.Clients == 0 {
				closed = append(closed, l)
				continue
			}
			kept = append(kept, l)
		}
		r.Store.Listeners = kept
	})
	if len(closed) > 0 && r.OnClose != nil {
		r.OnClose(closed)
	}
}

// ListenForSignal blocks the calling goroutine, running Run() every time
// sig is received, until stop is closed. It does not run Run() on entry;
// the caller performs the initial load itself.
func (r *Rehasher) ListenForSignal(sig os.Signal, stop <-chan struct{}) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, sig)
	defer signal.Stop(sigCh)
	for {
		select {
		case <-sigCh:
			r.Run()
		case <-stop:
			return
		}
	}
}

// WatchFile starts an fsnotify watch on the root config file and triggers
// Run on every write, create or rename event. Only the file itself is
// watched, not its containing directory or any included file. Call
// StopWatch to release the watcher.
func (r *Rehasher) WatchFile() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.watcher != nil {
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(r.RootPath); err != nil {
		w.Close()
		return err
	}
	r.watcher = w
	r.stopWatch = make(chan struct{})
	go r.watchLoop(w, r.stopWatch)
	return nil
}

func (r *Rehasher) watchLoop(w *fsnotify.Watcher, stop chan struct{}) {
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				r.Run()
			}
		case <-w.Errors:
		case <-stop:
			return
		}
	}
}

// StopWatch releases the watcher started by WatchFile, if any.
func (r *Rehasher) StopWatch() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.watcher == nil {
		return
	}
	close(r.stopWatch)
	r.watcher.Close()
	r.watcher = nil
}
