package ircdconf

import (
	"os"
)

// Loader loads a root configuration file and every file pulled in via
// "include" directives, producing an ordered ParseFile list. A Loader is
// single-use: construct one per load/rehash cycle.
type Loader struct {
	sink  *ErrorSink
	head  *ParseFile
	tail  **ParseFile
	seen  map[string]bool // cycle guard; an include cycle would spin
	// forever without it, and it's a no-op for any acyclic config.
}

// NewLoader returns a Loader that reports diagnostics to sink.
func NewLoader(sink *ErrorSink) *Loader {
	l := &Loader{sink: sink, seen: map[string]bool{}}
	l.tail = &l.head
	return l
}

// Load reads, parses and appends path (and anything it includes) to the
// Loader's file list. It returns the Loader's full file list head so
// repeated calls (multiple root files, as routedns's cmd accepts) can be
// chained.
func (l *Loader) Load(path string) (*ParseFile, error) {
	if err := l.load(path); err != nil {
		return l.head, err
	}
	return l.head, nil
}

func (l *Loader) load(path string) error {
	if l.seen[path] {
		return nil
	}
	l.seen[path] = true

	if l.sink != nil {
		l.sink.Progress("loading config file %s", path)
	}
	loadVars.files(path).Add(1)

	data, err := os.ReadFile(path)
	if err != nil {
		se := &SyntaxError{File: path, Message: err.Error()}
		if l.sink != nil {
			l.sink.Error(path, 0, "%s", err.Error())
		}
		return se
	}

	pf, err := Parse(path, data, l.sink)
	if err != nil {
		return err
	}
	loadVars.entries(path).Add(int64(len(pf.Entries)))

	*l.tail = pf
	l.tail = &pf.Next

	if l.sink != nil {
		l.sink.Progress("searching through %s for include files", path)
	}
	for _, e := range pf.Entries {
		if e.Name != "include" {
			continue
		}
		if err := l.expandInclude(e); err != nil {
			return err
		}
	}
	return nil
}

// expandInclude resolves one "include" directive's value against the
// filesystem and loads every match, in the platform-appropriate order.
// An include matching zero files is an error.
func (l *Loader) expandInclude(e *ParseEntry) error {
	if !e.HasValue || e.Value == "" {
		se := &SyntaxError{File: e.filename(), Line: e.NameLine, Message: "include missing value"}
		if l.sink != nil {
			l.sink.Error(e.filename(), e.NameLine, "include missing value")
		}
		return se
	}
	matches, err := expandIncludePattern(e.Value)
	if err != nil {
		if l.sink != nil {
			l.sink.Error(e.filename(), e.NameLine, "include %q: %s", e.Value, err.Error())
		}
		return err
	}
	if len(matches) == 0 {
		msg := "include pattern matched no files: " + e.Value
		if l.sink != nil {
			l.sink.Error(e.filename(), e.NameLine, "%s", msg)
		}
		return &SyntaxError{File: e.filename(), Line: e.NameLine, Message: msg}
	}
	for _, m := range matches {
		if err := l.load(m); err != nil {
			return err
		}
	}
	return nil
}
