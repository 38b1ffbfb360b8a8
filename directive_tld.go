package ircdconf

import (
	"os"
	"time"
)

func validateTld(e *ParseEntry, sink *ErrorSink) {
	requireChildValue(e, "mask", sink)
	if motd, ok := requireChildValue(e, "motd", sink); ok {
		checkFileOpenable(e, "tld::motd", motd, sink)
	}
	if rules, ok := requireChildValue(e, "rules", sink); ok {
		checkFileOpenable(e, "tld::rules", rules, sink)
	}
	warnUnknownChildren(e, map[string]bool{
		"mask": true, "motd": true, "rules": true, "channel": true,
	}, sink)
	rejectDuplicateScalarChildren(e, "mask", sink)
}

func checkFileOpenable(e *ParseEntry, what, path string, sink *ErrorSink) {
	f, err := os.Open(path)
	if err != nil {
		sink.Error(e.filename(), e.NameLine, "%s: cannot open %q: %v", what, path, err)
		return
	}
	f.Close()
}

func applyTld(e *ParseEntry, store *ConfigurationStore, sink *ErrorSink, conv AuthConverter) {
	rec := &TldRecord{}
	if c := e.Find("mask"); c != nil {
		rec.HostMask = c.Value
	}
	if c := e.Find("motd"); c != nil {
		rec.MotdFile = c.Value
		loadTldFile(rec.MotdFile, &rec.MotdCache, &rec.MotdMtime)
	}
	if c := e.Find("rules"); c != nil {
		rec.RulesFile = c.Value
		var unused time.Time
		loadTldFile(rec.RulesFile, &rec.RulesCache, &unused)
	}
	if c := e.Find("channel"); c != nil && c.HasValue {
		rec.Channel, rec.HasChannel = c.Value, true
	}
	store.withWriteLock(func() {
		store.Tlds = append(store.Tlds, rec)
	})
}
