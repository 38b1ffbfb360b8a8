package ircdconf

import "strings"

func validateMe(e *ParseEntry, sink *ErrorSink) {
	name, ok := requireChildValue(e, "name", sink)
	if ok && !strings.Contains(name, ".") {
		sink.Error(e.filename(), e.NameLine, "me::name %q must contain '.'", name)
	}
	if info, ok := requireChildValue(e, "info", sink); ok {
		if len(info) > InfoLength-1 {
			sink.Error(e.filename(), e.NameLine, "me::info exceeds %d bytes", InfoLength-1)
		}
	}
	if numStr, ok := requireChildValue(e, "numeric", sink); ok {
		n, pok := parseIntValue(e, "me::numeric", numStr, sink)
		// Range is [0,254] inclusive. A naive AND of the two bound checks
		// is never true for any value; this uses OR, which is what the
		// check is clearly meant to enforce.
		if pok && (n < 0 || n > 254) {
			sink.Error(e.filename(), e.NameLine, "me::numeric %d out of range [0,254]", n)
		}
	}
	warnUnknownChildren(e, map[string]bool{"name": true, "info": true, "numeric": true}, sink)
	rejectDuplicateScalarChildren(e, "name", sink)
	rejectDuplicateScalarChildren(e, "info", sink)
	rejectDuplicateScalarChildren(e, "numeric", sink)
}

func applyMe(e *ParseEntry, store *ConfigurationStore, sink *ErrorSink, conv AuthConverter) {
	rec := &MeRecord{}
	if c := e.Find("name"); c != nil {
		rec.Name = c.Value
	}
	// info populates the info field, not the name field.
	if c := e.Find("info"); c != nil {
		rec.Info = c.Value
	}
	if c := e.Find("numeric"); c != nil {
		if n, ok := atoiStrict(c.Value); ok {
			rec.Numeric = n
		}
	}
	store.withWriteLock(func() {
		store.Me = rec
	})
}
