package ircdconf

import "expvar"

// Commit walks every top-level entry of every parsed file a second time
// and constructs typed records in store. Callers must only invoke Commit
// after Validate(files, sink) has returned true; Commit does not
// re-validate.
func Commit(files *ParseFile, store *ConfigurationStore, sink *ErrorSink, conv AuthConverter) {
	if conv == nil {
		conv = DefaultAuthConverter
	}
	id := "unknown"
	if files != nil {
		id = files.Name
	}
	for f := files; f != nil; f = f.Next {
		for _, e := range f.Entries {
			d := lookupDirective(e.Name)
			if d == nil || d.apply == nil {
				continue
			}
			d.apply(e, store, sink, conv)
		}
	}
	loadVars.errors(id).Set(int64(sink.Count()))
	loadVars.warns(id).Set(int64(sink.Warnings()))
	loadVars.commits(id).Add(1)

	counts := storeVars(id)
	counts.Init()
	for name, n := range store.snapshotCounts() {
		v := new(expvar.Int)
		v.Set(int64(n))
		counts.Set(name, v)
	}
}

// resolveClass looks up name in store, falling back to the default class
// with a status message if it is missing - commit never fails for a
// dangling class reference. Validation checks only that a class name is
// given, not that the named class exists.
func resolveClass(e *ParseEntry, name string, store *ConfigurationStore, sink *ErrorSink) *ClassRecord {
	if c := store.FindClass(name); c != nil {
		return c
	}
	sink.Status(e.filename(), e.NameLine, "%s: class %q not found, using %q", e.Name, name, DefaultClassName)
	return store.FindClass(DefaultClassName)
}

// buildAuth constructs an AuthDescriptor from e's "password" child using
// conv, returning nil if no such child is present.
func buildAuth(e *ParseEntry, conv AuthConverter) AuthDescriptor {
	pw := e.Find("password")
	if pw == nil {
		return nil
	}
	auth, err := conv.Convert(pw)
	if err != nil {
		return nil
	}
	return auth
}

// collectUserHosts returns the values of every "userhost" child of a
// "from" block, or of e directly if e itself has no "from" child (some
// directives nest it, some don't).
func collectUserHosts(e *ParseEntry) []string {
	from := e.Find("from")
	if from == nil {
		from = e
	}
	var out []string
	for _, c := range from.FindAll("userhost") {
		if c.HasValue {
			out = append(out, c.Value)
		}
	}
	return out
}
