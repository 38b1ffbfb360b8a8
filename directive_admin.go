package ircdconf

func validateAdmin(e *ParseEntry, sink *ErrorSink) {
	for _, c := range e.Children {
		if c.Name == "" {
			sink.Error(c.filename(), c.NameLine, "admin: blank entry")
		}
	}
}

func applyAdmin(e *ParseEntry, store *ConfigurationStore, sink *ErrorSink, conv AuthConverter) {
	rec := &AdminRecord{}
	for _, c := range e.Children {
		if c.Name != "" {
			rec.Lines = append(rec.Lines, c.Name)
		}
	}
	store.withWriteLock(func() {
		store.Admin = rec
	})
}
