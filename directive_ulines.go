package ircdconf

func validateUlines(e *ParseEntry, sink *ErrorSink) {
	for _, c := range e.Children {
		if !c.HasValue && c.Name == "" {
			sink.Error(c.filename(), c.NameLine, "ulines: blank entry")
		}
	}
}

func applyUlines(e *ParseEntry, store *ConfigurationStore, sink *ErrorSink, conv AuthConverter) {
	for _, c := range e.Children {
		if c.Name == "" {
			continue
		}
		rec := &UlineRecord{Server: c.Name}
		store.withWriteLock(func() {
			store.Ulines = append(store.Ulines, rec)
		})
	}
}
