package ircdconf

func validateHelp(e *ParseEntry, sink *ErrorSink) {
	requireScalar(e, "help", sink)
	for _, c := range e.Children {
		if c.Name == "" {
			sink.Error(c.filename(), c.NameLine, "help %q: blank line", e.Value)
		}
	}
}

func applyHelp(e *ParseEntry, store *ConfigurationStore, sink *ErrorSink, conv AuthConverter) {
	rec := &HelpRecord{Name: e.Value}
	for _, c := range e.Children {
		if c.Name != "" {
			rec.Body = append(rec.Body, c.Name)
		}
	}
	store.withWriteLock(func() {
		for i, h := range store.Helps {
			if h.Name == rec.Name {
				store.Helps[i] = rec
				return
			}
		}
		store.Helps = append(store.Helps, rec)
	})
}
