package ircdconf

func validateLog(e *ParseEntry, sink *ErrorSink) {
	requireScalar(e, "log", sink)
	if fl := e.Find("flags"); fl != nil {
		for _, c := range fl.Children {
			if _, known := logFlagNames[c.Name]; !known {
				sink.Error(c.filename(), c.NameLine, "log %q: unknown flag %q", e.Value, c.Name)
			}
		}
	}
	warnUnknownChildren(e, map[string]bool{"flags": true}, sink)
}

func applyLog(e *ParseEntry, store *ConfigurationStore, sink *ErrorSink, conv AuthConverter) {
	rec := &LogRecord{Path: e.Value}
	if fl := e.Find("flags"); fl != nil {
		rec.Flags = parseLogFlags(fl.Children)
	}
	store.withWriteLock(func() {
		store.Logs = append(store.Logs, rec)
	})
}
