package ircdconf

func validateAlias(e *ParseEntry, sink *ErrorSink) {
	requireScalar(e, "alias", sink)
	requireChildValue(e, "target", sink)
	warnUnknownChildren(e, map[string]bool{"target": true}, sink)
}

func applyAlias(e *ParseEntry, store *ConfigurationStore, sink *ErrorSink, conv AuthConverter) {
	rec := &AliasRecord{Alias: e.Value}
	if c := e.Find("target"); c != nil {
		rec.Target = c.Value
	}
	store.withWriteLock(func() {
		for i, a := range store.Aliases {
			if a.Alias == rec.Alias {
				store.Aliases[i] = rec
				return
			}
		}
		store.Aliases = append(store.Aliases, rec)
	})
}
