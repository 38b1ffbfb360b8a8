package ircdconf

func validateDrpass(e *ParseEntry, sink *ErrorSink) {
	if e.Find("restart") == nil && e.Find("die") == nil {
		sink.Error(e.filename(), e.NameLine, "drpass requires restart and/or die")
	}
	if c := e.Find("restart"); c != nil {
		requireScalar(c, "drpass::restart", sink)
	}
	if c := e.Find("die"); c != nil {
		requireScalar(c, "drpass::die", sink)
	}
	warnUnknownChildren(e, map[string]bool{"restart": true, "die": true}, sink)
}

func applyDrpass(e *ParseEntry, store *ConfigurationStore, sink *ErrorSink, conv AuthConverter) {
	rec := &DrpassRecord{}
	store.withReadLock(func() {
		if store.Drpass != nil {
			*rec = *store.Drpass
		}
	})
	if c := e.Find("restart"); c != nil && c.HasValue {
		auth, err := conv.Convert(c)
		if err == nil {
			if rec.Restart != nil {
				rec.Restart.Release()
			}
			rec.Restart, rec.HasRestart = auth, true
		}
	}
	if c := e.Find("die"); c != nil && c.HasValue {
		auth, err := conv.Convert(c)
		if err == nil {
			if rec.Die != nil {
				rec.Die.Release()
			}
			rec.Die, rec.HasDie = auth, true
		}
	}
	store.withWriteLock(func() {
		store.Drpass = rec
	})
}
