package ircdconf

func validateBan(e *ParseEntry, sink *ErrorSink) {
	value, ok := requireScalar(e, "ban", sink)
	if !ok {
		return
	}
	switch value {
	case "user", "ip", "server", "realname":
	default:
		sink.Error(e.filename(), e.NameLine, "ban: unknown kind %q", value)
	}
	requireChildValue(e, "mask", sink)
	requireChildValue(e, "reason", sink)
	warnUnknownChildren(e, map[string]bool{"mask": true, "reason": true}, sink)
}

func applyBan(e *ParseEntry, store *ConfigurationStore, sink *ErrorSink, conv AuthConverter) {
	rec := &BanRecord{Kind: ExceptBan}
	if c := e.Find("mask"); c != nil {
		rec.Mask = c.Value
	}
	if c := e.Find("reason"); c != nil {
		rec.Reason = c.Value
	}
	store.withWriteLock(func() {
		store.Bans = append(store.Bans, rec)
	})
}
