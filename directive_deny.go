package ircdconf

func validateDeny(e *ParseEntry, sink *ErrorSink) {
	value, ok := requireScalar(e, "deny", sink)
	if !ok {
		return
	}
	switch value {
	case "channel":
		requireChildValue(e, "channel", sink)
		warnUnknownChildren(e, map[string]bool{"channel": true}, sink)
	case "dcc":
		requireChildValue(e, "filename", sink)
		warnUnknownChildren(e, map[string]bool{"filename": true, "reason": true}, sink)
	case "version":
		requireChildValue(e, "mask", sink)
		warnUnknownChildren(e, map[string]bool{"mask": true, "version": true, "flags": true}, sink)
	case "link":
		requireChildValue(e, "mask", sink)
		warnUnknownChildren(e, map[string]bool{"mask": true, "rule": true}, sink)
	default:
		sink.Error(e.filename(), e.NameLine, "deny: unknown kind %q", value)
	}
}

func applyDeny(e *ParseEntry, store *ConfigurationStore, sink *ErrorSink, conv AuthConverter) {
	switch e.Value {
	case "channel":
		if c := e.Find("channel"); c != nil && c.HasValue {
			rec := &DenyChannelRecord{ChannelMask: c.Value}
			store.withWriteLock(func() {
				store.DenyChannels = append(store.DenyChannels, rec)
			})
		}
	case "dcc":
		if c := e.Find("filename"); c != nil && c.HasValue {
			rec := &DenyDccRecord{Mask: c.Value}
			store.withWriteLock(func() {
				store.DenyDccs = append(store.DenyDccs, rec)
			})
		}
	case "version":
		rec := &DenyVersionRecord{}
		if c := e.Find("mask"); c != nil {
			rec.Mask = c.Value
		}
		if c := e.Find("version"); c != nil && c.HasValue {
			rec.VersionMask, rec.HasVersion = c.Value, true
		}
		if c := e.Find("flags"); c != nil && c.HasValue {
			rec.FlagsMask, rec.HasFlagsMask = c.Value, true
		}
		store.withWriteLock(func() {
			store.DenyVersions = append(store.DenyVersions, rec)
		})
	case "link":
		rec := &DenyLinkRecord{}
		if c := e.Find("mask"); c != nil {
			rec.Mask = c.Value
		}
		if c := e.Find("rule"); c != nil && c.HasValue {
			rec.Rule, rec.HasRule = c.Value, true
		}
		store.withWriteLock(func() {
			store.DenyLinks = append(store.DenyLinks, rec)
		})
	}
}
