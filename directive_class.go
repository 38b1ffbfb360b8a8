package ircdconf

func validateClass(e *ParseEntry, sink *ErrorSink) {
	if !rejectBlankName(e, sink) {
		return
	}
	if _, ok := requireScalar(e, "class", sink); !ok {
		return
	}
	name := e.Value

	if s, ok := requireChildValue(e, "pingfreq", sink); ok {
		if n, pok := parseIntValue(e, "class::pingfreq", s, sink); pok && n < 1 {
			sink.Error(e.filename(), e.NameLine, "class %q: pingfreq must be >= 1", name)
		}
	}
	if s, ok := requireChildValue(e, "maxclients", sink); ok {
		if n, pok := parseIntValue(e, "class::maxclients", s, sink); pok && n <= 0 {
			sink.Error(e.filename(), e.NameLine, "class %q: maxclients must be > 0", name)
		}
	}
	if s, ok := requireChildValue(e, "sendq", sink); ok {
		if n, pok := parseIntValue(e, "class::sendq", s, sink); pok && n <= 0 {
			sink.Error(e.filename(), e.NameLine, "class %q: sendq must be > 0", name)
		}
	}
	if c := e.Find("connfreq"); c != nil {
		if s, ok := requireScalar(c, "class::connfreq", sink); ok {
			if n, pok := parseIntValue(e, "class::connfreq", s, sink); pok && n < 10 {
				sink.Error(e.filename(), e.NameLine, "class %q: connfreq must be >= 10", name)
			}
		}
	}
	warnUnknownChildren(e, map[string]bool{
		"pingfreq": true, "maxclients": true, "sendq": true, "connfreq": true,
	}, sink)
	rejectDuplicateScalarChildren(e, "pingfreq", sink)
	rejectDuplicateScalarChildren(e, "maxclients", sink)
	rejectDuplicateScalarChildren(e, "sendq", sink)
	rejectDuplicateScalarChildren(e, "connfreq", sink)
}

func applyClass(e *ParseEntry, store *ConfigurationStore, sink *ErrorSink, conv AuthConverter) {
	name := e.Value
	var rec *ClassRecord
	store.withWriteLock(func() {
		for _, c := range store.Classes {
			if c.Name == name {
				rec = c
				break
			}
		}
		if rec == nil {
			rec = &ClassRecord{Name: name}
			store.Classes = append(store.Classes, rec)
		}
	})

	if c := e.Find("pingfreq"); c != nil {
		if n, ok := atoiStrict(c.Value); ok {
			rec.PingFreq = n
		}
	}
	if c := e.Find("maxclients"); c != nil {
		if n, ok := atoiStrict(c.Value); ok {
			rec.MaxClients = n
		}
	}
	if c := e.Find("sendq"); c != nil {
		if n, ok := atoiStrict(c.Value); ok {
			rec.SendQ = n
		}
	}
	if c := e.Find("connfreq"); c != nil {
		if n, ok := atoiStrict(c.Value); ok {
			rec.ConnFreq = n
			rec.HasConnFreq = true
		}
	} else {
		rec.HasConnFreq = false
	}
}
