package ircdconf

func validateOper(e *ParseEntry, sink *ErrorSink) {
	if !rejectBlankName(e, sink) {
		return
	}
	if _, ok := requireScalar(e, "oper", sink); !ok {
		return
	}
	name := e.Value

	requireChild(e, "password", sink)

	from, ok := requireChild(e, "from", sink)
	if ok {
		if len(from.FindAll("userhost")) == 0 {
			sink.Error(e.filename(), e.NameLine, "oper %q: from{} requires at least one userhost", name)
		}
	}

	if _, ok := requireChildValue(e, "class", sink); !ok {
		// requireChildValue already reports if class is entirely absent;
		// a present-but-blank value is caught by requireScalar there too.
	}

	if fl := e.Find("flags"); fl != nil {
		if fl.HasValue {
			// legacy flat single-character form - the characters are not
			// checked here; the committer silently skips any that are not
			// in the compact table.
		} else {
			for _, c := range fl.Children {
				if _, known := operFlagNames[c.Name]; !known {
					sink.Error(c.filename(), c.NameLine, "oper %q: unknown flag %q", name, c.Name)
				}
			}
		}
	}

	warnUnknownChildren(e, map[string]bool{
		"password": true, "from": true, "class": true, "flags": true,
		"swhois": true, "snomask": true,
	}, sink)
	rejectDuplicateScalarChildren(e, "class", sink)
	rejectDuplicateScalarChildren(e, "swhois", sink)
	rejectDuplicateScalarChildren(e, "snomask", sink)
}

func applyOper(e *ParseEntry, store *ConfigurationStore, sink *ErrorSink, conv AuthConverter) {
	name := e.Value
	var rec *OperRecord
	store.withWriteLock(func() {
		for _, o := range store.Opers {
			if o.Name == name {
				rec = o
				break
			}
		}
		if rec == nil {
			rec = &OperRecord{Name: name}
			store.Opers = append(store.Opers, rec)
		}
	})

	if newAuth := buildAuth(e, conv); newAuth != nil {
		if rec.Auth != nil {
			rec.Auth.Release()
		}
		rec.Auth = newAuth
	}

	rec.UserHosts = collectUserHosts(e)

	if c := e.Find("class"); c != nil && c.HasValue {
		rec.Class = resolveClass(e, c.Value, store, sink)
	}

	rec.Flags = 0
	if fl := e.Find("flags"); fl != nil {
		if fl.HasValue {
			rec.Flags = parseOperFlagsCompact(fl.Value)
		} else {
			rec.Flags = parseOperFlagsNamed(fl.Children)
		}
	}

	if c := e.Find("swhois"); c != nil && c.HasValue {
		rec.Swhois, rec.HasSwhois = c.Value, true
	} else {
		rec.HasSwhois = false
	}
	if c := e.Find("snomask"); c != nil && c.HasValue {
		rec.Snomask, rec.HasSnomask = c.Value, true
	} else {
		rec.HasSnomask = false
	}
}
