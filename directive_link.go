package ircdconf

func validateLink(e *ParseEntry, sink *ErrorSink) {
	if !rejectBlankName(e, sink) {
		return
	}
	if _, ok := requireScalar(e, "link", sink); !ok {
		return
	}
	requireChildValue(e, "username", sink)
	requireChildValue(e, "hostname", sink)
	if c := e.Find("port"); c != nil {
		if s, ok := requireScalar(c, "link::port", sink); ok {
			if n, pok := parseIntValue(e, "link::port", s, sink); pok && (n < 0 || n > 65535) {
				sink.Error(e.filename(), e.NameLine, "link %q: port %d out of range [0,65535]", e.Value, n)
			}
		}
	}
	requireChild(e, "recvpass", sink)
	if opts := e.Find("options"); opts != nil {
		for _, c := range opts.Children {
			if _, known := linkFlagNames[c.Name]; !known {
				sink.Error(c.filename(), c.NameLine, "link %q: unknown option %q", e.Value, c.Name)
			}
		}
	}
	warnUnknownChildren(e, map[string]bool{
		"username": true, "hostname": true, "bind-ip": true, "port": true,
		"sendpass": true, "recvpass": true, "hub": true, "leaf": true,
		"class": true, "options": true, "ciphers": true,
	}, sink)
}

func applyLink(e *ParseEntry, store *ConfigurationStore, sink *ErrorSink, conv AuthConverter) {
	name := e.Value
	var rec *LinkRecord
	store.withWriteLock(func() {
		for _, l := range store.Links {
			if l.ServerName == name {
				rec = l
				break
			}
		}
		if rec == nil {
			rec = &LinkRecord{ServerName: name}
			store.Links = append(store.Links, rec)
		}
	})

	if c := e.Find("username"); c != nil {
		rec.Username = c.Value
	}
	if c := e.Find("hostname"); c != nil {
		rec.Hostname = c.Value
	}
	if c := e.Find("bind-ip"); c != nil && c.HasValue {
		rec.BindIP, rec.HasBindIP = c.Value, true
	} else {
		rec.HasBindIP = false
	}
	if c := e.Find("sendpass"); c != nil && c.HasValue {
		rec.Password, rec.HasPassword = c.Value, true
	} else {
		rec.HasPassword = false
	}
	if c := e.Find("recvpass"); c != nil {
		if auth, err := conv.Convert(c); err == nil {
			if rec.RecvAuth != nil {
				rec.RecvAuth.Release()
			}
			rec.RecvAuth = auth
		}
	}
	if c := e.Find("hub"); c != nil && c.HasValue {
		rec.HubMask, rec.HasHubMask = c.Value, true
	} else {
		rec.HasHubMask = false
	}
	if c := e.Find("leaf"); c != nil && c.HasValue {
		rec.LeafMask, rec.HasLeafMask = c.Value, true
	} else {
		rec.HasLeafMask = false
	}
	if c := e.Find("port"); c != nil {
		if n, ok := atoiStrict(c.Value); ok {
			rec.Port = n
		}
	}
	if c := e.Find("class"); c != nil && c.HasValue {
		rec.Class = resolveClass(e, c.Value, store, sink)
	}
	if c := e.Find("ciphers"); c != nil && c.HasValue {
		rec.Ciphers, rec.HasCiphers = c.Value, true
	} else {
		rec.HasCiphers = false
	}
	rec.Flags = 0
	if opts := e.Find("options"); opts != nil {
		rec.Flags = parseLinkFlags(opts.Children)
	}
}
