package ircdconf

func validateAllow(e *ParseEntry, sink *ErrorSink) {
	if e.HasValue && e.Value == "channel" {
		validateAllowChannel(e, sink)
		return
	}
	requireChildValue(e, "ip", sink)
	requireChildValue(e, "hostname", sink)
	requireChild(e, "password", sink)
	requireChildValue(e, "class", sink)

	if c := e.Find("maxperip"); c != nil {
		if s, ok := requireScalar(c, "allow::maxperip", sink); ok {
			if n, pok := parseIntValue(e, "allow::maxperip", s, sink); pok && n <= 0 {
				sink.Error(e.filename(), e.NameLine, "allow::maxperip must be > 0")
			}
		}
	}
	if c := e.Find("redirect-port"); c != nil {
		if s, ok := requireScalar(c, "allow::redirect-port", sink); ok {
			if n, pok := parseIntValue(e, "allow::redirect-port", s, sink); pok && (n < 1 || n > 65535) {
				sink.Error(e.filename(), e.NameLine, "allow::redirect-port %d out of range [1,65535]", n)
			}
		}
	}
	if opts := e.Find("options"); opts != nil {
		for _, c := range opts.Children {
			if c.Name != "noident" && c.Name != "useip" {
				sink.Error(c.filename(), c.NameLine, "allow: unknown option %q", c.Name)
			}
		}
	}
	warnUnknownChildren(e, map[string]bool{
		"ip": true, "hostname": true, "password": true, "class": true,
		"maxperip": true, "redirect-server": true, "redirect-port": true,
		"options": true,
	}, sink)
	rejectDuplicateScalarChildren(e, "ip", sink)
	rejectDuplicateScalarChildren(e, "hostname", sink)
	rejectDuplicateScalarChildren(e, "class", sink)
}

func validateAllowChannel(e *ParseEntry, sink *ErrorSink) {
	if len(e.FindAll("channel")) == 0 {
		sink.Error(e.filename(), e.NameLine, "allow channel requires at least one channel entry")
	}
	warnUnknownChildren(e, map[string]bool{"channel": true}, sink)
}

func applyAllow(e *ParseEntry, store *ConfigurationStore, sink *ErrorSink, conv AuthConverter) {
	if e.HasValue && e.Value == "channel" {
		applyAllowChannel(e, store, sink)
		return
	}

	rec := &AllowRecord{}
	if c := e.Find("ip"); c != nil {
		rec.IPPattern = c.Value
	}
	if c := e.Find("hostname"); c != nil {
		rec.HostPattern = c.Value
	}
	rec.Auth = buildAuth(e, conv)
	if c := e.Find("class"); c != nil && c.HasValue {
		rec.Class = resolveClass(e, c.Value, store, sink)
	}
	if c := e.Find("maxperip"); c != nil {
		if n, ok := atoiStrict(c.Value); ok {
			rec.MaxPerIP, rec.HasMaxPerIP = n, true
		}
	}
	if c := e.Find("redirect-server"); c != nil {
		rec.RedirectServer = c.Value
		rec.HasRedirect = true
	}
	if c := e.Find("redirect-port"); c != nil {
		if n, ok := atoiStrict(c.Value); ok {
			rec.RedirectPort = n
			rec.HasRedirect = true
		}
	}
	if opts := e.Find("options"); opts != nil {
		rec.NoIdent = opts.Find("noident") != nil
		rec.UseIP = opts.Find("useip") != nil
	}
	store.withWriteLock(func() {
		store.Allows = append(store.Allows, rec)
	})
}

func applyAllowChannel(e *ParseEntry, store *ConfigurationStore, sink *ErrorSink) {
	for _, c := range e.FindAll("channel") {
		if !c.HasValue {
			continue
		}
		rec := &AllowChannelRecord{ChannelMask: c.Value}
		store.withWriteLock(func() {
			store.AllowChannels = append(store.AllowChannels, rec)
		})
	}
}
