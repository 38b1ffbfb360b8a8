package ircdconf

func validateListen(e *ParseEntry, sink *ErrorSink) {
	value, ok := requireScalar(e, "listen", sink)
	if !ok {
		return
	}
	_, port, _, pok := splitIPPort(value)
	if !pok {
		sink.Error(e.filename(), e.NameLine, "listen: %q is not a valid ip:port, [ipv6]:port, or bare port", value)
		return
	}
	if port < 0 || port > 65535 {
		sink.Error(e.filename(), e.NameLine, "listen: port %d out of range [0,65535]", port)
	}
	if opts := e.Find("options"); opts != nil {
		for _, c := range opts.Children {
			if _, known := listenerFlagNames[c.Name]; !known {
				sink.Error(c.filename(), c.NameLine, "listen %q: unknown option %q", value, c.Name)
			}
		}
	}
	warnUnknownChildren(e, map[string]bool{"options": true}, sink)
}

func applyListen(e *ParseEntry, store *ConfigurationStore, sink *ErrorSink, conv AuthConverter) {
	ip, port, hasPort, ok := splitIPPort(e.Value)
	if !ok {
		return
	}
	if !hasPort {
		port = 0
	}

	var rec *ListenerRecord
	store.withWriteLock(func() {
		for _, l := range store.Listeners {
			if l.Port == port && bidirectionalMatch(l.IP, ip) {
				rec = l
				break
			}
		}
		if rec == nil {
			rec = &ListenerRecord{IP: ip, Port: port}
			store.Listeners = append(store.Listeners, rec)
			return
		}
		// Retain prior bound/clients/temporary transient state; only the
		// configured fields below are replaced.
		rec.IP = ip
		rec.Port = port
	})

	var flags ListenerFlag
	if opts := e.Find("options"); opts != nil {
		flags = parseListenerFlags(opts.Children)
	}
	rec.Flags = flags
}
