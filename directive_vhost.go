package ircdconf

import "strings"

func validateVhost(e *ParseEntry, sink *ErrorSink) {
	requireChildValue(e, "vhost", sink)
	requireChildValue(e, "login", sink)
	requireChild(e, "password", sink)
	from, ok := requireChild(e, "from", sink)
	if ok && len(from.FindAll("userhost")) == 0 {
		sink.Error(e.filename(), e.NameLine, "vhost: from{} requires at least one userhost")
	}
	warnUnknownChildren(e, map[string]bool{
		"vhost": true, "login": true, "password": true, "from": true, "swhois": true,
	}, sink)
	rejectDuplicateScalarChildren(e, "vhost", sink)
	rejectDuplicateScalarChildren(e, "login", sink)
}

func applyVhost(e *ParseEntry, store *ConfigurationStore, sink *ErrorSink, conv AuthConverter) {
	var login string
	if c := e.Find("login"); c != nil {
		login = c.Value
	}

	var rec *VhostRecord
	store.withWriteLock(func() {
		for _, v := range store.Vhosts {
			if v.Login == login {
				rec = v
				break
			}
		}
		if rec == nil {
			rec = &VhostRecord{Login: login}
			store.Vhosts = append(store.Vhosts, rec)
		}
	})

	if newAuth := buildAuth(e, conv); newAuth != nil {
		if rec.Auth != nil {
			rec.Auth.Release()
		}
		rec.Auth = newAuth
	}

	if c := e.Find("vhost"); c != nil && c.HasValue {
		if at := strings.IndexByte(c.Value, '@'); at >= 0 {
			rec.VirtualUser, rec.HasUser = c.Value[:at], true
			rec.VirtualHost = c.Value[at+1:]
		} else {
			rec.HasUser = false
			rec.VirtualUser = ""
			rec.VirtualHost = c.Value
		}
	}
	rec.UserHosts = collectUserHosts(e)
	if c := e.Find("swhois"); c != nil && c.HasValue {
		rec.Swhois, rec.HasSwhois = c.Value, true
	} else {
		rec.HasSwhois = false
	}
}
