package ircdconf

import "strings"

// FindClass performs an exact, case-sensitive, first-hit lookup.
func (s *ConfigurationStore) FindClass(name string) *ClassRecord {
	var found *ClassRecord
	s.withReadLock(func() {
		for _, c := range s.Classes {
			if c.Name == name {
				found = c
				return
			}
		}
	})
	return found
}

// FindOper performs an exact, case-sensitive, first-hit lookup.
func (s *ConfigurationStore) FindOper(name string) *OperRecord {
	var found *OperRecord
	s.withReadLock(func() {
		for _, o := range s.Opers {
			if o.Name == name {
				found = o
				return
			}
		}
	})
	return found
}

// FindListen returns the first listener whose (ip,port) pair equals the
// given pair under the bidirectional mask test: port equality AND either
// side's ip pattern-matches the other.
func (s *ConfigurationStore) FindListen(ip string, port int) *ListenerRecord {
	var found *ListenerRecord
	s.withReadLock(func() {
		for _, l := range s.Listeners {
			if l.Port != port {
				continue
			}
			if bidirectionalMatch(l.IP, ip) {
				found = l
				return
			}
		}
	})
	return found
}

// FindUline performs a case-insensitive exact lookup.
func (s *ConfigurationStore) FindUline(server string) *UlineRecord {
	var found *UlineRecord
	s.withReadLock(func() {
		for _, u := range s.Ulines {
			if strings.EqualFold(u.Server, server) {
				found = u
				return
			}
		}
	})
	return found
}

// FindExcept performs a linear scan for the first mask matching host,
// restricted to the given kind.
func (s *ConfigurationStore) FindExcept(host string, kind ExceptKind) *ExceptRecord {
	var found *ExceptRecord
	s.withReadLock(func() {
		for _, e := range s.Excepts {
			if e.Kind != kind {
				continue
			}
			if MatchMask(e.Mask, host) {
				found = e
				return
			}
		}
	})
	return found
}

// FindTld returns the first TldRecord whose host mask matches host.
func (s *ConfigurationStore) FindTld(host string) *TldRecord {
	var found *TldRecord
	s.withReadLock(func() {
		for _, t := range s.Tlds {
			if MatchMask(t.HostMask, host) {
				found = t
				return
			}
		}
	})
	return found
}

// FindLink returns the first LinkRecord matching server, username and
// (host OR ip).
func (s *ConfigurationStore) FindLink(user, host, ip, server string) *LinkRecord {
	var found *LinkRecord
	s.withReadLock(func() {
		for _, l := range s.Links {
			if !strings.EqualFold(l.ServerName, server) {
				continue
			}
			if !MatchMask(l.Username, user) {
				continue
			}
			if !MatchMask(l.Hostname, host) && !MatchMask(l.Hostname, ip) {
				continue
			}
			found = l
			return
		}
	})
	return found
}

// UserBanKind identifies a BanRecord/ExceptRecord as a user-facing ban
// (as opposed to scan or tkl), used by FindBan's except-ban precedence
// rule.
const UserBanKind = ExceptBan

// FindBan returns the first BanRecord matching host and kind, UNLESS kind
// is a user-ban and some "except ban" also matches host, in which case it
// returns nil.
func (s *ConfigurationStore) FindBan(host string, kind ExceptKind) *BanRecord {
	if kind == UserBanKind {
		if s.FindExcept(host, ExceptBan) != nil {
			return nil
		}
	}
	var found *BanRecord
	s.withReadLock(func() {
		for _, b := range s.Bans {
			if b.Kind != kind {
				continue
			}
			if MatchMask(b.Mask, host) {
				found = b
				return
			}
		}
	})
	return found
}

// FindBanEx is FindBan further filtered by subkind; the except-ban check
// always runs regardless of subkind match.
func (s *ConfigurationStore) FindBanEx(host string, kind ExceptKind, subkind TKLSubKind) *BanRecord {
	if kind == UserBanKind {
		if s.FindExcept(host, ExceptBan) != nil {
			return nil
		}
	}
	var found *BanRecord
	s.withReadLock(func() {
		for _, b := range s.Bans {
			if b.Kind != kind {
				continue
			}
			if b.HasSubKind && b.SubKind&subkind == 0 {
				continue
			}
			if MatchMask(b.Mask, host) {
				found = b
				return
			}
		}
	})
	return found
}

// FindChannelAllowed reports whether name is denied: true iff some deny
// pattern matches AND no allow pattern matches.
func (s *ConfigurationStore) FindChannelAllowed(name string) (denied bool) {
	var anyDeny bool
	s.withReadLock(func() {
		for _, d := range s.DenyChannels {
			if MatchMask(d.ChannelMask, name) {
				anyDeny = true
				break
			}
		}
		if !anyDeny {
			return
		}
		for _, a := range s.AllowChannels {
			if MatchMask(a.ChannelMask, name) {
				anyDeny = false
				return
			}
		}
	})
	return anyDeny
}

// FindAlias performs a case-insensitive lookup.
func (s *ConfigurationStore) FindAlias(name string) *AliasRecord {
	var found *AliasRecord
	s.withReadLock(func() {
		for _, a := range s.Aliases {
			if strings.EqualFold(a.Alias, name) {
				found = a
				return
			}
		}
	})
	return found
}

// FindVhost performs a case-sensitive lookup on Login.
func (s *ConfigurationStore) FindVhost(login string) *VhostRecord {
	var found *VhostRecord
	s.withReadLock(func() {
		for _, v := range s.Vhosts {
			if v.Login == login {
				found = v
				return
			}
		}
	})
	return found
}
