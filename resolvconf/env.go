package resolvconf

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// applyLocalDomainEnv applies LOCALDOMAIN: it sets the default domain to
// the first whitespace-separated token and the search list to all of
// them (up to maxSearch), marking both as "from env" so a later platform
// source does not overwrite them.
func applyLocalDomainEnv(s *State) {
	v, ok := os.LookupEnv("LOCALDOMAIN")
	if !ok || strings.TrimSpace(v) == "" {
		return
	}
	fields := strings.FieldsFunc(v, func(r rune) bool { return r == ' ' || r == '\t' })
	if len(fields) == 0 {
		return
	}
	s.Domain = fields[0]
	s.domainFromEnv = true
	if len(fields) > maxSearch {
		fields = fields[:maxSearch]
	}
	s.Search = append([]string(nil), fields...)
	s.searchFromEnv = true
}

// applyResOptionsEnv applies RES_OPTIONS: whitespace-separated tokens
// ndots:N (clamped to [0,resMaxNDots]), debug, and inet6.
func applyResOptionsEnv(s *State) {
	v, ok := os.LookupEnv("RES_OPTIONS")
	if !ok {
		return
	}
	for _, tok := range strings.Fields(v) {
		applyOptionToken(s, tok)
	}
}

func applyOptionToken(s *State, tok string) {
	switch {
	case strings.HasPrefix(tok, "ndots:"):
		n, err := strconv.Atoi(tok[len("ndots:"):])
		if err != nil {
			return
		}
		if n > resMaxNDots {
			n = resMaxNDots
		}
		if n < 0 {
			n = 0
		}
		s.ndotsValue = n
		s.NDots = true
	case tok == "debug":
		s.Debug = true
	case tok == "inet6":
		s.Inet6 = true
	}
}

// domainFromHostname derives a default domain by stripping the first
// label off the local hostname, mirroring the fallback used when no
// domain is configured anywhere else.
func domainFromHostname() string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return ""
	}
	if idx := indexByte(name, '.'); idx >= 0 {
		return name[idx+1:]
	}
	return ""
}

// queryIDSeed derives a 16-bit seed from the current time and process
// id, the way a resolver seeds its query-id generator.
func queryIDSeed() uint16 {
	micros := time.Now().UnixNano() / int64(time.Microsecond)
	pid := os.Getpid()
	return uint16(micros) ^ uint16(pid)
}
