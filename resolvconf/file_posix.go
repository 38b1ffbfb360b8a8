//go:build !windows

package resolvconf

import (
	"bufio"
	"os"
	"strings"
)

// DefaultConfPath is the canonical resolver configuration file path on
// POSIX, overridable at build time via a linker flag in the embedding
// daemon.
var DefaultConfPath = "/etc/resolv.conf"

// applyPlatformSource reads DefaultConfPath, applying domain/search only
// if not already set from the environment, and appending nameservers,
// sortlist entries and options regardless.
func applyPlatformSource(s *State) error {
	f, err := os.Open(DefaultConfPath)
	if err != nil {
		return err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		keyword, rest := fields[0], fields[1:]
		switch keyword {
		case "domain":
			if !s.domainFromEnv {
				s.Domain = rest[0]
			}
		case "search":
			if !s.searchFromEnv {
				search := rest
				if len(search) > maxSearch {
					search = search[:maxSearch]
				}
				s.Search = append([]string(nil), search...)
			}
		case "nameserver":
			if len(s.Nameservers) < maxNameservers {
				s.Nameservers = append(s.Nameservers, rest[0])
			}
		case "sortlist":
			for _, tok := range rest {
				if sl, ok := parseSortlistToken(tok); ok {
					s.Sortlist = append(s.Sortlist, sl)
				}
			}
		case "options":
			for _, tok := range rest {
				applyOptionToken(s, tok)
			}
		}
	}
	return sc.Err()
}
