// Package resolvconf bootstraps default resolver settings (domain,
// search list, nameservers, sortlist and options) from an environment
// override, a platform source, and a hostname-derived fallback, the way
// a stub resolver's res_init does on first use.
package resolvconf

const (
	maxNameservers = 3
	maxSearch      = 6
	maxDNameLen    = 256
	localDomainParts = 2
	resMaxNDots      = 15
)

// Sortlist is one address/netmask pair used to order returned answers.
type Sortlist struct {
	Addr string
	Mask string
}

// State is the canonical resolver state record produced by Init. It is a
// single process-wide value initialized once; calling Init again after a
// first success is a no-op.
type State struct {
	Domain     string
	Search     []string
	Nameservers []string
	Sortlist   []Sortlist

	NDots bool
	Debug bool
	Inet6 bool

	QueryIDSeed uint16

	domainFromEnv bool
	searchFromEnv bool
	ndotsValue    int
}

var (
	initialized bool
	current     State
)

// Init performs single-shot initialization of the process-wide resolver
// state. Re-initialization after a first success is a no-op; callers
// that need to react to environment or file changes should construct a
// fresh State directly instead.
func Init() State {
	if initialized {
		return current
	}
	s := State{ndotsValue: 1}

	applyLocalDomainEnv(&s)

	if err := applyPlatformSource(&s); err != nil {
		// A platform source failure is not fatal - later fallback steps
		// still produce a usable (if minimal) state.
	}

	if s.Domain == "" {
		s.Domain = domainFromHostname()
	}

	if len(s.Search) == 0 && s.Domain != "" {
		s.Search = searchListFromDomain(s.Domain)
	}

	applyResOptionsEnv(&s)

	s.QueryIDSeed = queryIDSeed()

	current = s
	initialized = true
	return current
}

// searchListFromDomain derives a search list from successive suffixes of
// domain, stopping after the first entry with fewer than localDomainParts
// dots.
func searchListFromDomain(domain string) []string {
	var out []string
	d := domain
	for {
		out = append(out, d)
		if len(out) >= maxSearch {
			break
		}
		idx := indexByte(d, '.')
		if idx < 0 {
			break
		}
		next := d[idx+1:]
		if dotCount(d) < localDomainParts {
			break
		}
		d = next
	}
	return out
}

func dotCount(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			n++
		}
	}
	return n
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}
