//go:build windows

package resolvconf

import (
	"strings"

	"golang.org/x/sys/windows/registry"
)

// applyPlatformSource reads resolver defaults from the registry. Windows
// 9x keeps everything under one MSTCP key; Windows NT and later keep a
// machine-wide Tcpip\Parameters key, followed by per-interface sub-keys
// under Interfaces\* that only fill fields still empty (nameservers are
// appended up to the limit). Each key is tried in non-Dhcp-then-Dhcp order.
//
// The two lookups read into independent local variables throughout
// (domain/search/nameserver are never the same buffer reused across the
// 9x and NT branches), avoiding the aliasing hazard of writing a parsed
// server list back over a shared scratch buffer.
func applyPlatformSource(s *State) error {
	if read9xMSTCP(s) {
		return nil
	}
	return readNTTcpipParameters(s)
}

func read9xMSTCP(s *State) bool {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `System\CurrentControlSet\Services\VxD\MSTCP`, registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	defer k.Close()

	domain9x, _, derr := k.GetStringValue("Domain")
	search9x, _, serr := k.GetStringValue("SearchList")
	ns9x, _, nerr := k.GetStringValue("NameServer")
	if derr != nil && serr != nil && nerr != nil {
		return false
	}
	applyRegistryFields(s, domain9x, search9x, ns9x)
	return true
}

func readNTTcpipParameters(s *State) error {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `SYSTEM\CurrentControlSet\Services\Tcpip\Parameters`, registry.QUERY_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()

	domainNT := firstNonEmptyString(k, "Domain", "DhcpDomain")
	searchNT := firstNonEmptyString(k, "SearchList", "DhcpSearchList")
	nsNT := firstNonEmptyString(k, "NameServer", "DhcpNameServer")
	applyRegistryFields(s, domainNT, searchNT, nsNT)

	ifKey, err := registry.OpenKey(registry.LOCAL_MACHINE, `SYSTEM\CurrentControlSet\Services\Tcpip\Parameters\Interfaces`, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		return nil // no per-interface sub-keys; machine-wide values stand
	}
	defer ifKey.Close()

	names, _ := ifKey.ReadSubKeyNames(-1)
	for _, name := range names {
		sub, err := registry.OpenKey(ifKey, name, registry.QUERY_VALUE)
		if err != nil {
			continue
		}
		domainIf := firstNonEmptyString(sub, "Domain", "DhcpDomain")
		searchIf := firstNonEmptyString(sub, "SearchList", "DhcpSearchList")
		nsIf := firstNonEmptyString(sub, "NameServer", "DhcpNameServer")
		sub.Close()
		applyRegistryFields(s, domainIf, searchIf, nsIf)
	}
	return nil
}

func firstNonEmptyString(k registry.Key, names ...string) string {
	for _, n := range names {
		if v, _, err := k.GetStringValue(n); err == nil && v != "" {
			return v
		}
	}
	return ""
}

func applyRegistryFields(s *State, domain, search, nameservers string) {
	if domain != "" && !s.domainFromEnv && s.Domain == "" {
		s.Domain = domain
	}
	if search != "" && !s.searchFromEnv && len(s.Search) == 0 {
		list := splitRegistryList(search)
		if len(list) > maxSearch {
			list = list[:maxSearch]
		}
		s.Search = list
	}
	if nameservers != "" {
		for _, ns := range splitRegistryList(nameservers) {
			if len(s.Nameservers) >= maxNameservers {
				break
			}
			s.Nameservers = append(s.Nameservers, ns)
		}
	}
}

func splitRegistryList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
