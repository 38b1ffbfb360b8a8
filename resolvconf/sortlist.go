package resolvconf

import (
	"net"
	"strings"
)

// parseSortlistToken parses one sortlist token in the form addr[/mask]
// or addr&mask. When no mask is given, the classful mask of addr is
// used.
func parseSortlistToken(tok string) (Sortlist, bool) {
	sep := strings.IndexAny(tok, "/&")
	var addrPart, maskPart string
	if sep < 0 {
		addrPart = tok
	} else {
		addrPart = tok[:sep]
		maskPart = tok[sep+1:]
	}
	ip := net.ParseIP(addrPart)
	if ip == nil || ip.To4() == nil {
		return Sortlist{}, false
	}
	ip4 := ip.To4()

	var mask net.IPMask
	if maskPart == "" {
		mask = classfulMask(ip4)
	} else {
		if m := net.ParseIP(maskPart); m != nil && m.To4() != nil {
			mask = net.IPMask(m.To4())
		} else {
			return Sortlist{}, false
		}
	}
	return Sortlist{Addr: ip4.String(), Mask: net.IP(mask).String()}, true
}

// classfulMask returns the traditional class A/B/C network mask for
// addr, the default used when a sortlist entry omits an explicit mask.
func classfulMask(addr net.IP) net.IPMask {
	switch {
	case addr[0] < 128:
		return net.CIDRMask(8, 32)
	case addr[0] < 192:
		return net.CIDRMask(16, 32)
	default:
		return net.CIDRMask(24, 32)
	}
}
