package ircdconf

import "strings"

// splitIPPort parses a listen/allow-style address value in one of three
// forms: "ip:port", "[ipv6]:port", or a bare port (ip defaults to "*").
// ok is false if the value is malformed and must be rejected at
// validation.
//
// A "[ipv6]"-form value missing its closing ']' is treated as the whole
// value being an ip literal with no port, and is rejected here rather
// than guessed at - a bracket-opened address with no close is always a
// configuration mistake, never a valid bare ip or bare port.
func splitIPPort(value string) (ip string, port int, hasPort bool, ok bool) {
	if value == "" {
		return "", 0, false, false
	}
	if value[0] == '[' {
		end := strings.IndexByte(value, ']')
		if end < 0 {
			return "", 0, false, false
		}
		ip = value[1:end]
		rest := value[end+1:]
		if rest == "" {
			return ip, 0, false, true
		}
		if rest[0] != ':' {
			return "", 0, false, false
		}
		p, pok := atoiStrict(rest[1:])
		if !pok {
			return "", 0, false, false
		}
		return ip, p, true, true
	}
	if idx := strings.LastIndexByte(value, ':'); idx >= 0 {
		maybePort := value[idx+1:]
		if p, pok := atoiStrict(maybePort); pok {
			return value[:idx], p, true, true
		}
		return "", 0, false, false
	}
	if p, pok := atoiStrict(value); pok {
		return "*", p, true, true
	}
	return "", 0, false, false
}
