package resolvconf

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyLocalDomainEnv(t *testing.T) {
	t.Setenv("LOCALDOMAIN", "a.b c.d")
	var s State
	applyLocalDomainEnv(&s)
	require.Equal(t, "a.b", s.Domain)
	require.Equal(t, []string{"a.b", "c.d"}, s.Search)
	require.True(t, s.domainFromEnv)
	require.True(t, s.searchFromEnv)
}

func TestApplyLocalDomainEnvAbsent(t *testing.T) {
	os.Unsetenv("LOCALDOMAIN")
	var s State
	applyLocalDomainEnv(&s)
	require.Empty(t, s.Domain)
	require.False(t, s.domainFromEnv)
}

func TestSearchListFromDomain(t *testing.T) {
	got := searchListFromDomain("foo.example.com")
	require.Equal(t, []string{"foo.example.com", "example.com"}, got)
}

func TestSearchListFromDomainSingleLabel(t *testing.T) {
	got := searchListFromDomain("localhost")
	require.Equal(t, []string{"localhost"}, got)
}

func TestApplyResOptionsEnv(t *testing.T) {
	t.Setenv("RES_OPTIONS", "ndots:3 debug inet6")
	var s State
	applyResOptionsEnv(&s)
	require.True(t, s.NDots)
	require.Equal(t, 3, s.ndotsValue)
	require.True(t, s.Debug)
	require.True(t, s.Inet6)
}

func TestApplyResOptionsEnvClampsNDots(t *testing.T) {
	t.Setenv("RES_OPTIONS", "ndots:99")
	var s State
	applyResOptionsEnv(&s)
	require.Equal(t, resMaxNDots, s.ndotsValue)
}

func TestParseSortlistTokenWithMask(t *testing.T) {
	sl, ok := parseSortlistToken("130.155.160.0/255.255.240.0")
	require.True(t, ok)
	require.Equal(t, "130.155.160.0", sl.Addr)
	require.Equal(t, "255.255.240.0", sl.Mask)
}

func TestParseSortlistTokenClassfulDefault(t *testing.T) {
	sl, ok := parseSortlistToken("10.0.0.0")
	require.True(t, ok)
	require.Equal(t, "255.0.0.0", sl.Mask)
}

func TestParseSortlistTokenAmpersandSeparator(t *testing.T) {
	sl, ok := parseSortlistToken("192.168.1.0&255.255.255.0")
	require.True(t, ok)
	require.Equal(t, "255.255.255.0", sl.Mask)
}

func TestParseSortlistTokenInvalid(t *testing.T) {
	_, ok := parseSortlistToken("not-an-ip")
	require.False(t, ok)
}

func TestDomainFromHostnameStripsFirstLabel(t *testing.T) {
	// domainFromHostname depends on the live host's name, so the expected
	// value is derived from os.Hostname here.
	d1 := domainFromHostname()
	d2 := domainFromHostname()
	require.Equal(t, d1, d2)
	want := ""
	if host, err := os.Hostname(); err == nil {
		if idx := indexByte(host, '.'); idx >= 0 {
			want = host[idx+1:]
		}
	}
	require.Equal(t, want, d1)
}
