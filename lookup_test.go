package ircdconf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStore() *ConfigurationStore {
	s := NewConfigurationStore()
	s.Classes = append(s.Classes, &ClassRecord{Name: "default"})
	s.Opers = append(s.Opers, &OperRecord{Name: "Alice"})
	s.Listeners = append(s.Listeners,
		&ListenerRecord{IP: "*", Port: 6667},
		&ListenerRecord{IP: "10.0.0.1", Port: 6697},
	)
	s.Ulines = append(s.Ulines, &UlineRecord{Server: "hub.example.org"})
	s.Tlds = append(s.Tlds, &TldRecord{HostMask: "*.jp"})
	s.Links = append(s.Links, &LinkRecord{ServerName: "hub.example.org", Username: "link", Hostname: "*.example.org"})
	s.Aliases = append(s.Aliases, &AliasRecord{Alias: "NickServ", Target: "services.example.org"})
	s.Vhosts = append(s.Vhosts, &VhostRecord{Login: "bob", VirtualHost: "bob.users.example.org"})
	return s
}

func TestFindClassExactMatch(t *testing.T) {
	s := newTestStore()
	require.NotNil(t, s.FindClass("default"))
	require.Nil(t, s.FindClass("missing"))
}

func TestFindOperCaseSensitive(t *testing.T) {
	s := newTestStore()
	require.NotNil(t, s.FindOper("Alice"))
	require.Nil(t, s.FindOper("alice"))
}

func TestFindListenBidirectional(t *testing.T) {
	s := newTestStore()
	require.NotNil(t, s.FindListen("192.168.1.5", 6667))
	require.NotNil(t, s.FindListen("*", 6697))
	require.Nil(t, s.FindListen("10.0.0.1", 6668))
}

func TestFindUlineCaseInsensitive(t *testing.T) {
	s := newTestStore()
	require.NotNil(t, s.FindUline("HUB.EXAMPLE.ORG"))
}

func TestFindTldMaskMatch(t *testing.T) {
	s := newTestStore()
	require.NotNil(t, s.FindTld("irc.example.jp"))
	require.Nil(t, s.FindTld("irc.example.uk"))
}

func TestFindLinkRequiresAllThreeFields(t *testing.T) {
	s := newTestStore()
	require.NotNil(t, s.FindLink("link", "irc.example.org", "1.2.3.4", "hub.example.org"))
	require.Nil(t, s.FindLink("other", "irc.example.org", "1.2.3.4", "hub.example.org"))
	require.Nil(t, s.FindLink("link", "irc.example.org", "1.2.3.4", "leaf.example.org"))
}

func TestFindAliasCaseInsensitive(t *testing.T) {
	s := newTestStore()
	require.NotNil(t, s.FindAlias("nickserv"))
}

func TestFindVhostCaseSensitive(t *testing.T) {
	s := newTestStore()
	require.NotNil(t, s.FindVhost("bob"))
	require.Nil(t, s.FindVhost("Bob"))
}

func TestFindBanExceptPrecedence(t *testing.T) {
	s := NewConfigurationStore()
	s.Bans = append(s.Bans, &BanRecord{Mask: "*@evil.example.org", Kind: ExceptBan})

	require.NotNil(t, s.FindBan("user@evil.example.org", ExceptBan))

	s.Excepts = append(s.Excepts, &ExceptRecord{Mask: "*@evil.example.org", Kind: ExceptBan})
	require.Nil(t, s.FindBan("user@evil.example.org", ExceptBan))
}

func TestFindBanNonUserKindIgnoresExcept(t *testing.T) {
	s := NewConfigurationStore()
	s.Bans = append(s.Bans, &BanRecord{Mask: "*@bad.example.org", Kind: ExceptScan})
	s.Excepts = append(s.Excepts, &ExceptRecord{Mask: "*@bad.example.org", Kind: ExceptScan})

	// The except-ban precedence rule is specific to user bans; a scan
	// ban is returned even when a matching "except scan" entry exists.
	require.NotNil(t, s.FindBan("x@bad.example.org", ExceptScan))
}

func TestFindBanExSubkindFilter(t *testing.T) {
	s := NewConfigurationStore()
	s.Bans = append(s.Bans, &BanRecord{
		Mask: "*@spam.example.org", Kind: ExceptTKL,
		SubKind: TKLKill | TKLGlobal, HasSubKind: true,
	})
	require.NotNil(t, s.FindBanEx("x@spam.example.org", ExceptTKL, TKLKill))
	require.Nil(t, s.FindBanEx("x@spam.example.org", ExceptTKL, TKLShun))
}

func TestFindChannelAllowedDenyUnlessAllow(t *testing.T) {
	s := NewConfigurationStore()
	require.False(t, s.FindChannelAllowed("#general"))

	s.DenyChannels = append(s.DenyChannels, &DenyChannelRecord{ChannelMask: "#*"})
	require.True(t, s.FindChannelAllowed("#general"))

	s.AllowChannels = append(s.AllowChannels, &AllowChannelRecord{ChannelMask: "#general"})
	require.False(t, s.FindChannelAllowed("#general"))
	require.True(t, s.FindChannelAllowed("#other"))
}
