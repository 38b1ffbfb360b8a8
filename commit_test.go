package ircdconf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func parseAndCommit(t *testing.T, src string) (*ConfigurationStore, *ErrorSink, bool) {
	t.Helper()
	sink := NewErrorSink()
	pf, err := Parse("commit_test.conf", []byte(src), sink)
	require.NoError(t, err)
	ok := Validate(pf, sink)
	store := NewConfigurationStore()
	if ok {
		Commit(pf, store, sink, nil)
	}
	return store, sink, ok
}

func TestCommitClassFallsBackToDefault(t *testing.T) {
	src := `
class "default" { pingfreq 90; maxclients 100; sendq 100000; };
oper "bob" { password "x"; from { userhost "*@*"; }; class "missing"; };
`
	store, sink, ok := parseAndCommit(t, src)
	require.True(t, ok)

	o := store.FindOper("bob")
	require.NotNil(t, o)
	require.NotNil(t, o.Class)
	require.Equal(t, DefaultClassName, o.Class.Name)
	require.Greater(t, sink.Warnings(), 0)
}

func TestCommitKeyedUpdateIsIdempotent(t *testing.T) {
	src := `
class "default" { pingfreq 90; maxclients 100; sendq 100000; };
class "default" { pingfreq 120; maxclients 200; sendq 200000; };
`
	store, _, ok := parseAndCommit(t, src)
	require.True(t, ok)
	require.Len(t, store.Classes, 1)
	require.Equal(t, 120, store.Classes[0].PingFreq)
	require.Equal(t, 200, store.Classes[0].MaxClients)
}

func TestCommitBuildsAuthFromPassword(t *testing.T) {
	src := `
class "default" { pingfreq 90; maxclients 100; sendq 100000; };
oper "bob" { password "secret"; from { userhost "*@*"; }; class "default"; };
`
	store, _, ok := parseAndCommit(t, src)
	require.True(t, ok)

	o := store.FindOper("bob")
	require.NotNil(t, o)
	require.NotNil(t, o.Auth)
	require.True(t, o.Auth.Verify("secret"))
	require.False(t, o.Auth.Verify("wrong"))
}

func TestCommitCollectsUserHostsFromFromBlock(t *testing.T) {
	src := `
class "default" { pingfreq 90; maxclients 100; sendq 100000; };
oper "bob" { password "x"; from { userhost "bob@host1.example.org"; userhost "bob@host2.example.org"; }; class "default"; };
`
	store, _, ok := parseAndCommit(t, src)
	require.True(t, ok)

	o := store.FindOper("bob")
	require.NotNil(t, o)
	require.Equal(t, []string{"bob@host1.example.org", "bob@host2.example.org"}, o.UserHosts)
}
