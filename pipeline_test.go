package ircdconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestS1MinimalMeBlock(t *testing.T) {
	src := `me { name "irc.example.org"; info "Example"; numeric 1; };`
	sink := NewErrorSink()
	pf, err := Parse("s1.conf", []byte(src), sink)
	require.NoError(t, err)

	require.True(t, Validate(pf, sink))

	store := NewConfigurationStore()
	Commit(pf, store, sink, nil)

	require.NotNil(t, store.Me)
	require.Equal(t, "irc.example.org", store.Me.Name)
	require.Equal(t, "Example", store.Me.Info)
	require.Equal(t, 1, store.Me.Numeric)
}

func TestS2InvalidNumeric(t *testing.T) {
	src := `me { name "a.b"; info "x"; numeric 999; };`
	sink := NewErrorSink()
	pf, err := Parse("s2.conf", []byte(src), sink)
	require.NoError(t, err)

	ok := Validate(pf, sink)
	require.False(t, ok)
	require.Equal(t, 1, sink.Count())

	store := NewConfigurationStore()
	if ok {
		Commit(pf, store, sink, nil)
	}
	require.Nil(t, store.Me)
}

func TestS3IncludeExpansionOrder(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "subdir")
	require.NoError(t, os.Mkdir(sub, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(sub, "a.conf"), []byte(`oper "A" { password "x"; from { userhost "*@*"; }; class "default"; };`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "b.conf"), []byte(`oper "B" { password "x"; from { userhost "*@*"; }; class "default"; };`), 0o644))

	root := filepath.Join(dir, "root.conf")
	require.NoError(t, os.WriteFile(root, []byte(`include "`+sub+`/*.conf";`), 0o644))

	sink := NewErrorSink()
	loader := NewLoader(sink)
	files, err := loader.Load(root)
	require.NoError(t, err)

	var names []string
	for f := files; f != nil; f = f.Next {
		for _, e := range f.Entries {
			if e.Name == "oper" {
				names = append(names, e.Value)
			}
		}
	}
	require.Equal(t, []string{"A", "B"}, names)
}

func TestS5NestedUnterminatedComment(t *testing.T) {
	src := `/* outer /* inner */ `
	sink := NewErrorSink()
	_, err := Parse("s5.conf", []byte(src), sink)
	require.Error(t, err)
	require.Equal(t, 1, sink.Count())
}

func TestS6RehashStability(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ircd.conf")

	c1 := `
me { name "irc.example.org"; info "x"; numeric 1; };
oper "O1" { password "p"; from { userhost "*@*"; }; class "default"; };
oper "O2" { password "p"; from { userhost "*@*"; }; class "default"; };
`
	require.NoError(t, os.WriteFile(path, []byte(c1), 0o644))

	store := NewConfigurationStore()
	r := NewRehasher(path, store)
	_, ok := r.Run()
	require.True(t, ok)

	o1First := store.FindOper("O1")
	o2First := store.FindOper("O2")
	require.NotNil(t, o1First)
	require.NotNil(t, o2First)

	c2 := `
me { name "irc.example.org"; info "x"; numeric 1; };
oper "O1" { password "q"; from { userhost "*@*"; }; class "default"; };
oper "O3" { password "p"; from { userhost "*@*"; }; class "default"; };
`
	require.NoError(t, os.WriteFile(path, []byte(c2), 0o644))
	_, ok = r.Run()
	require.True(t, ok)

	o1Second := store.FindOper("O1")
	require.Same(t, o1First, o1Second, "O1 should be updated in place, same identity")

	o2Second := store.FindOper("O2")
	require.Same(t, o2First, o2Second, "O2 should persist, not be removed")

	o3 := store.FindOper("O3")
	require.NotNil(t, o3)
}
