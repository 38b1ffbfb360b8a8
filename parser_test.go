package ircdconf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMinimalMeBlock(t *testing.T) {
	src := `me { name "irc.example.org"; info "Example"; numeric 1; };`
	sink := NewErrorSink()
	f, err := Parse("test.conf", []byte(src), sink)
	require.NoError(t, err)
	require.Len(t, f.Entries, 1)
	me := f.Entries[0]
	require.Equal(t, "me", me.Name)
	require.Len(t, me.Children, 3)
	require.Equal(t, "irc.example.org", me.Find("name").Value)
	require.Equal(t, "Example", me.Find("info").Value)
	require.Equal(t, "1", me.Find("numeric").Value)
}

func TestParseQuoteEscapeRoundTrip(t *testing.T) {
	src := `me { name "a.b"; info "say \"hi\""; numeric 1; };`
	sink := NewErrorSink()
	f, err := Parse("test.conf", []byte(src), sink)
	require.NoError(t, err)
	require.Equal(t, `say "hi"`, f.Entries[0].Find("info").Value)
}

func TestParseUnterminatedQuote(t *testing.T) {
	src := "me { name \"a.b\n"
	sink := NewErrorSink()
	_, err := Parse("test.conf", []byte(src), sink)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unterminated quote")
}

func TestParseNestedUnterminatedBlockComment(t *testing.T) {
	src := "/* outer /* inner */ "
	sink := NewErrorSink()
	_, err := Parse("test.conf", []byte(src), sink)
	require.Error(t, err)
	se, ok := err.(*SyntaxError)
	require.True(t, ok)
	require.Equal(t, 1, se.Line)
}

func TestParseCommentNeutrality(t *testing.T) {
	plain := `class main { pingfreq 90; maxclients 100; sendq 100000; };`
	commented := "class main { pingfreq /* x */ 90; // trailing\nmaxclients 100; sendq 100000; };"

	sink1 := NewErrorSink()
	f1, err := Parse("a.conf", []byte(plain), sink1)
	require.NoError(t, err)

	sink2 := NewErrorSink()
	f2, err := Parse("a.conf", []byte(commented), sink2)
	require.NoError(t, err)

	require.Equal(t, entryShape(f1.Entries), entryShape(f2.Entries))
}

func entryShape(entries []*ParseEntry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.Name+"="+e.Value)
		out = append(out, entryShape(e.Children)...)
	}
	return out
}

func TestParseMissingSemicolonBeforeCloseBrace(t *testing.T) {
	src := `class main { pingfreq 90 };`
	sink := NewErrorSink()
	_, err := Parse("a.conf", []byte(src), sink)
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing semicolon")
}

func TestParseStraySemicolonIsStatusOnly(t *testing.T) {
	src := `; me { name "a.b"; info "x"; numeric 1; };`
	sink := NewErrorSink()
	f, err := Parse("a.conf", []byte(src), sink)
	require.NoError(t, err)
	require.Equal(t, 1, sink.Warnings())
	require.Len(t, f.Entries, 1)
}

func TestParseLineNumbersAcrossBlockComment(t *testing.T) {
	src := "me {\n/* line2\nline3\nline4 */ name \"a.b\"; info \"x\"; numeric 1; };"
	sink := NewErrorSink()
	f, err := Parse("a.conf", []byte(src), sink)
	require.NoError(t, err)
	name := f.Entries[0].Find("name")
	require.Equal(t, 4, name.NameLine)
}
