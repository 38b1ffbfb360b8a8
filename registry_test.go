package ircdconf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupDirectiveKnown(t *testing.T) {
	d := lookupDirective("oper")
	require.NotNil(t, d)
	require.Equal(t, "oper", d.name)
	require.NotNil(t, d.validate)
	require.NotNil(t, d.apply)
}

func TestLookupDirectiveIncludeHasNoApplier(t *testing.T) {
	d := lookupDirective("include")
	require.NotNil(t, d)
	require.NotNil(t, d.validate)
	require.Nil(t, d.apply)
}

func TestLookupDirectiveUnknown(t *testing.T) {
	require.Nil(t, lookupDirective("bogus"))
}

func TestUnknownDirectiveReportsValidationError(t *testing.T) {
	src := `bogus { foo "bar"; };`
	sink := NewErrorSink()
	pf, err := Parse("unknown.conf", []byte(src), sink)
	require.NoError(t, err)

	ok := Validate(pf, sink)
	require.False(t, ok)
	require.Equal(t, 1, sink.Count())
}
