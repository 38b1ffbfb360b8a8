package ircdconf

import "testing"

func TestMatchMaskStar(t *testing.T) {
	cases := []struct {
		mask, text string
		want       bool
	}{
		{"*", "anything", true},
		{"*.example.org", "irc.example.org", true},
		{"*.example.org", "example.org", false},
		{"a?c", "abc", true},
		{"a?c", "ac", false},
		{"IRC.*", "irc.example.org", true},
		{"foo", "bar", false},
	}
	for _, c := range cases {
		got := MatchMask(c.mask, c.text)
		if got != c.want {
			t.Errorf("MatchMask(%q, %q) = %v, want %v", c.mask, c.text, got, c.want)
		}
	}
}

func TestBidirectionalMatch(t *testing.T) {
	if !bidirectionalMatch("*.example.org", "irc.example.org") {
		t.Error("expected pattern-on-left match")
	}
	if !bidirectionalMatch("irc.example.org", "*.example.org") {
		t.Error("expected pattern-on-right match")
	}
	if bidirectionalMatch("a.b", "c.d") {
		t.Error("expected no match")
	}
}
