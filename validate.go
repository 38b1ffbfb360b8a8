package ircdconf

import "strings"

// Validate walks every top-level entry of every parsed file and invokes
// its registered validator. It returns true iff sink accumulated zero
// errors, the sole condition under which Commit may run.
func Validate(files *ParseFile, sink *ErrorSink) bool {
	for f := files; f != nil; f = f.Next {
		for _, e := range f.Entries {
			d := lookupDirective(e.Name)
			if d == nil {
				sink.Error(e.filename(), e.NameLine, "unknown directive %q", e.Name)
				continue
			}
			d.validate(e, sink)
		}
	}
	return sink.OK()
}

// requireScalar reports a missing-value error unless e has a scalar
// value, and returns it.
func requireScalar(e *ParseEntry, what string, sink *ErrorSink) (string, bool) {
	if !e.HasValue || e.Value == "" {
		sink.Error(e.filename(), e.NameLine, "%s requires a value", what)
		return "", false
	}
	return e.Value, true
}

// requireChild reports an error if e has no child named childName and
// returns (nil, false); otherwise it returns the first such child.
func requireChild(e *ParseEntry, childName string, sink *ErrorSink) (*ParseEntry, bool) {
	c := e.Find(childName)
	if c == nil {
		sink.Error(e.filename(), e.NameLine, "%s requires %q", e.Name, childName)
		return nil, false
	}
	return c, true
}

// requireChildValue is requireChild followed by requireScalar.
func requireChildValue(e *ParseEntry, childName string, sink *ErrorSink) (string, bool) {
	c, ok := requireChild(e, childName, sink)
	if !ok {
		return "", false
	}
	return requireScalar(c, e.Name+"::"+childName, sink)
}

// rejectBlankName reports an error if e.Name is empty.
func rejectBlankName(e *ParseEntry, sink *ErrorSink) bool {
	if strings.TrimSpace(e.Name) == "" {
		sink.Error(e.filename(), e.NameLine, "blank directive name")
		return false
	}
	return true
}

// rejectDuplicateScalarChildren reports a status (not an error) for every
// occurrence of childName beyond the first: duplicate scalars where the
// grammar expects a single one are tolerated, with later ones ignored.
func rejectDuplicateScalarChildren(e *ParseEntry, childName string, sink *ErrorSink) {
	all := e.FindAll(childName)
	for _, dup := range all[1:] {
		sink.Status(dup.filename(), dup.NameLine, "%s::%s: duplicate value ignored", e.Name, childName)
	}
}

// warnUnknownChildren reports a status message for every child of e whose
// name is not in allowed.
func warnUnknownChildren(e *ParseEntry, allowed map[string]bool, sink *ErrorSink) {
	for _, c := range e.Children {
		if !allowed[c.Name] {
			sink.Status(c.filename(), c.NameLine, "%s: unknown child %q ignored", e.Name, c.Name)
		}
	}
}

// parseIntValue parses s as a base-10 integer, reporting a validation
// error against e if it is not one.
func parseIntValue(e *ParseEntry, what string, s string, sink *ErrorSink) (int, bool) {
	n, ok := atoiStrict(s)
	if !ok {
		sink.Error(e.filename(), e.NameLine, "%s: %q is not a valid integer", what, s)
		return 0, false
	}
	return n, true
}

// atoiStrict parses a signed base-10 integer.
func atoiStrict(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	neg := false
	i := 0
	if s[0] == '-' {
		neg = true
		i = 1
	}
	if i == len(s) {
		return 0, false
	}
	n := 0
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		n = -n
	}
	return n, true
}
