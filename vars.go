package ircdconf

import (
	"expvar"
	"fmt"
)

// Get an *expvar.Int with the given path.
func getVarInt(base string, id string, name string) *expvar.Int {
	fullname := fmt.Sprintf("ircdconf.%s.%s.%s", base, id, name)
	if v := expvar.Get(fullname); v != nil {
		return v.(*expvar.Int)
	}
	return expvar.NewInt(fullname)
}

// Get an *expvar.Map with the given path.
func getVarMap(base string, id string, name string) *expvar.Map {
	fullname := fmt.Sprintf("ircdconf.%s.%s.%s", base, id, name)
	if v := expvar.Get(fullname); v != nil {
		return v.(*expvar.Map)
	}
	return expvar.NewMap(fullname)
}

// loadVars tracks load/commit counters. files and entries are keyed by the
// path of each loaded file; errors, warnings and commits by the root
// config path.
var loadVars = struct {
	files   func(id string) *expvar.Int
	entries func(id string) *expvar.Int
	errors  func(id string) *expvar.Int
	warns   func(id string) *expvar.Int
	commits func(id string) *expvar.Int
}{
	files:   func(id string) *expvar.Int { return getVarInt("load", id, "files") },
	entries: func(id string) *expvar.Int { return getVarInt("load", id, "entries") },
	errors:  func(id string) *expvar.Int { return getVarInt("load", id, "errors") },
	warns:   func(id string) *expvar.Int { return getVarInt("load", id, "warnings") },
	commits: func(id string) *expvar.Int { return getVarInt("load", id, "commits") },
}

// storeVars tracks the size of each record list in a ConfigurationStore.
func storeVars(id string) *expvar.Map {
	return getVarMap("store", id, "records")
}
