package ircdconf

import "sort"

// directive pairs a top-level entry name with its validator and (optional)
// applier. include has a validator but no applier: the loader itself
// expands it during Load, before the validator ever walks the tree.
type directive struct {
	name     string
	validate func(e *ParseEntry, sink *ErrorSink)
	apply    func(e *ParseEntry, store *ConfigurationStore, sink *ErrorSink, conv AuthConverter)
}

// registry is kept alphabetized by name so lookupDirective can binary-search it;
// the init below verifies the ordering once at package load.
var registry = []directive{
	{"admin", validateAdmin, applyAdmin},
	{"alias", validateAlias, applyAlias},
	{"allow", validateAllow, applyAllow},
	{"ban", validateBan, applyBan},
	{"class", validateClass, applyClass},
	{"deny", validateDeny, applyDeny},
	{"drpass", validateDrpass, applyDrpass},
	{"except", validateExcept, applyExcept},
	{"help", validateHelp, applyHelp},
	{"include", validateInclude, nil},
	{"link", validateLink, applyLink},
	{"listen", validateListen, applyListen},
	{"log", validateLog, applyLog},
	{"me", validateMe, applyMe},
	{"oper", validateOper, applyOper},
	{"tld", validateTld, applyTld},
	{"ulines", validateUlines, applyUlines},
	{"vhost", validateVhost, applyVhost},
}

func init() {
	for i := 1; i < len(registry); i++ {
		if registry[i-1].name >= registry[i].name {
			panic("ircdconf: directive registry is not sorted: " + registry[i-1].name + " >= " + registry[i].name)
		}
	}
}

// lookupDirective returns the registered directive for name, or nil if
// name is unknown - in which case the caller reports a validation error
// and does not invoke apply.
func lookupDirective(name string) *directive {
	i := sort.Search(len(registry), func(i int) bool { return registry[i].name >= name })
	if i < len(registry) && registry[i].name == name {
		return &registry[i]
	}
	return nil
}
