package ircdconf

var tklSubKindNames = map[string]TKLSubKind{
	"gline":  TKLKill | TKLGlobal,
	"gzline": TKLZap | TKLGlobal,
	"shun":   TKLShun | TKLGlobal,
	"tkline": TKLKill | TKLLocal,
	"tzline": TKLZap | TKLLocal,
}

func validateExcept(e *ParseEntry, sink *ErrorSink) {
	value, ok := requireScalar(e, "except", sink)
	if !ok {
		return
	}
	switch value {
	case "ban", "scan":
		if len(e.FindAll("mask")) == 0 {
			sink.Error(e.filename(), e.NameLine, "except %s requires at least one mask", value)
		}
		warnUnknownChildren(e, map[string]bool{"mask": true}, sink)
	case "tkl":
		if len(e.FindAll("mask")) == 0 {
			sink.Error(e.filename(), e.NameLine, "except tkl requires mask")
		}
		typ, tok := requireChildValue(e, "type", sink)
		if tok {
			if _, known := tklSubKindNames[typ]; !known {
				sink.Error(e.filename(), e.NameLine, "except tkl: unknown type %q", typ)
			}
		}
		warnUnknownChildren(e, map[string]bool{"mask": true, "type": true}, sink)
	default:
		sink.Error(e.filename(), e.NameLine, "except: unknown kind %q", value)
	}
}

func applyExcept(e *ParseEntry, store *ConfigurationStore, sink *ErrorSink, conv AuthConverter) {
	var kind ExceptKind
	switch e.Value {
	case "ban":
		kind = ExceptBan
	case "scan":
		kind = ExceptScan
	case "tkl":
		kind = ExceptTKL
	default:
		return
	}
	var subkind TKLSubKind
	if kind == ExceptTKL {
		if c := e.Find("type"); c != nil {
			subkind = tklSubKindNames[c.Value]
		}
	}
	for _, m := range e.FindAll("mask") {
		if !m.HasValue {
			continue
		}
		rec := &ExceptRecord{Mask: m.Value, Kind: kind, SubKind: subkind}
		store.withWriteLock(func() {
			store.Excepts = append(store.Excepts, rec)
		})
	}
}
