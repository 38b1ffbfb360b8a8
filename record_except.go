package ircdconf

// ExceptKind identifies which list an ExceptRecord overrides.
type ExceptKind int

const (
	ExceptBan ExceptKind = iota
	ExceptScan
	ExceptTKL
)

// TKLSubKind is a bitmask of TKL kinds an "except tkl" record covers:
// gline, gzline, shun, tkline, tzline.
type TKLSubKind uint32

const (
	TKLKill TKLSubKind = 1 << iota
	TKLZap
	TKLShun
	TKLLocal
	TKLGlobal
)

// ExceptRecord is a mask that overrides a ban/scan/TKL check.
type ExceptRecord struct {
	Mask    string
	Kind    ExceptKind
	SubKind TKLSubKind // meaningful only when Kind == ExceptTKL
}
