package ircdconf

// MeRecord is the singleton server identity record.
type MeRecord struct {
	Name    string // must contain '.'
	Info    string // <= InfoLength-1
	Numeric int    // [0,254]
}

// InfoLength bounds MeRecord.Info the way a daemon's REALLEN constant
// would: info must fit in InfoLength-1 bytes.
const InfoLength = 256
