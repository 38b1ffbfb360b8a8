package ircdconf

// OperRecord describes an IRC operator account.
type OperRecord struct {
	Name     string
	Auth     AuthDescriptor
	Class    *ClassRecord
	Flags    OperFlag
	Swhois   string
	HasSwhois bool
	Snomask  string
	HasSnomask bool
	UserHosts []string // "from" masks
}
