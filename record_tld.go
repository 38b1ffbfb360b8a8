package ircdconf

import "time"

// TldRecord customizes the MOTD/rules shown to clients whose host matches
// HostMask. MotdCache/RulesCache hold the last-read file contents; MotdMtime
// is stamped on each (re-)read.
type TldRecord struct {
	HostMask   string
	MotdFile   string
	MotdCache  []string
	MotdMtime  time.Time
	RulesFile  string
	RulesCache []string
	Channel    string
	HasChannel bool
}
