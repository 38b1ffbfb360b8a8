package ircdconf

import "sync"

// ConfigurationStore is the process-wide configuration state: one typed,
// ordered list per record kind, plus a couple of singletons (resolver-
// adjacent state lives in the resolvconf package instead). It is the single
// encapsulation of what would otherwise be a pile of global mutable state,
// with explicit init, replace-in-place, and query operations. Mutation only
// happens from the committer; readers may assume stability between
// commits.
type ConfigurationStore struct {
	mu sync.RWMutex

	Me *MeRecord

	Classes        []*ClassRecord
	Opers          []*OperRecord
	Listeners      []*ListenerRecord
	Allows         []*AllowRecord
	AllowChannels  []*AllowChannelRecord
	Excepts        []*ExceptRecord
	Tlds           []*TldRecord
	Ulines         []*UlineRecord
	Admin          *AdminRecord
	Drpass         *DrpassRecord
	Vhosts         []*VhostRecord
	Links          []*LinkRecord
	Bans           []*BanRecord
	DenyChannels   []*DenyChannelRecord
	DenyDccs       []*DenyDccRecord
	DenyVersions   []*DenyVersionRecord
	DenyLinks      []*DenyLinkRecord
	Logs           []*LogRecord
	Aliases        []*AliasRecord
	Helps          []*HelpRecord
	Includes       []*IncludeRecord
}

// NewConfigurationStore returns an empty store ready for an initial
// commit.
func NewConfigurationStore() *ConfigurationStore {
	return &ConfigurationStore{}
}

// withWriteLock runs fn while holding the store's write lock; used
// internally by the committer (directive_*.go) to serialize appends/updates.
// The config engine itself runs single-threaded, but external readers
// (Find* callers on other goroutines of the embedding daemon) do not, so
// the lock is real rather than vestigial.
func (s *ConfigurationStore) withWriteLock(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

func (s *ConfigurationStore) withReadLock(fn func()) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn()
}

// snapshotCounts reports the size of every record list, for the store's
// expvar (vars.go) and for tests asserting rehash atomicity.
func (s *ConfigurationStore) snapshotCounts() map[string]int {
	var out map[string]int
	s.withReadLock(func() {
		out = map[string]int{
			"classes":       len(s.Classes),
			"opers":         len(s.Opers),
			"listeners":     len(s.Listeners),
			"allows":        len(s.Allows),
			"allowchannels": len(s.AllowChannels),
			"excepts":       len(s.Excepts),
			"tlds":          len(s.Tlds),
			"ulines":        len(s.Ulines),
			"vhosts":        len(s.Vhosts),
			"links":         len(s.Links),
			"bans":          len(s.Bans),
			"denychannels":  len(s.DenyChannels),
			"denydccs":      len(s.DenyDccs),
			"denyversions":  len(s.DenyVersions),
			"denylinks":     len(s.DenyLinks),
			"logs":          len(s.Logs),
			"aliases":       len(s.Aliases),
			"helps":         len(s.Helps),
		}
	})
	return out
}
