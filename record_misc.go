package ircdconf

// UlineRecord names a trusted peer server permitted to issue privileged
// remote commands.
type UlineRecord struct {
	Server string
}

// AdminRecord holds the ordered lines of the "admin" block.
type AdminRecord struct {
	Lines []string
}

// DrpassRecord holds the die/restart passwords.
type DrpassRecord struct {
	Restart    AuthDescriptor
	HasRestart bool
	Die        AuthDescriptor
	HasDie     bool
}

// VhostRecord grants a virtual host to a user authenticating with Login.
// Login is the keyed identity for commit updates.
type VhostRecord struct {
	VirtualUser string
	HasUser     bool
	VirtualHost string
	Login       string
	Auth        AuthDescriptor
	UserHosts   []string
	Swhois      string
	HasSwhois   bool
}

// LinkRecord describes one configured server link.
type LinkRecord struct {
	ServerName string
	Username   string
	Hostname   string
	BindIP     string
	HasBindIP  bool
	Password   string
	HasPassword bool
	RecvAuth   AuthDescriptor
	HubMask    string
	HasHubMask bool
	LeafMask   string
	HasLeafMask bool
	Port       int
	Flags      LinkFlag
	Class      *ClassRecord
	Ciphers    string
	HasCiphers bool
}

// BanRecord is a mask-based ban entry.
type BanRecord struct {
	Mask    string
	Reason  string
	Kind    ExceptKind // reuses ExceptKind's {ban,scan,tkl} vocabulary
	SubKind TKLSubKind
	HasSubKind bool
}

// DenyChannelRecord blocks a channel mask unless an AllowChannelRecord
// overrides it.
type DenyChannelRecord struct {
	ChannelMask string
}

// DenyDccRecord blocks a DCC file-offer whose filename matches Mask.
type DenyDccRecord struct {
	Mask string
}

// DenyVersionRecord blocks clients whose CTCP VERSION reply matches Mask.
type DenyVersionRecord struct {
	Mask          string
	VersionMask   string
	HasVersion    bool
	FlagsMask     string
	HasFlagsMask  bool
}

// DenyLinkRecord blocks an outgoing/incoming server link whose name
// matches Mask.
type DenyLinkRecord struct {
	Mask string
	Rule string
	HasRule bool
}

// LogRecord directs diagnostics matching Flags to Path.
type LogRecord struct {
	Path  string
	Flags LogFlag
}

// AliasRecord maps a client-facing command alias to its target. Resolution
// of the target is out of scope; this package only records the mapping for
// find_alias.
type AliasRecord struct {
	Alias  string
	Target string
}

// HelpRecord is an opaque named help-text block.
type HelpRecord struct {
	Name string
	Body []string
}

// IncludeRecord records a successfully expanded include directive for
// diagnostic/introspection purposes; the actual inclusion happens in the
// loader.
type IncludeRecord struct {
	Pattern string
	Files   []string
}
