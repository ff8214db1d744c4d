package locdb

// OpenOptions configures Open.
type OpenOptions struct {
	// Advise, when true, hints to the kernel that access to the mapped
	// file will be random rather than sequential (MADV_RANDOM), which
	// suits the pointer-chasing trie lookups this package performs. It has
	// no effect on platforms without madvise support.
	Advise bool

	// MaxStringLength caps how many bytes every string-pool lookup (copied
	// or borrowed) will scan looking for a null terminator before treating the database as
	// corrupt. Zero means unlimited.
	MaxStringLength int
}

// ReadOptions configures an individual lookup call.
type ReadOptions struct {
	// CopyStrings, when true, makes returned strings (AS names, country
	// names, vendor/description/license) independent copies rather than
	// views that alias the underlying memory mapping. Callers that retain
	// results past the database's lifetime, or across a call to Close,
	// need this.
	CopyStrings bool
}
