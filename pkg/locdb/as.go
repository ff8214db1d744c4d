package locdb

import "github.com/ipfire-project/locdb/internal/format"

// As describes an autonomous system.
type As struct {
	ASN uint32

	name format.StrRef
	strs format.StringPool
}

// Name returns the AS's name, resolved from the string pool. By default
// the result aliases the database's mapped memory and must not be
// retained past Close; set opts.CopyStrings to get an independent copy.
func (a As) Name(opts ReadOptions) string {
	if opts.CopyStrings {
		return a.strs.MustString(a.name)
	}
	return a.strs.MustBorrowedString(a.name)
}
