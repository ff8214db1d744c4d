package locdb

import "github.com/ipfire-project/locdb/internal/format"

// Country describes a country entry.
type Country struct {
	Code          string
	ContinentCode string

	name format.StrRef
	strs format.StringPool
}

// Name returns the country's name, resolved from the string pool. By
// default the result aliases the database's mapped memory and must not be
// retained past Close; set opts.CopyStrings to get an independent copy.
func (c Country) Name(opts ReadOptions) string {
	if opts.CopyStrings {
		return c.strs.MustString(c.name)
	}
	return c.strs.MustBorrowedString(c.name)
}
