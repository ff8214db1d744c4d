package format

import "github.com/ipfire-project/locdb/internal/buf"

// AS is a decoded autonomous-system record. The array holding these is
// sorted ascending by ASN, enabling binary search.
type AS struct {
	ASN  uint32
	Name StrRef
}

// ASSection is a bounds-checked, typed view into the `as` section of a
// mapped database.
type ASSection struct {
	raw []byte
}

// NewASSection wraps raw, which must already be validated to hold a whole
// number of AS records.
func NewASSection(raw []byte) ASSection {
	return ASSection{raw: raw}
}

// Len returns the number of AS records in the section.
func (s ASSection) Len() int {
	return len(s.raw) / ASRecordSize
}

// At decodes the record at index i. It panics if i is out of range: the
// index space is validated once at open time (section length is a multiple
// of the record size), so an out-of-range index here indicates a corrupt
// database rather than a recoverable query failure.
func (s ASSection) At(i int) AS {
	if i < 0 || i >= s.Len() {
		panic(corruptIndex("as", i, s.Len()))
	}
	off := i * ASRecordSize
	rec := s.raw[off : off+ASRecordSize]
	return AS{
		ASN:  buf.U32BE(rec),
		Name: StrRef(buf.U32BE(rec[4:])),
	}
}
