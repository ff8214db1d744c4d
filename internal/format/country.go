package format

import "github.com/ipfire-project/locdb/internal/buf"

// Country is a decoded country record. The array holding these is sorted
// ascending by Code, enabling binary search.
type Country struct {
	Code          [2]byte
	ContinentCode [2]byte
	Name          StrRef
}

// CountrySection is a bounds-checked, typed view into the `countries`
// section of a mapped database.
type CountrySection struct {
	raw []byte
}

// NewCountrySection wraps raw, which must already be validated to hold a
// whole number of Country records.
func NewCountrySection(raw []byte) CountrySection {
	return CountrySection{raw: raw}
}

// Len returns the number of country records in the section.
func (s CountrySection) Len() int {
	return len(s.raw) / CountrySize
}

// At decodes the record at index i, panicking on an out-of-range index
// (query-time corruption).
func (s CountrySection) At(i int) Country {
	if i < 0 || i >= s.Len() {
		panic(corruptIndex("country", i, s.Len()))
	}
	off := i * CountrySize
	rec := s.raw[off : off+CountrySize]
	return Country{
		Code:          [2]byte{rec[0], rec[1]},
		ContinentCode: [2]byte{rec[2], rec[3]},
		Name:          StrRef(buf.U32BE(rec[4:])),
	}
}
