package format

import (
	"fmt"
	"unicode/utf8"
	"unsafe"
)

// StringPool is the blob of null-terminated UTF-8 strings addressed by
// byte offset from StrRef values elsewhere in the database.
type StringPool struct {
	raw    []byte
	maxLen int // 0 means unlimited
}

// NewStringPool wraps the raw string-pool section. maxLen bounds how many
// bytes the resolver will scan before treating a missing terminator as
// corruption rather than scanning the rest of the file; 0 means unlimited.
func NewStringPool(raw []byte, maxLen int) StringPool {
	return StringPool{raw: raw, maxLen: maxLen}
}

// resolve validates ref and returns the raw run of string bytes (excluding
// the terminator), aliasing the pool's backing array. It panics if the
// offset is out of range, the terminator is missing (or not found within
// maxLen bytes), or the bytes are not valid UTF-8 — all of which indicate
// a corrupt, untrusted producer artifact rather than a recoverable query
// failure.
func (p StringPool) resolve(ref StrRef) []byte {
	offset := int(ref)
	if offset > len(p.raw) {
		panic(fmt.Sprintf("locdb: corrupt database: string pool offset %d > %d", offset, len(p.raw)))
	}
	rest := p.raw[offset:]
	if p.maxLen > 0 && len(rest) > p.maxLen {
		rest = rest[:p.maxLen]
	}
	nul := -1
	for i, b := range rest {
		if b == 0 {
			nul = i
			break
		}
	}
	if nul < 0 {
		panic(fmt.Sprintf("locdb: corrupt database: missing string terminator at offset %d", offset))
	}
	run := rest[:nul]
	if !utf8.Valid(run) {
		panic(fmt.Sprintf("locdb: corrupt database: invalid UTF-8 in string pool at offset %d", offset))
	}
	return run
}

// MustString resolves ref into an owned copy of the string, safe to retain
// past the lifetime of the underlying mapping.
func (p StringPool) MustString(ref StrRef) string {
	return string(p.resolve(ref))
}

// MustBorrowedString resolves ref into a string that aliases the pool's
// mapped memory without copying. The result must not be retained past the
// database being closed, since the backing mapping is unmapped on Close.
func (p StringPool) MustBorrowedString(ref StrRef) string {
	run := p.resolve(ref)
	if len(run) == 0 {
		return ""
	}
	return unsafe.String(&run[0], len(run))
}
