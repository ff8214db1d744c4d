package format

import "github.com/ipfire-project/locdb/internal/buf"

// Network is a decoded network record: the country/AS/flag metadata
// attached to a trie node.
type Network struct {
	CountryCode [2]byte
	ASN         uint32
	Flags       uint16
}

// IsAnonymousProxy reports the ANONYMOUS_PROXY flag bit.
func (n Network) IsAnonymousProxy() bool { return n.Flags&NetworkFlagAnonymousProxy != 0 }

// IsSatelliteProvider reports the SATELLITE_PROVIDER flag bit.
func (n Network) IsSatelliteProvider() bool { return n.Flags&NetworkFlagSatelliteProvider != 0 }

// IsAnycast reports the ANYCAST flag bit.
func (n Network) IsAnycast() bool { return n.Flags&NetworkFlagAnycast != 0 }

// IsDrop reports the DROP flag bit. Its firewall semantics are not
// interpreted here; this predicate surfaces the bit
// verbatim.
func (n Network) IsDrop() bool { return n.Flags&NetworkFlagDrop != 0 }

// NetworkSection is a bounds-checked, typed view into the `networks`
// section of a mapped database.
type NetworkSection struct {
	raw []byte
}

// NewNetworkSection wraps raw, which must already be validated to hold a
// whole number of Network records.
func NewNetworkSection(raw []byte) NetworkSection {
	return NetworkSection{raw: raw}
}

// Len returns the number of network records in the section.
func (s NetworkSection) Len() int {
	return len(s.raw) / NetworkSize
}

// At decodes the record at index i, panicking on an out-of-range index
// (query-time corruption).
func (s NetworkSection) At(i int) Network {
	if i < 0 || i >= s.Len() {
		panic(corruptIndex("network", i, s.Len()))
	}
	off := i * NetworkSize
	rec := s.raw[off : off+NetworkSize]
	return Network{
		CountryCode: [2]byte{rec[0], rec[1]},
		// rec[2:4] is declared padding.
		ASN:   buf.U32BE(rec[4:]),
		Flags: buf.U16BE(rec[8:]),
		// rec[10:12] is declared padding.
	}
}
