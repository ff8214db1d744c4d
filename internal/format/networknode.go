package format

import "github.com/ipfire-project/locdb/internal/buf"

// NetworkNode is one node of the binary trie: two child indices (0 means
// "no edge") and an optional network record index (NoNetwork means "none").
type NetworkNode struct {
	Children [2]uint32
	Network  uint32
}

// HasNetwork reports whether this node carries a network record.
func (n NetworkNode) HasNetwork() bool { return n.Network != NoNetwork }

// NetworkNodeSection is a bounds-checked, typed view into the
// `network_nodes` section of a mapped database: the flat array backing the
// binary radix trie. Index 0 is always the trie root.
type NetworkNodeSection struct {
	raw []byte
}

// NewNetworkNodeSection wraps raw, which must already be validated to hold
// a whole number of NetworkNode records.
func NewNetworkNodeSection(raw []byte) NetworkNodeSection {
	return NetworkNodeSection{raw: raw}
}

// Len returns the number of nodes in the trie.
func (s NetworkNodeSection) Len() int {
	return len(s.raw) / NetworkNodeSize
}

// At decodes the node at index i, panicking on an out-of-range index
// (query-time corruption). Open validates only the section's range, not
// the child indices stored in it, so an out-of-range child index is caught
// here when the trie walker follows it.
func (s NetworkNodeSection) At(i uint32) NetworkNode {
	idx := int(i)
	if idx < 0 || idx >= s.Len() {
		panic(corruptIndex("network node", idx, s.Len()))
	}
	off := idx * NetworkNodeSize
	rec := s.raw[off : off+NetworkNodeSize]
	return NetworkNode{
		Children: [2]uint32{buf.U32BE(rec), buf.U32BE(rec[4:])},
		Network:  buf.U32BE(rec[8:]),
	}
}
