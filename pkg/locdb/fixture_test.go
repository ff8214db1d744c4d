package locdb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ipfire-project/locdb/internal/format"
)

// --- fixture construction -------------------------------------------------
//
// These helpers build a minimal, valid LOCDBXX file so tests and examples
// can exercise the package without a real, signed production database. The
// scenario mirrors a real one: Lightning Wire Labs GmbH's AS204867
// announcing 185.0.0.0/8 in Germany, with a more specific 185.0.1.0/24
// carved out and flagged anycast.

const fixtureCreatedAt = 1_700_000_000

type rawNode struct {
	child0, child1 uint32
	network        uint32
}

type trieBuilder struct {
	nodes []rawNode
}

func newTrieBuilder() *trieBuilder {
	return &trieBuilder{nodes: []rawNode{{network: format.NoNetwork}}}
}

// ensurePath walks bits from startIdx, creating nodes as needed, and
// returns the index of the final node.
func (b *trieBuilder) ensurePath(startIdx int, bits []int) int {
	cur := startIdx
	for _, bit := range bits {
		n := b.nodes[cur]
		var next uint32
		if bit == 0 {
			next = n.child0
		} else {
			next = n.child1
		}
		if next == 0 {
			b.nodes = append(b.nodes, rawNode{network: format.NoNetwork})
			next = uint32(len(b.nodes) - 1)
			if bit == 0 {
				b.nodes[cur].child0 = next
			} else {
				b.nodes[cur].child1 = next
			}
		}
		cur = int(next)
	}
	return cur
}

func (b *trieBuilder) insert(startIdx int, bits []int, networkIdx uint32) {
	idx := b.ensurePath(startIdx, bits)
	b.nodes[idx].network = networkIdx
}

func (b *trieBuilder) bytes() []byte {
	out := make([]byte, 0, len(b.nodes)*format.NetworkNodeSize)
	for _, n := range b.nodes {
		out = append(out, put32(n.child0)...)
		out = append(out, put32(n.child1)...)
		out = append(out, put32(n.network)...)
	}
	return out
}

func put32(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

func put16(v uint16) []byte {
	return []byte{byte(v >> 8), byte(v)}
}

func put64(v uint64) []byte {
	out := make([]byte, 8)
	for i := 0; i < 8; i++ {
		out[7-i] = byte(v >> (8 * i))
	}
	return out
}

func bitsOf(b byte) []int {
	bits := make([]int, 8)
	for i := 0; i < 8; i++ {
		bits[i] = int(b>>(7-i)) & 1
	}
	return bits
}

func ipv4Bits(a, b, c, d byte, prefixLen int) []int {
	all := append(bitsOf(a), append(bitsOf(b), append(bitsOf(c), bitsOf(d)...)...)...)
	return all[:prefixLen]
}

// buildFixtureBytes returns the raw bytes of a complete, valid LOCDBXX
// database with one AS, one country, and two nested IPv4 networks.
func buildFixtureBytes() []byte {
	var pool []byte
	intern := func(s string) format.StrRef {
		off := format.StrRef(len(pool))
		pool = append(pool, append([]byte(s), 0)...)
		return off
	}

	vendor := intern("IPFire Project")
	description := intern("Test location database")
	license := intern("CC0-1.0")
	asName := intern("Lightning Wire Labs GmbH")
	countryName := intern("Germany")

	// AS section: one record.
	asBytes := append(put32(204867), put32(uint32(asName))...)

	// Countries section: one record, code "DE", continent "EU".
	countryBytes := append([]byte("DE"), []byte("EU")...)
	countryBytes = append(countryBytes, put32(uint32(countryName))...)

	// Networks section: [0] 185.0.0.0/8 plain, [1] 185.0.1.0/24 anycast.
	networksBytes := append([]byte("DE"), 0, 0)
	networksBytes = append(networksBytes, put32(204867)...)
	networksBytes = append(networksBytes, put16(0)...)
	networksBytes = append(networksBytes, 0, 0)

	net1 := append([]byte("DE"), 0, 0)
	net1 = append(net1, put32(204867)...)
	net1 = append(net1, put16(format.NetworkFlagAnycast)...)
	net1 = append(net1, 0, 0)
	networksBytes = append(networksBytes, net1...)

	// Trie: locate the IPv4-mapped root, then insert both prefixes under it.
	ipv4MappedBits := make([]int, 96)
	for i := 80; i < 96; i++ {
		ipv4MappedBits[i] = 1
	}
	tb := newTrieBuilder()
	ipv4Root := tb.ensurePath(0, ipv4MappedBits)
	tb.insert(ipv4Root, ipv4Bits(185, 0, 0, 0, 8), 0)
	tb.insert(ipv4Root, ipv4Bits(185, 0, 1, 0, 24), 1)
	nodesBytes := tb.bytes()

	// Assemble the header, computing section offsets as we go.
	var body []byte
	asOff := format.HeaderSize
	body = append(body, asBytes...)
	netOff := format.HeaderSize + len(asBytes)
	body = append(body, networksBytes...)
	nodesOff := netOff + len(networksBytes)
	body = append(body, nodesBytes...)
	countriesOff := nodesOff + len(nodesBytes)
	body = append(body, countryBytes...)
	poolOff := countriesOff + len(countryBytes)
	body = append(body, pool...)

	header := make([]byte, format.HeaderSize)
	copy(header[0:7], format.Magic[:])
	header[7] = format.Version
	copy(header[8:16], put64(fixtureCreatedAt))
	copy(header[16:20], put32(uint32(vendor)))
	copy(header[20:24], put32(uint32(description)))
	copy(header[24:28], put32(uint32(license)))
	copy(header[28:32], put32(uint32(asOff)))
	copy(header[32:36], put32(uint32(len(asBytes))))
	copy(header[36:40], put32(uint32(netOff)))
	copy(header[40:44], put32(uint32(len(networksBytes))))
	copy(header[44:48], put32(uint32(nodesOff)))
	copy(header[48:52], put32(uint32(len(nodesBytes))))
	copy(header[52:56], put32(uint32(countriesOff)))
	copy(header[56:60], put32(uint32(len(countryBytes))))
	copy(header[60:64], put32(uint32(poolOff)))
	copy(header[64:68], put32(uint32(len(pool))))

	return append(header, body...)
}

// buildEmptyTrieFixtureBytes returns the raw bytes of an otherwise valid
// LOCDBXX database whose network and network-node sections are both
// empty, to exercise the empty-trie lookup boundary.
func buildEmptyTrieFixtureBytes() []byte {
	var pool []byte
	intern := func(s string) format.StrRef {
		off := format.StrRef(len(pool))
		pool = append(pool, append([]byte(s), 0)...)
		return off
	}

	vendor := intern("IPFire Project")
	description := intern("Test location database")
	license := intern("CC0-1.0")

	var body []byte
	asOff := format.HeaderSize
	netOff := asOff
	nodesOff := netOff
	countriesOff := nodesOff
	poolOff := countriesOff
	body = append(body, pool...)

	header := make([]byte, format.HeaderSize)
	copy(header[0:7], format.Magic[:])
	header[7] = format.Version
	copy(header[8:16], put64(fixtureCreatedAt))
	copy(header[16:20], put32(uint32(vendor)))
	copy(header[20:24], put32(uint32(description)))
	copy(header[24:28], put32(uint32(license)))
	copy(header[28:32], put32(uint32(asOff)))
	copy(header[32:36], put32(0))
	copy(header[36:40], put32(uint32(netOff)))
	copy(header[40:44], put32(0))
	copy(header[44:48], put32(uint32(nodesOff)))
	copy(header[48:52], put32(0))
	copy(header[52:56], put32(uint32(countriesOff)))
	copy(header[56:60], put32(0))
	copy(header[60:64], put32(uint32(poolOff)))
	copy(header[64:68], put32(uint32(len(pool))))

	return append(header, body...)
}

// buildEmptyTrieFixture writes buildEmptyTrieFixtureBytes to a temp file
// scoped to t and returns its path.
func buildEmptyTrieFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.db")
	if err := os.WriteFile(path, buildEmptyTrieFixtureBytes(), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

// buildFixture writes buildFixtureBytes to a temp file scoped to t and
// returns its path.
func buildFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "location.db")
	if err := os.WriteFile(path, buildFixtureBytes(), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

// writeFixtureFile writes buildFixtureBytes to a file under dir, for use
// from Example functions that have no *testing.T.
func writeFixtureFile(dir string) (string, error) {
	path := filepath.Join(dir, "location.db")
	return path, os.WriteFile(path, buildFixtureBytes(), 0o644)
}
