// Package triewalk performs longest-prefix-match descent over the binary
// radix trie stored in a LOCDBXX database's network-node array.
//
// The trie unifies IPv4 and IPv6 address space: node index 0 is always the
// root of the full 128-bit IPv6 trie, and an IPv4-mapped subtree root is
// located once (at database open time) by descending the constant 96-bit
// ::ffff:0:0/96 prefix from the root; see FindNode.
//
// The reference C/Rust implementations of this trie pre-reverse the
// address into a u128 register so the current bit is always bit 0,
// shifting right after each step — an optimization specific to emulating a
// 128-bit integer. Go has no native 128-bit integer, so this package
// instead reads bits directly, most-significant-first, out of the
// address's big-endian byte representation; the two approaches visit the
// same nodes in the same order.
package triewalk

import "github.com/ipfire-project/locdb/internal/format"

// bitAt returns bit i of addr, counting from the most significant bit of
// addr[0].
func bitAt(addr []byte, i int) uint32 {
	b := addr[i/8]
	shift := uint(7 - i%8)
	return uint32(b>>shift) & 1
}

// Match is the result of a successful longest-prefix-match descent: the
// number of address bits consumed down to the matching node, and the index
// of its network record.
type Match struct {
	Depth   int
	Network uint32
}

// FindNetwork walks the trie starting at root, consuming up to numBits bits
// of addr (most-significant first), and returns the deepest node on the
// path that carried a network record. A deeper match always supersedes a
// shallower one, including the node the walk dead-ends at.
func FindNetwork(nodes format.NetworkNodeSection, root uint32, addr []byte, numBits int) (Match, bool) {
	used := 0
	cur := root
	var last Match
	var haveLast bool

	for step := 0; step < numBits; step++ {
		node := nodes.At(cur)
		bit := bitAt(addr, step)
		child := node.Children[bit]
		if child == 0 {
			break
		}
		if node.HasNetwork() {
			last = Match{Depth: used, Network: node.Network}
			haveLast = true
		}
		cur = child
		used++
	}

	if node := nodes.At(cur); node.HasNetwork() {
		last = Match{Depth: used, Network: node.Network}
		haveLast = true
	}
	return last, haveLast
}

// FindNode performs the same descent as FindNetwork but without tracking
// networks, returning only the node reached. It returns false if a
// dead-end was hit before consuming all of numBits. This is used exclusively
// at open time to locate the IPv4-mapped subtree root.
func FindNode(nodes format.NetworkNodeSection, root uint32, addr []byte, numBits int) (uint32, bool) {
	cur := root
	for step := 0; step < numBits; step++ {
		node := nodes.At(cur)
		bit := bitAt(addr, step)
		cur = node.Children[bit]
		if cur == 0 {
			return 0, false
		}
	}
	return cur, true
}
