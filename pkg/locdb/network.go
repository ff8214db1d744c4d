package locdb

import (
	"fmt"
	"net"

	"github.com/ipfire-project/locdb/internal/format"
)

// Network describes the trie node that matched a lookup: the network's
// CIDR prefix plus the country/AS/flag metadata attached to it.
type Network struct {
	Network net.IPNet
	record  format.Network
	db      *Database
}

// CountryCode returns the ISO 3166-1 alpha-2 code attached to the match,
// verbatim and uninterpreted. "XX" is the producer's sentinel for unknown;
// this accessor returns it unchanged, like every other value.
func (n Network) CountryCode() string {
	return string(n.record.CountryCode[:])
}

// ASN returns the autonomous system number attached to the match, or 0 if
// none was set.
func (n Network) ASN() uint32 { return n.record.ASN }

// IsAnonymousProxy reports the ANONYMOUS_PROXY flag.
func (n Network) IsAnonymousProxy() bool { return n.record.IsAnonymousProxy() }

// IsSatelliteProvider reports the SATELLITE_PROVIDER flag.
func (n Network) IsSatelliteProvider() bool { return n.record.IsSatelliteProvider() }

// IsAnycast reports the ANYCAST flag.
func (n Network) IsAnycast() bool { return n.record.IsAnycast() }

// IsDrop reports the DROP flag, verbatim and uninterpreted.
func (n Network) IsDrop() bool { return n.record.IsDrop() }

// String renders the network the way the reference CLI tool does:
// "<cidr> <asn-or-blank> <as-name-or-unknown> <country>".
func (n Network) String(opts ReadOptions) string {
	asLine := "AS name unknown"
	if n.ASN() != 0 {
		if as, ok := n.db.As(n.ASN()); ok {
			asLine = fmt.Sprintf("AS%d %s", as.ASN, as.Name(opts))
		} else {
			asLine = fmt.Sprintf("AS%d AS name unknown", n.ASN())
		}
	}
	country := "unknown"
	if n.record.CountryCode != ([2]byte{}) {
		cc := n.CountryCode()
		if c, ok := n.db.Country(cc); ok {
			country = fmt.Sprintf("%s: %s", c.Code, c.Name(opts))
		} else {
			country = cc
		}
	}
	return fmt.Sprintf("%s %s %s", n.Network.String(), asLine, country)
}
