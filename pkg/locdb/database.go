// Package locdb reads IPFire location databases: memory-mapped, read-only
// files mapping IP networks to autonomous systems and countries via a
// binary radix trie.
package locdb

import (
	"errors"
	"io/fs"
	"net"
	"sort"
	"time"

	"github.com/ipfire-project/locdb/internal/format"
	"github.com/ipfire-project/locdb/internal/mmfile"
	"github.com/ipfire-project/locdb/internal/triewalk"
)

// ipv4MappedPrefix is ::ffff:0:0/96, the fixed prefix IPv4 addresses are
// embedded under within the unified trie.
var ipv4MappedPrefix = [12]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xff, 0xff}

// Database is an open, memory-mapped location database. The zero value is
// not usable; construct one with Open.
type Database struct {
	data    []byte
	cleanup func() error

	header       format.Header
	as           format.ASSection
	networks     format.NetworkSection
	networkNodes format.NetworkNodeSection
	countries    format.CountrySection
	strings      format.StringPool

	ipv4Root  uint32
	haveIPv4  bool
	maxStrLen int
}

// Open memory-maps the database file at path and validates its header and
// section bounds. It returns a typed *Error on any failure; the returned
// Database is otherwise ready for concurrent lookups from multiple
// goroutines.
func Open(path string, opts OpenOptions) (*Database, error) {
	data, cleanup, err := mmfile.Map(path, opts.Advise)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, newError(ErrOpen, path, err)
		}
		return nil, newError(ErrMmap, "failed to map "+path, err)
	}

	header, err := format.ParseHeader(data)
	if err != nil {
		if cerr := cleanup(); cerr != nil {
			_ = cerr
		}
		switch {
		case errors.Is(err, format.ErrTruncated):
			return nil, newError(ErrCouldntReadHeader, path, err)
		case errors.Is(err, format.ErrSignatureMismatch):
			return nil, newError(ErrInvalidMagic, path, err)
		default:
			return nil, newError(ErrUnsupportedVersion, path, err)
		}
	}

	asRaw, ok := format.Slice(data, header.AS, format.ASRecordSize)
	if !ok {
		_ = cleanup()
		return nil, newError(ErrInvalidASRange, path, nil)
	}
	networksRaw, ok := format.Slice(data, header.Networks, format.NetworkSize)
	if !ok {
		_ = cleanup()
		return nil, newError(ErrInvalidNetworkRange, path, nil)
	}
	networkNodesRaw, ok := format.Slice(data, header.NetworkNodes, format.NetworkNodeSize)
	if !ok {
		_ = cleanup()
		return nil, newError(ErrInvalidNetworkNodeRange, path, nil)
	}
	countriesRaw, ok := format.Slice(data, header.Countries, format.CountrySize)
	if !ok {
		_ = cleanup()
		return nil, newError(ErrInvalidCountryRange, path, nil)
	}
	stringPoolRaw, ok := format.Slice(data, header.StringPool, 0)
	if !ok {
		_ = cleanup()
		return nil, newError(ErrInvalidStringPoolRange, path, nil)
	}

	db := &Database{
		data:         data,
		cleanup:      cleanup,
		header:       header,
		as:           format.NewASSection(asRaw),
		networks:     format.NewNetworkSection(networksRaw),
		networkNodes: format.NewNetworkNodeSection(networkNodesRaw),
		countries:    format.NewCountrySection(countriesRaw),
		strings:      format.NewStringPool(stringPoolRaw, opts.MaxStringLength),
		maxStrLen:    opts.MaxStringLength,
	}

	if db.networkNodes.Len() > 0 {
		if root, ok := triewalk.FindNode(db.networkNodes, 0, ipv4MappedPrefix[:], 96); ok {
			db.ipv4Root = root
			db.haveIPv4 = true
		}
	}

	return db, nil
}

// Close unmaps the underlying file. The Database must not be used after
// Close returns.
func (db *Database) Close() error {
	return db.cleanup()
}

// CreatedAt returns when the database was built.
func (db *Database) CreatedAt() time.Time {
	return format.CreatedAt(db.header.CreatedAt)
}

// Vendor returns the database vendor string. By default the result
// aliases the database's mapped memory and must not be retained past
// Close; set opts.CopyStrings to get an independent copy.
func (db *Database) Vendor(opts ReadOptions) string {
	if opts.CopyStrings {
		return db.strings.MustString(db.header.Vendor)
	}
	return db.strings.MustBorrowedString(db.header.Vendor)
}

// Description returns the database's free-form description. See Vendor
// for the CopyStrings semantics.
func (db *Database) Description(opts ReadOptions) string {
	if opts.CopyStrings {
		return db.strings.MustString(db.header.Description)
	}
	return db.strings.MustBorrowedString(db.header.Description)
}

// License returns the database's license string. See Vendor for the
// CopyStrings semantics.
func (db *Database) License(opts ReadOptions) string {
	if opts.CopyStrings {
		return db.strings.MustString(db.header.License)
	}
	return db.strings.MustBorrowedString(db.header.License)
}

// As looks up an autonomous system by number via binary search over the
// as section, which the producer guarantees is sorted ascending by ASN.
func (db *Database) As(asn uint32) (As, bool) {
	n := db.as.Len()
	i := sort.Search(n, func(i int) bool { return db.as.At(i).ASN >= asn })
	if i >= n || db.as.At(i).ASN != asn {
		return As{}, false
	}
	rec := db.as.At(i)
	return As{ASN: rec.ASN, name: rec.Name, strs: db.strings}, true
}

// Country looks up a country by its ISO 3166-1 alpha-2 code via binary
// search over the countries section, which the producer guarantees is
// sorted ascending by code.
func (db *Database) Country(code string) (Country, bool) {
	if len(code) != 2 {
		return Country{}, false
	}
	target := [2]byte{code[0], code[1]}
	n := db.countries.Len()
	i := sort.Search(n, func(i int) bool { return countryCodeLess(target, db.countries.At(i).Code) <= 0 })
	if i >= n || db.countries.At(i).Code != target {
		return Country{}, false
	}
	rec := db.countries.At(i)
	return Country{
		Code:          string(rec.Code[:]),
		ContinentCode: string(rec.ContinentCode[:]),
		name:          rec.Name,
		strs:          db.strings,
	}, true
}

func countryCodeLess(a, b [2]byte) int {
	switch {
	case a == b:
		return 0
	case a[0] < b[0] || (a[0] == b[0] && a[1] < b[1]):
		return -1
	default:
		return 1
	}
}

// Lookup finds the network containing ip, dispatching to LookupV4 or
// LookupV6 based on whether ip carries a 4-byte form.
func (db *Database) Lookup(ip net.IP) (Network, bool) {
	if v4 := ip.To4(); v4 != nil {
		return db.LookupV4(v4)
	}
	return db.LookupV6(ip)
}

// LookupV4 finds the network containing a 4-byte IPv4 address.
func (db *Database) LookupV4(ip net.IP) (Network, bool) {
	v4 := ip.To4()
	if v4 == nil || !db.haveIPv4 {
		return Network{}, false
	}
	match, ok := triewalk.FindNetwork(db.networkNodes, db.ipv4Root, v4, 32)
	if !ok {
		return Network{}, false
	}
	mask := net.CIDRMask(match.Depth, 32)
	return db.buildNetwork(match, v4.Mask(mask), mask), true
}

// LookupV6 finds the network containing a 16-byte IPv6 address.
func (db *Database) LookupV6(ip net.IP) (Network, bool) {
	v6 := ip.To16()
	if v6 == nil || db.networkNodes.Len() == 0 {
		return Network{}, false
	}
	match, ok := triewalk.FindNetwork(db.networkNodes, 0, v6, 128)
	if !ok {
		return Network{}, false
	}
	mask := net.CIDRMask(match.Depth, 128)
	return db.buildNetwork(match, v6.Mask(mask), mask), true
}

func (db *Database) buildNetwork(match triewalk.Match, ip net.IP, mask net.IPMask) Network {
	rec := db.networks.At(int(match.Network))
	return Network{
		Network: net.IPNet{IP: ip, Mask: mask},
		record:  rec,
		db:      db,
	}
}
