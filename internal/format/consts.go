// Package format decodes the on-disk LOCDBXX binary layout: a fixed header
// followed by five fixed-record sections and a string pool, all big-endian
// and packed with no implicit padding beyond what is declared.
package format

// Magic is the 7-byte signature every database file must start with.
var Magic = [7]byte{'L', 'O', 'C', 'D', 'B', 'X', 'X'}

// Version is the only database version this package understands.
const Version = 1

// Byte sizes of each fixed-width record type.
const (
	StrRefSize      = 4
	FileRangeSize   = 8
	ASRecordSize    = 8
	NetworkSize     = 12
	NetworkNodeSize = 12
	CountrySize     = 8

	signatureBufSize = 2048
	paddingSize      = 32
)

// Header field offsets, relative to the start of the file.
const (
	offMagic            = 0
	offVersion          = 7
	offCreatedAt        = 8
	offVendor           = 16
	offDescription      = 20
	offLicense          = 24
	offAS               = 28
	offNetworks         = offAS + FileRangeSize
	offNetworkNodes     = offNetworks + FileRangeSize
	offCountries        = offNetworkNodes + FileRangeSize
	offStringPool       = offCountries + FileRangeSize
	offSignature1Length = offStringPool + FileRangeSize
	offSignature2Length = offSignature1Length + 2
	offSignature1Buf    = offSignature2Length + 2
	offSignature2Buf    = offSignature1Buf + signatureBufSize
	offPadding          = offSignature2Buf + signatureBufSize
)

// HeaderSize is the total on-disk size of the fixed header.
const HeaderSize = offPadding + paddingSize

// Network flag bits (format.Network.Flags).
const (
	NetworkFlagAnonymousProxy   uint16 = 1 << 0
	NetworkFlagSatelliteProvider uint16 = 1 << 1
	NetworkFlagAnycast          uint16 = 1 << 2
	NetworkFlagDrop             uint16 = 1 << 3
)

// NoNetwork is the sentinel NetworkNode.Network value meaning "no network
// record at this node".
const NoNetwork uint32 = 0xFFFFFFFF
