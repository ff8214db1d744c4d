package format

import (
	"bytes"
	"fmt"

	"github.com/ipfire-project/locdb/internal/buf"
)

// StrRef is a byte offset into the string pool.
type StrRef uint32

// FileRange is an (offset, length) pair locating a section within the file.
type FileRange struct {
	Offset uint32
	Length uint32
}

// Header captures every field of the fixed LOCDBXX header.
//
//	Offset  Size  Field
//	------  ----  -----------------------------------
//	 0x0000   7    magic ("LOCDBXX")
//	 0x0007   1    version
//	 0x0008   8    created_at (unix seconds)
//	 0x0010   4    vendor (string pool offset)
//	 0x0014   4    description (string pool offset)
//	 0x0018   4    license (string pool offset)
//	 0x001C   8    as (offset, length)
//	 0x0024   8    networks (offset, length)
//	 0x002C   8    network_nodes (offset, length)
//	 0x0034   8    countries (offset, length)
//	 0x003C   8    string_pool (offset, length)
//	 0x0044   2    signature1_length
//	 0x0046   2    signature2_length
//	 0x0048 2048   signature1_buf
//	 0x0848 2048   signature2_buf
//	 0x1048   32   padding
type Header struct {
	Version          uint8
	CreatedAt        uint64
	Vendor           StrRef
	Description      StrRef
	License          StrRef
	AS               FileRange
	Networks         FileRange
	NetworkNodes     FileRange
	Countries        FileRange
	StringPool       FileRange
	Signature1Length uint16
	Signature2Length uint16
	Signature1       []byte
	Signature2       []byte
}

// ParseHeader validates the magic and version and decodes the fixed header
// fields. Signature payload bytes are sliced out but never verified:
// signature verification is out of scope for this reader.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("header: %w", ErrTruncated)
	}
	if !bytes.Equal(data[offMagic:offMagic+len(Magic)], Magic[:]) {
		return Header{}, ErrSignatureMismatch
	}
	version := data[offVersion]
	if version != Version {
		return Header{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	h := Header{
		Version:          version,
		CreatedAt:        buf.U64BE(data[offCreatedAt:]),
		Vendor:           StrRef(buf.U32BE(data[offVendor:])),
		Description:      StrRef(buf.U32BE(data[offDescription:])),
		License:          StrRef(buf.U32BE(data[offLicense:])),
		AS:               readFileRange(data[offAS:]),
		Networks:         readFileRange(data[offNetworks:]),
		NetworkNodes:     readFileRange(data[offNetworkNodes:]),
		Countries:        readFileRange(data[offCountries:]),
		StringPool:       readFileRange(data[offStringPool:]),
		Signature1Length: buf.U16BE(data[offSignature1Length:]),
		Signature2Length: buf.U16BE(data[offSignature2Length:]),
	}
	h.Signature1 = data[offSignature1Buf : offSignature1Buf+signatureBufSize]
	h.Signature2 = data[offSignature2Buf : offSignature2Buf+signatureBufSize]
	return h, nil
}

func readFileRange(b []byte) FileRange {
	return FileRange{
		Offset: buf.U32BE(b),
		Length: buf.U32BE(b[4:]),
	}
}

// Slice resolves a FileRange against data, requiring the range to lie
// entirely inside data and, when recordSize > 0, the length to be an exact
// multiple of recordSize.
func Slice(data []byte, r FileRange, recordSize int) ([]byte, bool) {
	if recordSize > 0 && r.Length%uint32(recordSize) != 0 {
		return nil, false
	}
	return buf.Slice(data, int(r.Offset), int(r.Length))
}
