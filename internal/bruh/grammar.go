package bruh

import (
	"encoding/binary"
	"fmt"
)

const (
	// HeaderSize is the size in bytes of the width/height prefix.
	HeaderSize = 8

	// TokenSize is the number of hex characters encoding one pixel.
	TokenSize = 6

	// RowDelimiter separates consecutive rows in the body.
	RowDelimiter = '\n'

	// FileExtension is the conventional extension of BRUH documents.
	FileExtension = ".bruh"
)

const hexDigits = "0123456789abcdef"

// invalidNibble marks bytes that are not hex digits in nibbleTable.
const invalidNibble = 0xff

var nibbleTable = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = invalidNibble
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = byte(c - '0')
	}
	for c := 'a'; c <= 'f'; c++ {
		t[c] = byte(c-'a') + 10
		t[c-'a'+'A'] = byte(c-'a') + 10
	}
	return t
}()

// Header is the fixed-size prefix of a BRUH document.
type Header struct {
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
}

// Pixels returns Width*Height without overflowing.
func (h Header) Pixels() uint64 {
	return uint64(h.Width) * uint64(h.Height)
}

// PutHeader writes h into the first HeaderSize bytes of b.
// It panics if b is shorter than HeaderSize, like binary.LittleEndian.PutUint32.
func PutHeader(b []byte, h Header) {
	binary.LittleEndian.PutUint32(b[0:4], h.Width)
	binary.LittleEndian.PutUint32(b[4:8], h.Height)
}

// ParseHeader reads the width and height prefix of doc.
func ParseHeader(doc []byte) (Header, error) {
	if len(doc) < HeaderSize {
		return Header{}, fmt.Errorf("%w: document is %d bytes, header needs %d", ErrMalformedHeader, len(doc), HeaderSize)
	}
	return Header{
		Width:  binary.LittleEndian.Uint32(doc[0:4]),
		Height: binary.LittleEndian.Uint32(doc[4:8]),
	}, nil
}

// AppendToken appends the lowercase 6-character token for (r, g, b) to dst.
func AppendToken(dst []byte, r, g, b uint8) []byte {
	return append(dst,
		hexDigits[r>>4], hexDigits[r&0x0f],
		hexDigits[g>>4], hexDigits[g&0x0f],
		hexDigits[b>>4], hexDigits[b&0x0f],
	)
}

// putToken writes the token for (r, g, b) into dst[0:TokenSize].
func putToken(dst []byte, r, g, b uint8) {
	_ = dst[TokenSize-1]
	dst[0], dst[1] = hexDigits[r>>4], hexDigits[r&0x0f]
	dst[2], dst[3] = hexDigits[g>>4], hexDigits[g&0x0f]
	dst[4], dst[5] = hexDigits[b>>4], hexDigits[b&0x0f]
}

// ParseToken decodes a 6-character token, accepting either case.
// On failure it returns the position within tok of the first bad character.
func ParseToken(tok []byte) (r, g, b uint8, bad int, ok bool) {
	if len(tok) != TokenSize {
		return 0, 0, 0, 0, false
	}
	var v [TokenSize]byte
	for i := 0; i < TokenSize; i++ {
		n := nibbleTable[tok[i]]
		if n == invalidNibble {
			return 0, 0, 0, i, false
		}
		v[i] = n
	}
	return v[0]<<4 | v[1], v[2]<<4 | v[3], v[4]<<4 | v[5], 0, true
}

// EndsRow reports whether a row delimiter follows pixel i in an image of the
// given width holding total pixels. No delimiter follows the final pixel.
func EndsRow(i, width, total int) bool {
	return width > 0 && (i+1)%width == 0 && i+1 < total
}

// DocumentSize returns the exact encoded size of an image with header h.
func DocumentSize(h Header) uint64 {
	n := h.Pixels()
	if n == 0 {
		return HeaderSize
	}
	return HeaderSize + n*TokenSize + uint64(h.Height-1)
}
