package bruh

import (
	"bytes"
	"fmt"
)

// Decoder converts BRUH documents into RGBA pixel buffers.
//
// The zero value follows the lenient format rules: newlines are stripped and
// the header alone decides where rows begin.
type Decoder struct {
	// StrictRows additionally requires every newline to sit exactly on a
	// width-derived row boundary, as Encode places them. Documents written by
	// other producers may not satisfy this, so it is off by default.
	StrictRows bool
}

// Decode decodes doc using a lenient Decoder.
func Decode(doc []byte) (*RawImageRGBA, error) {
	var d Decoder
	return d.Decode(doc)
}

// ReadHeader returns the dimensions stored in doc without decoding the body.
func ReadHeader(doc []byte) (Header, error) {
	return ParseHeader(doc)
}

// Decode parses doc and returns its pixels with a synthesized alpha of 255.
//
// Errors wrap ErrMalformedHeader, ErrTokenCountMismatch, ErrInvalidHexToken
// or ErrRowLayout. No partial image is returned on failure.
func (d *Decoder) Decode(doc []byte) (*RawImageRGBA, error) {
	h, err := ParseHeader(doc)
	if err != nil {
		return nil, err
	}
	body := doc[HeaderSize:]

	chars := len(body) - bytes.Count(body, []byte{RowDelimiter})
	if chars%TokenSize != 0 {
		return nil, fmt.Errorf("%w: body has %d hex characters, not a multiple of %d",
			ErrTokenCountMismatch, chars, TokenSize)
	}
	tokens := chars / TokenSize
	if uint64(tokens) != h.Pixels() {
		return nil, fmt.Errorf("%w: body has %d tokens, header %dx%d needs %d",
			ErrTokenCountMismatch, tokens, h.Width, h.Height, h.Pixels())
	}

	if d.StrictRows {
		if err := checkRowLayout(body, h); err != nil {
			return nil, err
		}
	}

	img := &RawImageRGBA{
		Width:  h.Width,
		Height: h.Height,
		Pix:    make([]uint8, 4*tokens),
	}

	var (
		tok     [TokenSize]byte
		offsets [TokenSize]int
		n       int
		index   int
	)
	for i, c := range body {
		if c == RowDelimiter {
			continue
		}
		tok[n] = c
		offsets[n] = HeaderSize + i
		n++
		if n < TokenSize {
			continue
		}
		n = 0

		r, g, b, bad, ok := ParseToken(tok[:])
		if !ok {
			return nil, &TokenError{Index: index, Offset: offsets[bad], Token: string(tok[:])}
		}
		p := 4 * index
		img.Pix[p], img.Pix[p+1], img.Pix[p+2], img.Pix[p+3] = r, g, b, 0xff
		index++
	}

	return img, nil
}

// checkRowLayout verifies that body consists of Height rows of Width tokens
// joined by single newlines. The token count has already been checked.
func checkRowLayout(body []byte, h Header) error {
	if h.Pixels() == 0 {
		if len(body) != 0 {
			return fmt.Errorf("%w: empty image has %d body bytes", ErrRowLayout, len(body))
		}
		return nil
	}

	rowChars := int(h.Width) * TokenSize
	off := 0
	for y := 0; y < int(h.Height); y++ {
		if y > 0 {
			if body[off] != RowDelimiter {
				return fmt.Errorf("%w: expected newline ending row %d at byte offset %d",
					ErrRowLayout, y-1, HeaderSize+off)
			}
			off++
		}
		if i := bytes.IndexByte(body[off:off+rowChars], RowDelimiter); i >= 0 {
			return fmt.Errorf("%w: newline inside row %d at byte offset %d",
				ErrRowLayout, y, HeaderSize+off+i)
		}
		off += rowChars
	}
	if off != len(body) {
		return fmt.Errorf("%w: %d trailing bytes after last row at byte offset %d",
			ErrRowLayout, len(body)-off, HeaderSize+off)
	}
	return nil
}
