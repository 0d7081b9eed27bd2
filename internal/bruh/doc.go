// Package bruh implements the BRUH pixel dump format.
//
// A BRUH document is an 8-byte header followed by a text body:
//
//	offset 0  width  uint32 little-endian
//	offset 4  height uint32 little-endian
//	offset 8  width*height tokens, rows joined by '\n'
//
// Each token is six hex digits holding the red, green and blue channels of
// one pixel, most significant nibble first. Encode always writes lowercase
// digits; Decode accepts either case. There is no newline before the first
// row or after the last one.
//
// # Rows
//
// The header is the authority on image shape. The lenient Decoder strips
// newlines and partitions the remaining characters into tokens, so row
// delimiters are cosmetic. Decoder.StrictRows opts into checking that each
// newline sits on a width-derived row boundary.
//
// # Alpha
//
// Encode takes RGB pixels, so alpha is dropped before encoding. Decode
// produces RGBA pixels with alpha fixed at 255.
//
// # Errors
//
// Malformed input is reported eagerly through wrapped sentinels
// (ErrMalformedHeader, ErrTokenCountMismatch, ErrInvalidHexToken,
// ErrRowLayout); an invalid token is a *TokenError carrying its index and
// byte offset. The package performs no I/O.
package bruh
