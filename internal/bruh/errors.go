package bruh

import (
	"errors"
	"fmt"
)

// Sentinel errors for malformed input. Errors returned by this package wrap
// exactly one of these, so callers can classify failures with errors.Is.
var (
	// ErrMalformedHeader reports a document shorter than the 8-byte header.
	ErrMalformedHeader = errors.New("malformed header")

	// ErrTokenCountMismatch reports a body whose character count is not a
	// multiple of the token size, or whose token count disagrees with the
	// header dimensions.
	ErrTokenCountMismatch = errors.New("token count mismatch")

	// ErrInvalidHexToken reports a token containing a non-hex character.
	ErrInvalidHexToken = errors.New("invalid hex token")

	// ErrChannelOutOfRange reports a channel value outside [0,255].
	ErrChannelOutOfRange = errors.New("channel out of range")

	// ErrPixelCount reports a pixel buffer whose length does not match the
	// image dimensions.
	ErrPixelCount = errors.New("pixel count mismatch")

	// ErrRowLayout reports newline placement that disagrees with the header
	// width. Only returned when strict row checking is enabled.
	ErrRowLayout = errors.New("row layout mismatch")
)

// TokenError describes an invalid token found while decoding.
type TokenError struct {
	// Index is the 0-based token (pixel) index in row-major order.
	Index int

	// Offset is the byte offset of the offending character in the document.
	Offset int

	// Token is the 6-character chunk as it appeared, newlines removed.
	Token string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%v: token %d %q at byte offset %d", ErrInvalidHexToken, e.Index, e.Token, e.Offset)
}

// Unwrap lets errors.Is match ErrInvalidHexToken.
func (e *TokenError) Unwrap() error { return ErrInvalidHexToken }
