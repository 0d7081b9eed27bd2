package imaging

import (
	"bytes"
	"errors"

	"github.com/ironsheep/bruh/internal/bruh"
)

// DocumentInfo summarizes a BRUH document.
type DocumentInfo struct {
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`

	// SizeBytes is the total document length including the header.
	SizeBytes int `json:"size_bytes"`

	// Tokens is the number of pixel tokens in the body.
	Tokens int `json:"tokens"`

	// Newlines is the number of row delimiters in the body.
	Newlines int `json:"newlines"`

	// RowsAligned reports whether every newline sits on a width-derived row
	// boundary, as the encoder places them.
	RowsAligned bool `json:"rows_aligned"`

	// Average is the mean pixel color; nil for an empty image.
	Average *ColorResult `json:"average,omitempty"`
}

// InspectDocument decodes doc and describes it.
//
// A document that decodes leniently but has misplaced newlines is reported
// with RowsAligned=false rather than as an error.
func InspectDocument(doc []byte) (*DocumentInfo, error) {
	h, err := bruh.ReadHeader(doc)
	if err != nil {
		return nil, err
	}
	raw, err := bruh.Decode(doc)
	if err != nil {
		return nil, err
	}

	strict := bruh.Decoder{StrictRows: true}
	_, strictErr := strict.Decode(doc)
	if strictErr != nil && !errors.Is(strictErr, bruh.ErrRowLayout) {
		return nil, strictErr
	}

	body := doc[bruh.HeaderSize:]
	newlines := bytes.Count(body, []byte{bruh.RowDelimiter})

	return &DocumentInfo{
		Width:       h.Width,
		Height:      h.Height,
		SizeBytes:   len(doc),
		Tokens:      (len(body) - newlines) / bruh.TokenSize,
		Newlines:    newlines,
		RowsAligned: strictErr == nil,
		Average:     AverageColor(ToImage(raw)),
	}, nil
}
