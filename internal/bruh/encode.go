package bruh

import (
	"fmt"
	"io"
	"math"
	"runtime"
	"sync"
)

// Encoder converts RGB pixel buffers into BRUH documents.
//
// The zero value encodes sequentially.
type Encoder struct {
	// Workers is the number of goroutines converting rows to tokens.
	// Values <= 1 encode on the calling goroutine; a negative value uses
	// runtime.NumCPU(). The output is byte-identical either way.
	Workers int
}

// Encode encodes img using a sequential Encoder.
func Encode(img *RawImage) ([]byte, error) {
	var e Encoder
	return e.Encode(img)
}

// Encode returns the BRUH document for img.
//
// The document is the 8-byte header followed by one lowercase token per
// pixel in row-major order, with a newline between consecutive rows.
func (e *Encoder) Encode(img *RawImage) ([]byte, error) {
	h := img.Header()
	if h.Pixels() > (math.MaxInt-HeaderSize)/(TokenSize+1) {
		return nil, fmt.Errorf("%w: %dx%d document does not fit in memory", ErrPixelCount, h.Width, h.Height)
	}
	want := 3 * h.Pixels()
	if uint64(len(img.Pix)) != want {
		return nil, fmt.Errorf("%w: pixel buffer is %d bytes, %dx%d needs %d",
			ErrPixelCount, len(img.Pix), h.Width, h.Height, want)
	}

	doc := make([]byte, DocumentSize(h))
	PutHeader(doc, h)
	if h.Pixels() == 0 {
		return doc, nil
	}

	rows := int(h.Height)
	workers := e.workers(rows)
	if workers <= 1 {
		encodeRows(doc, img, 0, rows)
		return doc, nil
	}

	var wg sync.WaitGroup
	band := (rows + workers - 1) / workers
	for start := 0; start < rows; start += band {
		end := start + band
		if end > rows {
			end = rows
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			encodeRows(doc, img, start, end)
		}(start, end)
	}
	wg.Wait()

	return doc, nil
}

// EncodeTo writes the BRUH document for img to w.
func (e *Encoder) EncodeTo(w io.Writer, img *RawImage) error {
	doc, err := e.Encode(img)
	if err != nil {
		return err
	}
	if _, err := w.Write(doc); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

func (e *Encoder) workers(rows int) int {
	n := e.Workers
	if n < 0 {
		n = runtime.NumCPU()
	}
	if n > rows {
		n = rows
	}
	return n
}

// encodeRows fills the token bytes of rows [start, end) in doc. Every row
// begins at a fixed offset, so disjoint row ranges can be written concurrently.
func encodeRows(doc []byte, img *RawImage, start, end int) {
	width := int(img.Width)
	total := width * int(img.Height)
	rowSize := width*TokenSize + 1

	for y := start; y < end; y++ {
		off := HeaderSize + y*rowSize
		for x := 0; x < width; x++ {
			i := y*width + x
			p := 3 * i
			putToken(doc[off:], img.Pix[p], img.Pix[p+1], img.Pix[p+2])
			off += TokenSize
			if EndsRow(i, width, total) {
				doc[off] = RowDelimiter
				off++
			}
		}
	}
}
