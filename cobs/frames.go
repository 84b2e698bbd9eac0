package cobs

import (
	"bytes"
	"io"
)

type index struct {
	start int
	end   int
}

// A FrameBuilder helps you construct a sequence of frames.  Write each
// payload into the FrameBuilder using any of the bytes.Buffer methods, and
// call FinishFrame when it is complete.  Payloads are accumulated unencoded;
// a single Encode call then renders the whole sequence.
type FrameBuilder struct {
	bytes.Buffer
	start   int
	indices []index
}

// FinishFrame finishes the payload under construction.  Whatever is written
// afterwards belongs to the next frame.
func (b *FrameBuilder) FinishFrame() {
	end := b.Len()
	b.indices = append(b.indices, index{start: b.start, end: end})
	b.start = end
}

// Reset discards all accumulated payloads, finished or not.
func (b *FrameBuilder) Reset() {
	b.Buffer.Reset()
	b.start = 0
	b.indices = nil
}

// Encode encodes every finished frame into w, each one followed by the frame
// delimiter, and returns the total number of bytes written.  Payload written
// after the last FinishFrame is not included.
func (b *FrameBuilder) Encode(w io.Writer) (int, error) {
	contents := b.Bytes()
	total := 0
	for _, idx := range b.indices {
		n, err := Encode(contents[idx.start:idx.end], w)
		total += n
		if err != nil {
			return total, err
		}
		if err := EncodeDelimiter(w); err != nil {
			return total, err
		}
		total++
	}
	return total, nil
}
