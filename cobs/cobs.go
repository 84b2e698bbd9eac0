package cobs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Delimiter is the frame delimiter byte.  Encoded output never contains it,
// which is the entire point of the encoding.
const Delimiter byte = 0x00

// maxRun is the largest number of payload bytes that a single encoded block
// can carry.  A block that carries exactly maxRun bytes is tagged with the
// code 0xff and, unlike every shorter non-final block, does not stand for a
// zero in the decoded payload.
const maxRun = 254

// EOD is returned by Decoder.Write and Decoder.WriteByte when they consume a
// Delimiter that terminates a well-formed frame.  It marks the end of one
// decoded payload, not a failure.
var EOD = errors.New("cobs: end of frame")

// TruncatedError reports that an encoded frame ended while its final block
// was still owed data bytes.  Left is the exact number of missing bytes, as
// promised by the block's code byte.
type TruncatedError struct {
	Left int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("cobs: truncated frame: %d bytes missing", e.Left)
}

// MaxEncodedLen returns the number of bytes that encoding an n-byte payload
// can require, not counting the delimiter.  Encoding adds one code byte per
// started run of 254 payload bytes, and an empty payload still encodes to a
// single code byte.
func MaxEncodedLen(n int) int {
	if n == 0 {
		return 1
	}
	return n + (n+maxRun-1)/maxRun
}

// Encode writes the encoding of p to w, without a trailing delimiter, and
// returns the number of bytes written.  The encoded form contains no
// Delimiter bytes.  Appending the same payload bytes to an Encoder produces
// identical output.
func Encode(p []byte, w io.Writer) (int, error) {
	var code [1]byte
	total := 0
	start := 0
	run := 1
	flush := func(end int) error {
		code[0] = byte(run)
		if _, err := w.Write(code[:]); err != nil {
			return err
		}
		total++
		if end > start {
			n, err := w.Write(p[start:end])
			total += n
			if err != nil {
				return err
			}
		}
		return nil
	}
	for i := 0; i < len(p); i++ {
		if run == 0xff {
			if err := flush(i); err != nil {
				return total, err
			}
			start = i
			run = 1
		}
		if p[i] == Delimiter {
			if err := flush(i); err != nil {
				return total, err
			}
			start = i + 1
			run = 1
		} else {
			run++
		}
	}
	// The final block is never cut short by a zero, so it does not imply
	// one; an empty payload still produces the single code byte 0x01.
	if err := flush(len(p)); err != nil {
		return total, err
	}
	return total, nil
}

// EncodeInto encodes p into dst and returns the number of bytes the full
// encoding requires, which may exceed len(dst).  When it does, dst holds the
// first len(dst) bytes of the encoding; call again with at least
// MaxEncodedLen(len(p)) capacity to get the rest.  EncodeInto never writes
// past len(dst).
func EncodeInto(p, dst []byte) int {
	sw := sliceWriter{dst: dst}
	n, _ := Encode(p, &sw)
	return n
}

// EncodeDelimiter writes the frame delimiter to w.  Call it after Encode to
// terminate the frame on the wire.
func EncodeDelimiter(w io.Writer) error {
	_, err := w.Write([]byte{Delimiter})
	return err
}

// Decode writes the payload encoded in p to w and returns the number of
// payload bytes written.  p may be a bare encoded frame or may end with a
// Delimiter; decoding stops at the first Delimiter and ignores anything after
// it.  If the frame ends while the final block is still owed data, whether at
// an embedded Delimiter or at the end of p, Decode writes the partial block's
// bytes and returns a *TruncatedError reporting exactly how many bytes are
// missing.
func Decode(p []byte, w io.Writer) (int, error) {
	zero := [1]byte{}
	total := 0
	// The code of the previous block decides whether a zero separates it
	// from the next one.  Seeding it with 0xff suppresses the zero in
	// front of the first block.
	prev := byte(0xff)
	i := 0
	for i < len(p) {
		code := p[i]
		if code == Delimiter {
			return total, nil
		}
		i++
		if prev != 0xff {
			n, err := w.Write(zero[:])
			total += n
			if err != nil {
				return total, err
			}
		}
		size := int(code) - 1
		data := p[i:]
		if size < len(data) {
			data = data[:size]
		}
		// Block data is zero-free on the wire, so a Delimiter inside the
		// declared run means the frame ended before the block was complete.
		if z := bytes.IndexByte(data, Delimiter); z >= 0 {
			data = data[:z]
		}
		if len(data) > 0 {
			n, err := w.Write(data)
			total += n
			if err != nil {
				return total, err
			}
			i += len(data)
		}
		if len(data) < size {
			return total, &TruncatedError{Left: size - len(data)}
		}
		prev = code
	}
	return total, nil
}

// DecodeInto decodes p into dst and returns the number of bytes the full
// payload requires, which may exceed len(dst).  When it does, dst holds the
// first len(dst) bytes of the payload.  Truncated input is reported the same
// way as by Decode.  DecodeInto never writes past len(dst).
func DecodeInto(p, dst []byte) (int, error) {
	sw := sliceWriter{dst: dst}
	return Decode(p, &sw)
}

// FindDelimiter returns the index of the first frame delimiter in p, or -1 if
// p does not contain one.
func FindDelimiter(p []byte) int {
	return bytes.IndexByte(p, Delimiter)
}

// sliceWriter backs the fixed-buffer variants: it copies what fits into dst
// and keeps counting what does not, so the caller learns the required size
// even from an undersized buffer.
type sliceWriter struct {
	dst []byte
	n   int
}

func (w *sliceWriter) Write(p []byte) (int, error) {
	if w.n < len(w.dst) {
		copy(w.dst[w.n:], p)
	}
	w.n += len(p)
	return len(p), nil
}
