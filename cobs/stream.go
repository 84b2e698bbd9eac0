package cobs

import "io"

// Encoder incrementally encodes one frame at a time, accepting payload bytes
// in fragments of any size.  Completed blocks are written to the underlying
// writer as soon as they are known; Close terminates the frame.  An Encoder
// buffers at most one block, so a frame larger than memory can be encoded
// piecewise.
type Encoder struct {
	w io.Writer
	// The block under construction: count payload bytes at buf[1:1+count].
	// buf[0] is reserved for the code byte and the slot past the data for
	// the delimiter, so flush and Close each emit a single contiguous
	// chunk.
	count int
	buf   [256]byte
}

// NewEncoder returns an Encoder that writes encoded output to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Reset discards any pending block and attaches the Encoder to w, ready to
// encode a new frame.
func (e *Encoder) Reset(w io.Writer) {
	e.w = w
	e.count = 0
}

// WriteByte adds one payload byte to the frame.  A zero byte ends the current
// block and is otherwise absorbed; it reappears when the frame is decoded.
func (e *Encoder) WriteByte(c byte) error {
	if e.count == maxRun {
		if err := e.flush(); err != nil {
			return err
		}
	}
	if c == Delimiter {
		return e.flush()
	}
	e.buf[1+e.count] = c
	e.count++
	return nil
}

// Write adds every byte of p to the frame.  It returns the number of bytes
// consumed, which is short only when the underlying writer fails.
func (e *Encoder) Write(p []byte) (int, error) {
	for i, c := range p {
		if err := e.WriteByte(c); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// flush emits the pending block, its code byte followed by its data bytes,
// and starts a fresh one.  The block stays pending if the write fails.
func (e *Encoder) flush() error {
	e.buf[0] = byte(e.count + 1)
	if _, err := e.w.Write(e.buf[:1+e.count]); err != nil {
		return err
	}
	e.count = 0
	return nil
}

// Close terminates the frame: the final block and the frame delimiter are
// written as one chunk.  The Encoder is reset afterwards and can be reused
// for the next frame immediately.  If the underlying writer fails, the block
// is kept pending and Close can be called again.
func (e *Encoder) Close() error {
	e.buf[0] = byte(e.count + 1)
	e.buf[1+e.count] = Delimiter
	if _, err := e.w.Write(e.buf[:2+e.count]); err != nil {
		return err
	}
	e.count = 0
	return nil
}

// Decoder incrementally decodes one frame at a time, accepting encoded bytes
// in fragments of any size.  Decoded payload bytes are written to the
// underlying writer as each block completes.  A Delimiter in the input ends
// the frame; input without a trailing delimiter is finalized by Close.
type Decoder struct {
	w io.Writer
	// The block in flight: code is its declared code byte, or 0 while
	// waiting for the next one; count payload bytes are staged at
	// buf[:count] until the block boundary tells us whether they are
	// followed by an implied zero.
	code  int
	count int
	buf   [255]byte
}

// NewDecoder returns a Decoder that writes decoded payload bytes to w.
func NewDecoder(w io.Writer) *Decoder {
	return &Decoder{w: w}
}

// Reset discards any in-flight block and attaches the Decoder to w, ready to
// decode a new frame.
func (d *Decoder) Reset(w io.Writer) {
	d.w = w
	d.code = 0
	d.count = 0
}

// WriteByte decodes one encoded byte.  When c is the frame delimiter, the
// frame is finalized as by Close and WriteByte returns EOD for a well-formed
// frame or a *TruncatedError if the final block was still owed data.  Either
// way the Decoder is then ready for the next frame.
func (d *Decoder) WriteByte(c byte) error {
	if c == Delimiter {
		if err := d.finish(); err != nil {
			return err
		}
		return EOD
	}
	if d.code == 0 || d.count+1 == d.code {
		// Block boundary, so c is the next code byte.  A finished
		// block implies a zero unless it carried a full 254-byte run.
		if d.code != 0 && d.code != 0xff {
			d.buf[d.count] = 0
			d.count++
		}
		if err := d.emit(); err != nil {
			return err
		}
		d.code = int(c)
		return nil
	}
	d.buf[d.count] = c
	d.count++
	return nil
}

// Write decodes every byte of p.  Decoding stops early at a frame delimiter:
// Write then returns the number of bytes consumed, delimiter included,
// together with EOD or a *TruncatedError, and the caller can feed it the rest
// of p for the next frame.
func (d *Decoder) Write(p []byte) (int, error) {
	for i, c := range p {
		err := d.WriteByte(c)
		if err == nil {
			continue
		}
		if c == Delimiter {
			return i + 1, err
		}
		return i, err
	}
	return len(p), nil
}

// Close finalizes a frame that did not end in a delimiter.  The staged bytes
// of the final block are flushed, without an implied zero, and Close returns
// nil for a well-formed frame or a *TruncatedError counting the bytes the
// block was still owed.  The Decoder is then ready for the next frame.
func (d *Decoder) Close() error {
	return d.finish()
}

func (d *Decoder) finish() error {
	left := 0
	if d.code != 0 {
		left = d.code - d.count - 1
	}
	err := d.emit()
	d.code = 0
	if err != nil {
		return err
	}
	if left > 0 {
		return &TruncatedError{Left: left}
	}
	return nil
}

func (d *Decoder) emit() error {
	if d.count == 0 {
		return nil
	}
	n := d.count
	d.count = 0
	_, err := d.w.Write(d.buf[:n])
	return err
}
