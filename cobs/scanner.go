package cobs

import "io"

// Scanner steps through the delimited frames in a byte slice.  Zero-length
// segments, produced by leading, trailing, or doubled delimiters, are
// skipped; a trailing frame without a final delimiter is still yielded.  The
// zero value is valid and scans an empty slice.
type Scanner struct {
	rest    []byte
	encoded []byte
}

// Reset points the Scanner at data and rewinds it to the first frame.
func (s *Scanner) Reset(data []byte) {
	s.rest = data
	s.encoded = nil
}

// Next advances to the next frame, returning false when there are no more.
func (s *Scanner) Next() bool {
	for len(s.rest) > 0 {
		i := FindDelimiter(s.rest)
		if i < 0 {
			s.encoded = s.rest
			s.rest = nil
			return true
		}
		frame := s.rest[:i]
		s.rest = s.rest[i+1:]
		if len(frame) > 0 {
			s.encoded = frame
			return true
		}
	}
	return false
}

// Encoded returns the current frame's encoded bytes, without the delimiter.
// It is only valid after a call to Next has returned true.
func (s *Scanner) Encoded() []byte {
	return s.encoded
}

// Decode writes the current frame's payload to w, reporting truncated frames
// the same way as the package-level Decode.
func (s *Scanner) Decode(w io.Writer) (int, error) {
	return Decode(s.encoded, w)
}

// ScanFrames is a bufio.SplitFunc that splits its input into encoded frames.
// Each token is one frame without its delimiter, ready for Decode.  Runs of
// delimiters between frames are skipped, and a final frame that the input
// ends without delimiting is returned as a token of its own.
func ScanFrames(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && data[start] == Delimiter {
		start++
	}
	if i := FindDelimiter(data[start:]); i >= 0 {
		return start + i + 1, data[start : start+i], nil
	}
	if atEOF && start < len(data) {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}
