package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/dcreager/cobs-go/cobs"
)

// maxFrame caps how large a single encoded frame the scanner will buffer.
const maxFrame = 16 * 1024 * 1024

func newFrameScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxFrame)
	scanner.Split(cobs.ScanFrames)
	return scanner
}

// encodePipeline encodes everything read from r as a single frame on w and
// returns the payload size.  With delim false the trailing delimiter is
// omitted, leaving a bare frame.
func encodePipeline(r io.Reader, w io.Writer, delim bool) (int64, error) {
	if !delim {
		payload, err := io.ReadAll(r)
		if err != nil {
			return 0, fmt.Errorf("read payload: %w", err)
		}
		if _, err := cobs.Encode(payload, w); err != nil {
			return 0, fmt.Errorf("encode: %w", err)
		}
		return int64(len(payload)), nil
	}
	enc := cobs.NewEncoder(w)
	n, err := io.Copy(enc, r)
	if err != nil {
		return n, fmt.Errorf("encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return n, fmt.Errorf("finish frame: %w", err)
	}
	return n, nil
}

// decodePipeline decodes the first frame of r to w, or every frame when all
// is set, and returns how many frames it decoded.  A truncated frame has its
// partial payload written before the error comes back.
func decodePipeline(r io.Reader, w io.Writer, all bool) (int, error) {
	scanner := newFrameScanner(r)
	frames := 0
	for scanner.Scan() {
		if _, err := cobs.Decode(scanner.Bytes(), w); err != nil {
			return frames, fmt.Errorf("frame %d: %w", frames, err)
		}
		frames++
		if !all {
			return frames, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return frames, fmt.Errorf("scan frames: %w", err)
	}
	if frames == 0 && !all {
		return 0, errors.New("no frames in input")
	}
	return frames, nil
}

// frameInfo describes one frame of an inspected stream.
type frameInfo struct {
	Index   int    `json:"index"`
	Encoded int    `json:"encodedBytes"`
	Decoded int    `json:"decodedBytes"`
	Missing int    `json:"missingBytes,omitempty"`
	Status  string `json:"status"`
}

// inspectFrames describes every frame in r without keeping any payloads.
func inspectFrames(r io.Reader) ([]frameInfo, error) {
	scanner := newFrameScanner(r)
	infos := []frameInfo{}
	for scanner.Scan() {
		info := frameInfo{
			Index:   len(infos),
			Encoded: len(scanner.Bytes()),
			Status:  "ok",
		}
		n, err := cobs.Decode(scanner.Bytes(), io.Discard)
		info.Decoded = n
		if err != nil {
			var terr *cobs.TruncatedError
			if !errors.As(err, &terr) {
				return infos, fmt.Errorf("frame %d: %w", info.Index, err)
			}
			info.Status = "truncated"
			info.Missing = terr.Left
		}
		infos = append(infos, info)
	}
	if err := scanner.Err(); err != nil {
		return infos, fmt.Errorf("scan frames: %w", err)
	}
	return infos, nil
}
