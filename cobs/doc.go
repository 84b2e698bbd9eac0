// Package cobs provides a Go implementation of Consistent Overhead Byte
// Stuffing (COBS).  COBS reversibly rewrites an arbitrary byte sequence into
// one that contains no zero bytes, at a bounded cost of one extra byte per
// 254 bytes of payload, so that the single byte `0x00` can serve as an
// unambiguous frame delimiter on byte-oriented transports such as serial
// links, sockets, and ring buffers.
//
// Both directions of the transform are available in two forms: one-shot
// functions over complete byte slices (Encode, Decode, and their fixed-buffer
// variants EncodeInto and DecodeInto), and incremental Encoder and Decoder
// state machines that accept input in arbitrary fragments and emit output as
// soon as it is known.  Scanner and ScanFrames split delimited streams back
// into individual frames.
package cobs
