package msgpckdump

import "errors"

var (
	// ErrUnexpectedEOF is returned when the input ends before a complete value
	ErrUnexpectedEOF = errors.New("msgpckdump: unexpected end of input")

	// ErrReservedFormat is returned when the reserved leading byte 0xc1 is encountered
	ErrReservedFormat = errors.New("msgpckdump: reserved format byte 0xc1")

	// ErrMaxDepthExceeded is returned when nesting exceeds MaxDepth
	ErrMaxDepthExceeded = errors.New("msgpckdump: maximum nesting depth exceeded")
)
