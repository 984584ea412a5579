package msgpckdump

import (
	"context"
	"fmt"
	"io"
)

// readChunkSize is the granularity of input accumulation and of
// cancellation checks.
const readChunkSize = 64 * 1024

// ReadInput accumulates the entire stream from r into one contiguous
// buffer. Decoding needs the whole input addressable by absolute
// offset, so this reads to EOF before any decoding starts. No size
// cap is enforced here; bound the reader if the source is untrusted.
//
// Cancellation is observed between chunk reads only — once a read is
// in flight it runs to completion.
func ReadInput(ctx context.Context, r io.Reader) ([]byte, error) {
	var buf []byte
	chunk := make([]byte, readChunkSize)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := r.Read(chunk)
		buf = append(buf, chunk[:n]...)
		if err == io.EOF {
			return buf, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
	}
}
