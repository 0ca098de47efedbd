// Package binary provides the byte-level plumbing for tag codecs: a
// sequential cursor over logically segmented input and a position-tracking
// little-endian writer.
package binary

import (
	"encoding/binary"

	"github.com/simonhull/vorbistag/internal/types"
)

// SegmentReader is a sequential read cursor over segmented input.
//
// Container formats such as Ogg split one logical packet across physical
// segments (page payloads, lacing segments). SegmentReader hides that split
// and presents a single logical byte stream: reads cross segment boundaries
// transparently, and offsets are logical offsets from the start of the
// stream.
//
// Every shortfall surfaces as a *types.TruncatedError, so upper layers need
// exactly one handler for "ran out of data". A failed read consumes whatever
// bytes remained, which keeps the cursor offset equal to the truncation
// point for size bookkeeping.
type SegmentReader struct {
	segments [][]byte
	seg      int   // index of the current segment
	pos      int   // position within the current segment
	offset   int64 // logical offset consumed so far
	total    int64 // total logical length
}

// NewSegmentReader creates a cursor over the given segments.
//
// Empty segments are permitted and skipped transparently. The segments are
// not copied; callers must not mutate them while the cursor is in use.
func NewSegmentReader(segments [][]byte) *SegmentReader {
	total := int64(0)
	for _, seg := range segments {
		total += int64(len(seg))
	}
	return &SegmentReader{segments: segments, total: total}
}

// NewBufferReader creates a cursor over a single contiguous buffer.
func NewBufferReader(data []byte) *SegmentReader {
	return NewSegmentReader([][]byte{data})
}

// Offset returns the logical byte offset consumed so far.
func (r *SegmentReader) Offset() int64 {
	return r.offset
}

// Remaining returns the number of logical bytes left to read.
func (r *SegmentReader) Remaining() int64 {
	return r.total - r.offset
}

// Read returns exactly n logical bytes, crossing segment boundaries as
// needed. The what string names the field being read for diagnostics.
//
// If fewer than n bytes remain, Read consumes everything left and returns a
// *types.TruncatedError; the cursor offset then equals the truncation point.
func (r *SegmentReader) Read(n int, what string) ([]byte, error) {
	if n < 0 {
		n = 0
	}
	if int64(n) > r.Remaining() {
		err := &types.TruncatedError{
			Offset:    r.total,
			Need:      n,
			Remaining: r.Remaining(),
			What:      what,
		}
		r.drain()
		return nil, err
	}

	// Fast path: the read fits inside the current segment.
	if r.seg < len(r.segments) && r.pos+n <= len(r.segments[r.seg]) {
		buf := r.segments[r.seg][r.pos : r.pos+n]
		r.advance(n)
		return buf, nil
	}

	buf := make([]byte, 0, n)
	for len(buf) < n {
		seg := r.segments[r.seg]
		take := n - len(buf)
		if avail := len(seg) - r.pos; take > avail {
			take = avail
		}
		buf = append(buf, seg[r.pos:r.pos+take]...)
		r.advance(take)
	}
	return buf, nil
}

// ReadUint32LE reads a 4-byte little-endian unsigned integer.
func (r *SegmentReader) ReadUint32LE(what string) (uint32, error) {
	buf, err := r.Read(4, what)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

// Skip advances the cursor n logical bytes without materializing them.
//
// Skipping past the end consumes everything left and returns a
// *types.TruncatedError, same as Read.
func (r *SegmentReader) Skip(n int, what string) error {
	if n < 0 {
		n = 0
	}
	if int64(n) > r.Remaining() {
		err := &types.TruncatedError{
			Offset:    r.total,
			Need:      n,
			Remaining: r.Remaining(),
			What:      what,
		}
		r.drain()
		return err
	}

	left := n
	for left > 0 {
		avail := len(r.segments[r.seg]) - r.pos
		take := left
		if take > avail {
			take = avail
		}
		r.advance(take)
		left -= take
	}
	return nil
}

// advance moves the cursor forward within bounds, hopping empty segments.
func (r *SegmentReader) advance(n int) {
	r.pos += n
	r.offset += int64(n)
	for r.seg < len(r.segments) && r.pos >= len(r.segments[r.seg]) {
		r.pos -= len(r.segments[r.seg])
		r.seg++
	}
}

// drain consumes everything remaining after a failed read.
func (r *SegmentReader) drain() {
	r.seg = len(r.segments)
	r.pos = 0
	r.offset = r.total
}
