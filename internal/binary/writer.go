package binary

import (
	"encoding/binary"
	"io"
)

// Writer wraps an io.Writer with position tracking and the little-endian
// helpers the Vorbis comment layout needs.
//
// Write errors surface unchanged; the writer performs no buffering and no
// rollback, so a mid-write failure leaves partial bytes in the sink.
// Atomicity (write-to-temp-then-rename) is the sink owner's responsibility.
type Writer struct {
	w      io.Writer
	offset int64
}

// NewWriter creates a Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Offset returns the number of bytes written so far.
func (w *Writer) Offset() int64 {
	return w.offset
}

// WriteBytes writes raw bytes.
func (w *Writer) WriteBytes(b []byte) error {
	n, err := w.w.Write(b)
	w.offset += int64(n)
	return err
}

// WriteString writes a string as raw bytes.
func (w *Writer) WriteString(s string) error {
	return w.WriteBytes([]byte(s))
}

// WriteByte writes a single byte.
func (w *Writer) WriteByte(b byte) error {
	return w.WriteBytes([]byte{b})
}

// WriteUint32LE writes a 4-byte little-endian unsigned integer.
func (w *Writer) WriteUint32LE(v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return w.WriteBytes(buf[:])
}
