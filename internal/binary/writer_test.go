package binary

import (
	"bytes"
	"errors"
	"testing"
)

func TestWriter_Sequence(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	if err := w.WriteBytes([]byte{0x03}); err != nil {
		t.Fatalf("WriteBytes() error = %v", err)
	}
	if err := w.WriteString("vorbis"); err != nil {
		t.Fatalf("WriteString() error = %v", err)
	}
	if err := w.WriteUint32LE(6); err != nil {
		t.Fatalf("WriteUint32LE() error = %v", err)
	}
	if err := w.WriteByte(0x01); err != nil {
		t.Fatalf("WriteByte() error = %v", err)
	}

	want := []byte{0x03, 'v', 'o', 'r', 'b', 'i', 's', 0x06, 0x00, 0x00, 0x00, 0x01}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("output = % x, want % x", buf.Bytes(), want)
	}
	if w.Offset() != int64(len(want)) {
		t.Errorf("Offset = %d, want %d", w.Offset(), len(want))
	}
}

func TestWriter_LittleEndian(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	if err := w.WriteUint32LE(0x12345678); err != nil {
		t.Fatalf("WriteUint32LE() error = %v", err)
	}

	want := []byte{0x78, 0x56, 0x34, 0x12}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("output = % x, want % x", buf.Bytes(), want)
	}
}

// failWriter fails after n bytes, for error propagation tests.
type failWriter struct {
	n int
}

func (f *failWriter) Write(p []byte) (int, error) {
	if len(p) > f.n {
		n := f.n
		f.n = 0
		return n, errors.New("sink full")
	}
	f.n -= len(p)
	return len(p), nil
}

func TestWriter_ErrorPropagation(t *testing.T) {
	w := NewWriter(&failWriter{n: 2})

	if err := w.WriteBytes([]byte{1, 2}); err != nil {
		t.Fatalf("WriteBytes() error = %v", err)
	}
	err := w.WriteUint32LE(7)
	if err == nil {
		t.Fatal("WriteUint32LE() error = nil, want sink error")
	}
	// Offset tracks what the sink accepted, even on failure.
	if w.Offset() != 2 {
		t.Errorf("Offset = %d, want 2", w.Offset())
	}
}
