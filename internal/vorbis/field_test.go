package vorbis

import (
	"encoding/binary"
	"errors"
	"testing"

	stream "github.com/simonhull/vorbistag/internal/binary"
	"github.com/simonhull/vorbistag/internal/types"
)

func record(payload string) []byte {
	buf := make([]byte, 4, 4+len(payload))
	binary.LittleEndian.PutUint32(buf, uint32(len(payload)))
	return append(buf, payload...)
}

func TestParseField(t *testing.T) {
	cur := stream.NewBufferReader(record("ARTIST=Some Artist"))

	f, err := parseField(cur, 0, DefaultMaxFieldSize)
	if err != nil {
		t.Fatalf("parseField() error = %v", err)
	}
	if f.ID != "ARTIST" {
		t.Errorf("ID = %q, want %q", f.ID, "ARTIST")
	}
	if got, _ := f.Value.Text(); got != "Some Artist" {
		t.Errorf("Value = %q, want %q", got, "Some Artist")
	}
	if f.RawSize != 4+18 {
		t.Errorf("RawSize = %d, want %d", f.RawSize, 4+18)
	}
}

func TestParseField_CasePreserving(t *testing.T) {
	cur := stream.NewBufferReader(record("Artist=x"))

	f, err := parseField(cur, 0, DefaultMaxFieldSize)
	if err != nil {
		t.Fatalf("parseField() error = %v", err)
	}
	if f.ID != "Artist" {
		t.Errorf("ID = %q, want case preserved", f.ID)
	}
}

func TestParseField_ValueWithEquals(t *testing.T) {
	cur := stream.NewBufferReader(record("COMMENT=x=y=z"))

	f, err := parseField(cur, 0, DefaultMaxFieldSize)
	if err != nil {
		t.Fatalf("parseField() error = %v", err)
	}
	if got, _ := f.Value.Text(); got != "x=y=z" {
		t.Errorf("Value = %q, want %q (split at first '=' only)", got, "x=y=z")
	}
}

func TestParseField_MissingSeparator(t *testing.T) {
	cur := stream.NewBufferReader(record("NOSEPARATOR"))

	_, err := parseField(cur, 3, DefaultMaxFieldSize)
	var fieldErr *types.FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("error = %v, want *FieldError", err)
	}
	if fieldErr.Index != 3 {
		t.Errorf("Index = %d, want 3", fieldErr.Index)
	}
	// The malformed record is fully consumed, so the caller can continue
	// with the next one.
	if cur.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", cur.Remaining())
	}
}

func TestParseField_OversizedLength(t *testing.T) {
	cur := stream.NewBufferReader(record("ARTIST=A"))

	_, err := parseField(cur, 0, 4)
	var fieldErr *types.FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("error = %v, want *FieldError", err)
	}
}

func TestParseField_Truncated(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty input", nil},
		{"partial length prefix", []byte{0x08, 0x00}},
		{"partial payload", record("ARTIST=A")[:8]},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cur := stream.NewBufferReader(tc.data)
			_, err := parseField(cur, 0, DefaultMaxFieldSize)
			var trunc *types.TruncatedError
			if !errors.As(err, &trunc) {
				t.Fatalf("error = %v, want *TruncatedError", err)
			}
		})
	}
}

func TestRenderField(t *testing.T) {
	payload, err := renderField("TITLE", types.Text("A Title"))
	if err != nil {
		t.Fatalf("renderField() error = %v", err)
	}
	if string(payload) != "TITLE=A Title" {
		t.Errorf("payload = %q", payload)
	}
}

func TestRenderField_Integer(t *testing.T) {
	payload, err := renderField("TRACKNUMBER", types.Integer(12))
	if err != nil {
		t.Fatalf("renderField() error = %v", err)
	}
	if string(payload) != "TRACKNUMBER=12" {
		t.Errorf("payload = %q", payload)
	}
}

func TestRenderField_Binary(t *testing.T) {
	_, err := renderField("OPAQUE", types.Binary([]byte{1, 2, 3}))
	var conv *types.ConversionError
	if !errors.As(err, &conv) {
		t.Fatalf("error = %v, want *ConversionError", err)
	}
}
