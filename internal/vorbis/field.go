package vorbis

import (
	"bytes"
	"fmt"

	"github.com/simonhull/vorbistag/internal/binary"
	"github.com/simonhull/vorbistag/internal/types"
)

// DefaultMaxFieldSize is the sanity bound on a single record's declared
// length. Cover art travels base64-encoded inside a record, so the bound is
// generous; anything larger is treated as a corrupt length.
const DefaultMaxFieldSize = 1 << 26 // 64 MiB

// Field is one parsed "identifier=value" record.
//
// Each parse iteration produces a fresh Field, so no state leaks between
// records.
type Field struct {
	// ID is the raw identifier, case-preserving, up to the first '='.
	ID string

	// Value is the record's value. Parsed values are always text; the
	// format carries binary payloads (cover art) base64-encoded.
	Value types.Value

	// RawSize is the encoded size of the record including its length
	// prefix.
	RawSize int64
}

// parseField reads one length-prefixed record from the cursor.
//
// index is the record's position in the field loop, used for diagnostics.
//
// Errors: *types.TruncatedError propagates unchanged (fatal to the whole
// parse); a missing '=' or a length beyond maxSize yields a
// *types.FieldError (recoverable, the caller drops the record and
// continues). A length beyond maxSize consumes nothing beyond the prefix.
func parseField(cur *binary.SegmentReader, index int, maxSize uint32) (Field, error) {
	length, err := cur.ReadUint32LE("field length")
	if err != nil {
		return Field{}, err
	}
	if length > maxSize {
		return Field{}, &types.FieldError{
			Index:  index,
			Reason: fmt.Sprintf("declared length %d exceeds limit %d", length, maxSize),
		}
	}

	payload, err := cur.Read(int(length), "field data")
	if err != nil {
		return Field{}, err
	}

	eq := bytes.IndexByte(payload, '=')
	if eq < 0 {
		return Field{}, &types.FieldError{
			Index:  index,
			Reason: "missing '=' separator",
		}
	}

	return Field{
		ID:      string(payload[:eq]),
		Value:   types.Text(string(payload[eq+1:])),
		RawSize: 4 + int64(length),
	}, nil
}

// renderField serializes a record to its "identifier=value" payload, without
// the length prefix.
//
// Returns a *types.ConversionError when the value cannot render as text;
// the caller skips the field.
func renderField(id string, v types.Value) ([]byte, error) {
	text, err := v.Text()
	if err != nil {
		return nil, err
	}
	payload := make([]byte, 0, len(id)+1+len(text))
	payload = append(payload, id...)
	payload = append(payload, '=')
	payload = append(payload, text...)
	return payload, nil
}
