package types

import (
	"bytes"
	"fmt"
	"strconv"
)

// ValueKind identifies the declared type of a tag value.
type ValueKind int

const (
	// KindEmpty is the zero Value, holding nothing.
	KindEmpty ValueKind = iota

	// KindText holds a string in the format's declared text encoding.
	KindText

	// KindInteger holds a signed integer (track numbers, years, ...).
	KindInteger

	// KindBinary holds raw bytes (cover art payloads, opaque data).
	KindBinary
)

// String returns a human-readable kind name.
func (k ValueKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindBinary:
		return "binary"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// Value is a typed tag value.
//
// A Value carries its declared kind so that lossy conversions are explicit:
// asking a binary value to render as text fails with a *ConversionError
// instead of silently mangling data.
//
// The zero Value is empty and safe to use.
type Value struct {
	kind    ValueKind
	text    string
	integer int64
	binary  []byte
}

// Text creates a text value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Integer creates an integer value.
func Integer(n int64) Value {
	return Value{kind: KindInteger, integer: n}
}

// Binary creates a binary value. The slice is not copied.
func Binary(b []byte) Value {
	return Value{kind: KindBinary, binary: b}
}

// Kind returns the declared kind of the value.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsEmpty reports whether the value holds nothing worth serializing.
//
// An empty text or binary value counts as empty; integer zero does not,
// since "track 0" is distinguishable from "no track".
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindEmpty:
		return true
	case KindText:
		return v.text == ""
	case KindBinary:
		return len(v.binary) == 0
	default:
		return false
	}
}

// Text renders the value as a string.
//
// Text and integer values render losslessly. Binary values fail with a
// *ConversionError; callers decide whether to skip or substitute.
func (v Value) Text() (string, error) {
	switch v.kind {
	case KindEmpty:
		return "", nil
	case KindText:
		return v.text, nil
	case KindInteger:
		return strconv.FormatInt(v.integer, 10), nil
	default:
		return "", &ConversionError{From: v.kind.String(), To: "text"}
	}
}

// Int interprets the value as an integer.
//
// Integer values return directly; text values are parsed. Anything else
// fails with a *ConversionError.
func (v Value) Int() (int64, error) {
	switch v.kind {
	case KindInteger:
		return v.integer, nil
	case KindText:
		n, err := strconv.ParseInt(v.text, 10, 64)
		if err != nil {
			return 0, &ConversionError{From: "text", To: "integer", What: v.text}
		}
		return n, nil
	default:
		return 0, &ConversionError{From: v.kind.String(), To: "integer"}
	}
}

// Bytes returns the raw bytes of the value.
//
// Binary values return their payload; text values their encoded bytes.
// Returns nil for empty values.
func (v Value) Bytes() []byte {
	switch v.kind {
	case KindText:
		return []byte(v.text)
	case KindBinary:
		return v.binary
	case KindInteger:
		return []byte(strconv.FormatInt(v.integer, 10))
	default:
		return nil
	}
}

// Equal reports whether two values have the same kind and content.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindText:
		return v.text == other.text
	case KindInteger:
		return v.integer == other.integer
	case KindBinary:
		return bytes.Equal(v.binary, other.binary)
	default:
		return true
	}
}

// String implements fmt.Stringer for debugging output.
//
// Unlike Text, String never fails; binary values render as a length marker.
func (v Value) String() string {
	switch v.kind {
	case KindEmpty:
		return ""
	case KindText:
		return v.text
	case KindInteger:
		return strconv.FormatInt(v.integer, 10)
	default:
		return fmt.Sprintf("<%d binary bytes>", len(v.binary))
	}
}
