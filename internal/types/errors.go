package types

import "fmt"

// StructuralError is returned when a tag block's fixed structure is invalid,
// such as a bad signature. It is fatal: parsing aborts with zero fields.
type StructuralError struct {
	Offset int64
	Reason string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("invalid tag structure at offset %d: %s", e.Offset, e.Reason)
}

// TruncatedError is returned when the stream ends before a read completes.
// It is fatal: no further records are attempted, though the consumed size up
// to the truncation point is still recorded on the tag.
type TruncatedError struct {
	// Offset is the logical offset where the shortfall was detected.
	Offset int64

	// Need is how many bytes the read wanted.
	Need int

	// Remaining is how many bytes were actually left.
	Remaining int64

	// What describes what was being read.
	What string
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated input at offset %d: need %d bytes for %s, %d remaining",
		e.Offset, e.Need, e.What, e.Remaining)
}

// FieldError is returned when a single record is malformed, such as a
// missing '=' separator or an implausible length. It is recoverable: the
// record is dropped and parsing continues with the next one.
type FieldError struct {
	// Index is the zero-based position of the record in the field loop.
	Index  int
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("malformed field %d: %s", e.Index, e.Reason)
}

// ConversionError is returned when a value cannot convert to the requested
// representation, such as rendering binary data as text. It is recoverable:
// the caller skips the field or substitutes a default.
type ConversionError struct {
	From string
	To   string
	What string
}

func (e *ConversionError) Error() string {
	if e.What != "" {
		return fmt.Sprintf("cannot convert %s %q to %s", e.From, e.What, e.To)
	}
	return fmt.Sprintf("cannot convert %s value to %s", e.From, e.To)
}
