package vorbistag

import (
	"github.com/simonhull/vorbistag/internal/types"
)

// StructuralError is an alias to types.StructuralError: the block's fixed
// structure (signature) is invalid. Fatal; parsing aborts with zero fields.
type StructuralError = types.StructuralError

// TruncatedError is an alias to types.TruncatedError: the stream ended
// before a read completed. Fatal; the partial consumed size is still
// recorded on the Comment.
type TruncatedError = types.TruncatedError

// FieldError is an alias to types.FieldError: one record was malformed.
// Recoverable; the record is dropped and parsing continues.
type FieldError = types.FieldError

// ConversionError is an alias to types.ConversionError: a value could not
// convert to the requested representation. Recoverable.
type ConversionError = types.ConversionError
