package vorbistag

import (
	"fmt"

	"github.com/simonhull/vorbistag/internal/binary"
	"github.com/simonhull/vorbistag/internal/types"
	"github.com/simonhull/vorbistag/internal/vorbis"
)

// Comment is an alias to vorbis.Comment, the parsed tag block.
type Comment = vorbis.Comment

// Value is an alias to types.Value, the typed tag value.
type Value = types.Value

// ValueKind is an alias to types.ValueKind.
type ValueKind = types.ValueKind

// KnownField is an alias to types.KnownField, the format-independent
// semantic tag category.
type KnownField = types.KnownField

// Diagnostic is an alias to types.Diagnostic.
type Diagnostic = types.Diagnostic

// Severity is an alias to types.Severity.
type Severity = types.Severity

// Re-export all known field constants.
const (
	FieldUnknown         = types.FieldUnknown
	FieldAlbum           = types.FieldAlbum
	FieldArtist          = types.FieldArtist
	FieldComment         = types.FieldComment
	FieldCover           = types.FieldCover
	FieldYear            = types.FieldYear
	FieldTitle           = types.FieldTitle
	FieldGenre           = types.FieldGenre
	FieldTrackPosition   = types.FieldTrackPosition
	FieldDiskPosition    = types.FieldDiskPosition
	FieldPartNumber      = types.FieldPartNumber
	FieldComposer        = types.FieldComposer
	FieldEncoder         = types.FieldEncoder
	FieldEncoderSettings = types.FieldEncoderSettings
	FieldDescription     = types.FieldDescription
	FieldRecordLabel     = types.FieldRecordLabel
	FieldPerformers      = types.FieldPerformers
	FieldLyricist        = types.FieldLyricist
	FieldVendor          = types.FieldVendor
)

// Re-export value kind constants.
const (
	KindEmpty   = types.KindEmpty
	KindText    = types.KindText
	KindInteger = types.KindInteger
	KindBinary  = types.KindBinary
)

// Re-export severity constants.
const (
	SeverityWarning  = types.SeverityWarning
	SeverityCritical = types.SeverityCritical
)

// Text creates a text value.
func Text(s string) Value { return types.Text(s) }

// Integer creates an integer value.
func Integer(n int64) Value { return types.Integer(n) }

// Binary creates a binary value.
func Binary(b []byte) Value { return types.Binary(b) }

// NewComment creates an empty Vorbis comment.
func NewComment() *Comment { return vorbis.NewComment() }

// NewOpusTags creates an empty OpusTags comment.
func NewOpusTags() *Comment { return vorbis.NewOpusTags() }

// ParseVorbis parses a Vorbis comment block from a contiguous buffer.
//
// The returned Comment is non-nil even when an error is returned, so
// callers can inspect Comment.Diagnostics and the partial consumed size
// after a fatal failure. A bad signature yields a *StructuralError, a
// stream that ends early a *TruncatedError; malformed individual records
// are dropped with warning diagnostics instead of failing the parse.
//
// Example:
//
//	comment, err := vorbistag.ParseVorbis(data)
//	for _, d := range comment.Diagnostics {
//		log.Println(d)
//	}
//	if err != nil {
//		return err
//	}
func ParseVorbis(data []byte, opts ...Option) (*Comment, error) {
	return parse(vorbis.NewComment(), [][]byte{data}, opts)
}

// ParseVorbisSegments parses a Vorbis comment block whose bytes are split
// across container segments, such as an Ogg packet spanning several page
// segments. Segment boundaries are invisible to the codec.
func ParseVorbisSegments(segments [][]byte, opts ...Option) (*Comment, error) {
	return parse(vorbis.NewComment(), segments, opts)
}

// ParseOpusTags parses an OpusTags comment block from a contiguous buffer.
// OpusTags shares the Vorbis comment layout with a different signature and
// no framing byte.
func ParseOpusTags(data []byte, opts ...Option) (*Comment, error) {
	return parse(vorbis.NewOpusTags(), [][]byte{data}, opts)
}

// ParseOpusTagsSegments parses an OpusTags comment block from segmented
// input.
func ParseOpusTagsSegments(segments [][]byte, opts ...Option) (*Comment, error) {
	return parse(vorbis.NewOpusTags(), segments, opts)
}

func parse(c *Comment, segments [][]byte, opts []Option) (*Comment, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	if options.maxFieldSize > 0 {
		c.SetMaxFieldSize(options.maxFieldSize)
	}

	cur := binary.NewSegmentReader(segments)
	if err := c.Parse(cur); err != nil {
		return c, err
	}

	if options.strictParsing && len(c.Diagnostics) > 0 {
		return c, fmt.Errorf("strict parsing failed: %s", c.Diagnostics[0].Message)
	}
	if options.ignoreDiagnostics {
		c.Diagnostics = nil
	}
	return c, nil
}
