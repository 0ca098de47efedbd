package vorbis

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/simonhull/vorbistag/internal/binary"
	"github.com/simonhull/vorbistag/internal/types"
)

const (
	contextParse = "parsing Vorbis comment"
	contextMake  = "making Vorbis comment"
)

// Block signatures. A Vorbis comment block opens with packet type 0x03 and
// the "vorbis" marker; the OpusTags variant uses an 8-byte ASCII signature
// and drops the framing byte, but is otherwise the identical layout.
var (
	vorbisSignature = []byte{0x03, 'v', 'o', 'r', 'b', 'i', 's'}
	opusSignature   = []byte("OpusTags")
)

// Comment is a Vorbis comment tag: a vendor string plus an ordered,
// case-insensitive multimap of "IDENTIFIER=value" records.
//
// The vendor string is owned directly by the Comment, not stored in the
// field map. Records survive a parse/make round-trip byte for byte, known
// or not; unknown identifiers classify as types.FieldUnknown rather than
// failing, so vendor-specific extensions pass through safely.
//
// A Comment is not safe for concurrent use; Parse and Make complete fully
// before returning and never expose partial state mid-operation.
//
// The zero Comment is a plain Vorbis comment; use NewOpusTags for the Opus
// variant.
type Comment struct {
	// Diagnostics accumulates notifications from the last Parse or Make,
	// in order. Inspect it after every call, whether or not an error was
	// returned; recoverable issues (dropped records, substituted values)
	// appear only here.
	Diagnostics []types.Diagnostic

	vendor       types.Value
	fields       types.FieldMap
	size         int64
	magic        []byte // nil means vorbisSignature
	unframed     bool
	maxFieldSize uint32 // 0 means DefaultMaxFieldSize
}

// NewComment creates an empty Vorbis comment (signature 0x03 "vorbis",
// framing byte present).
func NewComment() *Comment {
	return &Comment{}
}

// NewOpusTags creates an empty OpusTags comment: same field layout with the
// "OpusTags" signature and no framing byte.
func NewOpusTags() *Comment {
	return &Comment{magic: opusSignature, unframed: true}
}

func (c *Comment) signature() []byte {
	if c.magic == nil {
		return vorbisSignature
	}
	return c.magic
}

func (c *Comment) framed() bool {
	return !c.unframed
}

// SetMaxFieldSize overrides the sanity bound on a single record's declared
// length. Zero restores DefaultMaxFieldSize.
func (c *Comment) SetMaxFieldSize(n uint32) {
	c.maxFieldSize = n
}

// ID resolves a known field to its raw Vorbis identifier, or "" when the
// format has no identifier for it.
func (c *Comment) ID(field types.KnownField) string {
	return fieldIDs[field]
}

// KnownField classifies a raw identifier, case-insensitively. Unrecognized
// identifiers return types.FieldUnknown, never an error.
func (c *Comment) KnownField(id string) types.KnownField {
	return knownFields[strings.ToUpper(id)]
}

// Value returns the most relevant stored value for a known field, or the
// empty Value when none is stored.
func (c *Comment) Value(field types.KnownField) types.Value {
	if field == types.FieldVendor {
		return c.vendor
	}
	id := fieldIDs[field]
	if id == "" {
		return types.Value{}
	}
	return c.fields.First(id)
}

// SetValue stores a value for a known field.
//
// Singular fields (title, album, ...) replace any existing records for the
// identifier; inherently multi-valued fields (comments, cover art, genres,
// performers) append. Setting an empty value on a singular field removes
// the records. Returns false when the field has no Vorbis identifier.
func (c *Comment) SetValue(field types.KnownField, v types.Value) bool {
	if field == types.FieldVendor {
		c.vendor = v
		return true
	}
	id := fieldIDs[field]
	if id == "" {
		return false
	}
	if multiValued[field] {
		if v.IsEmpty() {
			return true
		}
		return c.fields.Add(id, v)
	}
	return c.fields.Set(id, v)
}

// Vendor returns the vendor string value.
func (c *Comment) Vendor() types.Value {
	return c.vendor
}

// SetVendor sets the vendor string value.
func (c *Comment) SetVendor(v types.Value) {
	c.vendor = v
}

// FieldCount returns the total number of stored records across all
// identifiers. The vendor string does not count.
func (c *Comment) FieldCount() int {
	return c.fields.Len()
}

// Size returns the encoded size consumed by the last Parse, including the
// signature and framing byte. After a truncated parse it holds the partial
// size up to the truncation point.
func (c *Comment) Size() int64 {
	return c.size
}

// Fields returns an iterator over (identifier, value) pairs in insertion
// order, for generic display and editing tools.
func (c *Comment) Fields() iter.Seq2[string, types.Value] {
	return c.fields.All()
}

// Get returns all values stored under a raw identifier.
func (c *Comment) Get(id string) []types.Value {
	return c.fields.Get(id)
}

// Add appends a value under a raw identifier.
func (c *Comment) Add(id string, v types.Value) bool {
	return c.fields.Add(id, v)
}

// Delete removes all values stored under a raw identifier.
func (c *Comment) Delete(id string) {
	c.fields.Delete(id)
}

// Parse reads a comment block from the cursor.
//
// Layout: signature, 4-byte LE vendor length, vendor bytes, 4-byte LE field
// count, then length-prefixed "identifier=value" records, then (for Vorbis)
// one framing byte, skipped without validating its value.
//
// A bad signature aborts immediately with a *types.StructuralError and zero
// inserted fields. Truncation anywhere aborts with a *types.TruncatedError
// after recording the partial consumed size. A malformed individual record
// is dropped with a warning diagnostic and never invalidates the rest.
func (c *Comment) Parse(cur *binary.SegmentReader) error {
	c.Diagnostics = nil
	c.size = 0
	start := cur.Offset()

	sig := c.signature()
	got, err := cur.Read(len(sig), "signature")
	if err != nil {
		return c.truncated(cur, start, err)
	}
	if !bytes.Equal(got, sig) {
		c.critical(contextParse, "signature is invalid", start)
		return &types.StructuralError{Offset: start, Reason: "signature mismatch"}
	}

	// Vendor string: length-prefixed raw bytes in the declared encoding.
	// The length is not bounds-checked beyond the cursor's own truncation
	// detection.
	vendorLen, err := cur.ReadUint32LE("vendor length")
	if err != nil {
		return c.truncated(cur, start, err)
	}
	vendor, err := cur.Read(int(vendorLen), "vendor string")
	if err != nil {
		return c.truncated(cur, start, err)
	}
	c.vendor = types.Text(string(vendor))

	count, err := cur.ReadUint32LE("field count")
	if err != nil {
		return c.truncated(cur, start, err)
	}

	maxSize := c.maxFieldSize
	if maxSize == 0 {
		maxSize = DefaultMaxFieldSize
	}
	for i := uint32(0); i < count; i++ {
		field, err := parseField(cur, int(i), maxSize)
		if err != nil {
			var trunc *types.TruncatedError
			if errors.As(err, &trunc) {
				return c.truncated(cur, start, err)
			}
			c.warnAt(contextParse, err.Error(), cur.Offset())
			continue
		}
		if !c.fields.Add(field.ID, field.Value) {
			c.warnAt(contextParse, fmt.Sprintf("dropping empty field %d", i), cur.Offset())
		}
	}

	if c.framed() {
		if err := cur.Skip(1, "framing byte"); err != nil {
			return c.truncated(cur, start, err)
		}
	}
	c.size = cur.Offset() - start
	return nil
}

// truncated records the partial consumed size and a critical diagnostic
// before letting a truncation error propagate.
func (c *Comment) truncated(cur *binary.SegmentReader, start int64, err error) error {
	c.size = cur.Offset() - start
	c.critical(contextParse, "comment block is truncated", cur.Offset())
	return err
}

// Make writes the comment block to w.
//
// The non-empty, renderable field subset is computed before the count is
// written, so the count and the serialized set are the same set by
// construction. An unrenderable vendor is substituted with an empty string
// and an unrenderable field is skipped; both leave a warning diagnostic and
// never abort the write. Writer errors propagate; there is no rollback,
// so atomicity is the sink owner's responsibility.
func (c *Comment) Make(w io.Writer) error {
	c.Diagnostics = nil

	vendor, err := c.vendor.Text()
	if err != nil {
		c.warnAt(contextMake, "cannot convert the assigned vendor to text, writing empty vendor", 0)
		vendor = ""
	}

	var payloads [][]byte
	for id, v := range c.fields.All() {
		if v.IsEmpty() {
			continue
		}
		payload, err := renderField(id, v)
		if err != nil {
			c.warnAt(contextMake, fmt.Sprintf("cannot serialize field %q: %v", id, err), 0)
			continue
		}
		payloads = append(payloads, payload)
	}

	bw := binary.NewWriter(w)
	if err := bw.WriteBytes(c.signature()); err != nil {
		return err
	}
	if err := bw.WriteUint32LE(uint32(len(vendor))); err != nil {
		return err
	}
	if err := bw.WriteString(vendor); err != nil {
		return err
	}
	if err := bw.WriteUint32LE(uint32(len(payloads))); err != nil {
		return err
	}
	for _, payload := range payloads {
		if err := bw.WriteUint32LE(uint32(len(payload))); err != nil {
			return err
		}
		if err := bw.WriteBytes(payload); err != nil {
			return err
		}
	}
	if c.framed() {
		return bw.WriteByte(0x01)
	}
	return nil
}

// Bytes serializes the comment block to a new buffer.
func (c *Comment) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Make(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *Comment) warnAt(context, message string, offset int64) {
	c.Diagnostics = append(c.Diagnostics, types.Diagnostic{
		Severity: types.SeverityWarning,
		Context:  context,
		Message:  message,
		Offset:   offset,
	})
}

func (c *Comment) critical(context, message string, offset int64) {
	c.Diagnostics = append(c.Diagnostics, types.Diagnostic{
		Severity: types.SeverityCritical,
		Context:  context,
		Message:  message,
		Offset:   offset,
	})
}
