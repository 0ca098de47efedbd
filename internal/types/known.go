package types

// KnownField is a format-independent semantic tag category.
//
// Format codecs translate between KnownField and their raw identifiers
// (e.g. FieldArtist <-> "ARTIST" for Vorbis comments, <-> "TPE1" for ID3v2).
// Identifiers with no matching category classify as FieldUnknown; that is a
// sentinel, not an error, so vendor-specific tags round-trip untouched.
type KnownField int

const (
	// FieldUnknown is the sentinel for unrecognized identifiers.
	FieldUnknown KnownField = iota

	FieldAlbum
	FieldArtist
	FieldComment
	FieldCover
	FieldYear
	FieldTitle
	FieldGenre
	FieldTrackPosition
	FieldDiskPosition
	FieldPartNumber
	FieldComposer
	FieldEncoder
	FieldEncoderSettings
	FieldDescription
	FieldRecordLabel
	FieldPerformers
	FieldLyricist

	// FieldVendor is the out-of-band vendor string owned by the tag itself,
	// never stored in the field map.
	FieldVendor
)

var knownFieldNames = map[KnownField]string{
	FieldUnknown:         "Unknown",
	FieldAlbum:           "Album",
	FieldArtist:          "Artist",
	FieldComment:         "Comment",
	FieldCover:           "Cover",
	FieldYear:            "Year",
	FieldTitle:           "Title",
	FieldGenre:           "Genre",
	FieldTrackPosition:   "TrackPosition",
	FieldDiskPosition:    "DiskPosition",
	FieldPartNumber:      "PartNumber",
	FieldComposer:        "Composer",
	FieldEncoder:         "Encoder",
	FieldEncoderSettings: "EncoderSettings",
	FieldDescription:     "Description",
	FieldRecordLabel:     "RecordLabel",
	FieldPerformers:      "Performers",
	FieldLyricist:        "Lyricist",
	FieldVendor:          "Vendor",
}

// String returns the category name.
func (f KnownField) String() string {
	if name, ok := knownFieldNames[f]; ok {
		return name
	}
	return "Unknown"
}
