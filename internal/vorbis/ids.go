// Package vorbis implements parsing and writing of Vorbis comment blocks,
// the tag-metadata format shared by the Vorbis/Ogg codec family, FLAC and
// Opus. Fields are UTF-8 "IDENTIFIER=value" records with 32-bit
// little-endian length prefixes.
package vorbis

import "github.com/simonhull/vorbistag/internal/types"

// Raw Vorbis comment identifiers for known fields.
const (
	idAlbum           = "ALBUM"
	idArtist          = "ARTIST"
	idComment         = "COMMENT"
	idCover           = "METADATA_BLOCK_PICTURE"
	idDate            = "DATE"
	idTitle           = "TITLE"
	idGenre           = "GENRE"
	idTrackNumber     = "TRACKNUMBER"
	idDiskNumber      = "DISKNUMBER"
	idPartNumber      = "PARTNUMBER"
	idComposer        = "COMPOSER"
	idEncodedBy       = "ENCODED-BY"
	idEncoderSettings = "ENCODER"
	idDescription     = "DESCRIPTION"
	idLabel           = "LABEL"
	idPerformer       = "PERFORMER"
	idLyricist        = "LYRICIST"
)

// fieldIDs maps known fields to their raw identifiers. knownFields is the
// reverse direction, derived once below; both are read-only after package
// initialization, so tags from different containers can share them freely.
var fieldIDs = map[types.KnownField]string{
	types.FieldAlbum:           idAlbum,
	types.FieldArtist:          idArtist,
	types.FieldComment:         idComment,
	types.FieldCover:           idCover,
	types.FieldYear:            idDate,
	types.FieldTitle:           idTitle,
	types.FieldGenre:           idGenre,
	types.FieldTrackPosition:   idTrackNumber,
	types.FieldDiskPosition:    idDiskNumber,
	types.FieldPartNumber:      idPartNumber,
	types.FieldComposer:        idComposer,
	types.FieldEncoder:         idEncodedBy,
	types.FieldEncoderSettings: idEncoderSettings,
	types.FieldDescription:     idDescription,
	types.FieldRecordLabel:     idLabel,
	types.FieldPerformers:      idPerformer,
	types.FieldLyricist:        idLyricist,
}

var knownFields = func() map[string]types.KnownField {
	m := make(map[string]types.KnownField, len(fieldIDs))
	for field, id := range fieldIDs {
		m[id] = field
	}
	return m
}()

// multiValued enumerates the fields that are inherently multi-valued in
// Vorbis streams: repeated COMMENT and METADATA_BLOCK_PICTURE records are
// common, and the Vorbis tagging convention also emits one GENRE/PERFORMER
// record per value. SetValue appends for these and replaces for everything
// else.
var multiValued = map[types.KnownField]bool{
	types.FieldComment:    true,
	types.FieldCover:      true,
	types.FieldGenre:      true,
	types.FieldPerformers: true,
}
