// Package vorbistag parses and writes Vorbis comment metadata blocks.
//
// Vorbis comments are the tag format shared by the Vorbis/Ogg codec family,
// FLAC and Opus: a vendor string followed by length-prefixed
// "IDENTIFIER=value" records. vorbistag models the block with a generic
// field multimap plus a translation layer between format-independent known
// fields (Title, Artist, ...) and raw per-format identifiers ("TITLE",
// "ARTIST", ...).
//
// # Quick Start
//
// Parsing a raw comment block:
//
//	comment, err := vorbistag.ParseVorbis(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(comment.Value(vorbistag.FieldArtist))
//
//	for _, d := range comment.Diagnostics {
//		log.Printf("diagnostic: %s", d)
//	}
//
// Writing one back:
//
//	comment := vorbistag.NewComment()
//	comment.SetVendor(vorbistag.Text("vorbistag"))
//	comment.SetValue(vorbistag.FieldTitle, vorbistag.Text("Example"))
//	data, err := comment.Bytes()
//
// # Graceful Degradation
//
// Corrupt input degrades gracefully wherever the format's structure permits
// it. One malformed record never invalidates the rest of the block: the
// record is dropped, a warning diagnostic is recorded, and parsing
// continues. Only a bad signature or a truncated stream aborts the parse,
// and even then the consumed size up to the failure point is recorded.
//
// Callers should always inspect Comment.Diagnostics after a parse or make
// call, whether or not it returned an error. WithStrictParsing turns any
// diagnostic into an error for callers that would rather fail fast.
//
// # Segmented Input
//
// Ogg splits logical packets across physical page segments. The parse entry
// points accept either a contiguous buffer or a slice of segments; segment
// boundaries are invisible to the codec.
//
// # Unknown Fields
//
// Identifiers the library does not recognize round-trip unchanged and
// classify as FieldUnknown, never an error, so vendor-specific extensions
// survive editing.
//
// # Scope
//
// vorbistag handles the comment block itself. Locating the block inside a
// container (Ogg page walking, FLAC metadata block headers) and rewriting
// whole files are the caller's concern.
package vorbistag
