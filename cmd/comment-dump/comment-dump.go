package main

import (
	"fmt"
	"os"

	"github.com/simonhull/vorbistag"
)

// Useful test tool to confirm what we're able to actually read from a raw
// Vorbis comment block. Expects the block bytes in a file, e.g. extracted
// from a FLAC VORBIS_COMMENT metadata block or an Ogg comment packet.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: comment-dump [-opus] <block-file>")
		os.Exit(1)
	}

	args := os.Args[1:]
	opus := false
	if args[0] == "-opus" {
		opus = true
		args = args[1:]
		if len(args) == 0 {
			fmt.Println("Usage: comment-dump [-opus] <block-file>")
			os.Exit(1)
		}
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	var comment *vorbistag.Comment
	if opus {
		comment, err = vorbistag.ParseOpusTags(data)
	} else {
		comment, err = vorbistag.ParseVorbis(data)
	}

	if vendor := comment.Vendor(); !vendor.IsEmpty() {
		fmt.Printf("vendor: %s\n", vendor)
	}
	fmt.Printf("fields: %d (consumed %d bytes)\n", comment.FieldCount(), comment.Size())

	for id, value := range comment.Fields() {
		known := comment.KnownField(id)
		if known != vorbistag.FieldUnknown {
			fmt.Printf("  %s=%s  [%s]\n", id, value, known)
		} else {
			fmt.Printf("  %s=%s\n", id, value)
		}
	}

	for _, d := range comment.Diagnostics {
		fmt.Printf("diagnostic: %s\n", d)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
