package vorbistag

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParseMany parses multiple Vorbis comment blocks concurrently.
//
// Blocks are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input blocks. Each block
// gets its own Comment; nothing mutable is shared between goroutines.
//
// If any block fails fatally (bad signature, truncation), the whole call
// returns an error. Recoverable issues stay in each Comment's Diagnostics.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	comments, err := vorbistag.ParseMany(ctx, blocks...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, c := range comments {
//		fmt.Println(c.Value(vorbistag.FieldTitle))
//	}
func ParseMany(ctx context.Context, blocks ...[]byte) ([]*Comment, error) {
	if len(blocks) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU()) // Limit concurrent operations

	results := make([]*Comment, len(blocks))

	for i, block := range blocks {
		g.Go(func() error {
			// Check for cancellation
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			comment, err := ParseVorbis(block)
			if err != nil {
				return fmt.Errorf("block %d: %w", i, err)
			}

			results[i] = comment
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
