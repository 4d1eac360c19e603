// Package batch provides fixed-size chunking and sequential batch
// processing. Processing is deliberately sequential, not concurrent, so only
// one batch's prompt and response are materialized at a time and the model
// endpoint's per-request expectations are respected.
package batch

import (
	"context"
)

// Chunk splits items into fixed-size chunks; the last chunk may be short.
// A size below 1 yields a single chunk with all items.
func Chunk[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}
	if size < 1 {
		return [][]T{items}
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}

// ProcessSequentially chunks items and runs fn on each chunk, waiting for a
// chunk's results before starting the next. Results are concatenated in
// input order. The first chunk error aborts the run.
func ProcessSequentially[T, R any](ctx context.Context, items []T, size int, fn func(ctx context.Context, chunk []T) ([]R, error)) ([]R, error) {
	var results []R
	for _, chunk := range Chunk(items, size) {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		chunkResults, err := fn(ctx, chunk)
		if err != nil {
			return results, err
		}
		results = append(results, chunkResults...)
	}
	return results, nil
}
