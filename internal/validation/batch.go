package validation

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/structured-data-validator/internal/types"
)

// ValidateBlocks validates each block independently and concurrently, for example
// the ld+json scripts of one page. Results are returned in block order. The
// context only bounds the fan-out: a block already being validated runs to
// completion.
func ValidateBlocks(ctx context.Context, blocks []string, opts Options) ([]types.BlockResult, error) {
	return New(opts).ValidateBlocks(ctx, blocks)
}

// ValidateBlocks is the method form of the package-level ValidateBlocks.
func (v *Validator) ValidateBlocks(ctx context.Context, blocks []string) ([]types.BlockResult, error) {
	results := make([]types.BlockResult, len(blocks))

	g, ctx := errgroup.WithContext(ctx)
	if v.opts.Concurrency > 0 {
		g.SetLimit(v.opts.Concurrency)
	}

	for i, block := range blocks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = types.BlockResult{Index: i, Result: v.Validate(block)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	v.logger.Debug("validated blocks", "count", len(blocks))
	return results, nil
}
