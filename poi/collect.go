// SPDX-License-Identifier: MIT

package poi

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Collect queries categories in order and returns the first one that yields at
// least one usable point. Features with invalid geometry are skipped and logged.
// Source errors abort the search.
//
// Errors: ErrNoPOIsFound when every category comes back empty.
func Collect(ctx context.Context, src Source, categories []Category, logger *zap.Logger) (*Collection, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, c := range categories {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("poi: collect %s: %w", c, err)
		}
		features, err := src.Features(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("poi: query %s: %w", c, err)
		}

		col := &Collection{Category: c}
		for _, f := range features {
			if f.Geometry == nil {
				col.Skipped++
				logger.Warn("skipping poi without geometry", zap.String("category", c.String()), zap.String("id", f.ID))
				continue
			}
			pt, err := f.Geometry.Representative()
			if err != nil {
				col.Skipped++
				logger.Warn("skipping poi", zap.String("category", c.String()), zap.String("id", f.ID), zap.Error(err))
				continue
			}
			col.Features = append(col.Features, f)
			col.Points = append(col.Points, pt)
		}

		if len(col.Points) > 0 {
			logger.Info("pois collected",
				zap.String("category", c.String()),
				zap.Int("count", len(col.Points)),
				zap.Int("skipped", col.Skipped),
			)

			return col, nil
		}
		logger.Info("no usable pois, trying next category", zap.String("category", c.String()))
	}

	return nil, fmt.Errorf("%w: tried %v", ErrNoPOIsFound, categories)
}
