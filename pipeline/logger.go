// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger builds a production (JSON) or development (console) zap logger at the configured level.
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	if cfg.Level != "" {
		lvl, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("%w: log level %q", ErrInvalidConfig, cfg.Level)
		}
		zc.Level = lvl
	}

	return zc.Build()
}
