package ransac

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {

	type test struct {
		update func(cfg *Config)
		valid  bool
	}

	tests := map[string]test{
		"default": {
			update: func(cfg *Config) {},
			valid:  true,
		},
		"zero-trials": {
			update: func(cfg *Config) { cfg.Trials = 0 },
		},
		"negative-threshold": {
			update: func(cfg *Config) { cfg.Threshold = -0.1 },
		},
		"zero-threshold": {
			update: func(cfg *Config) { cfg.Threshold = 0 },
		},
		"nan-threshold": {
			update: func(cfg *Config) { cfg.Threshold = math.NaN() },
		},
		"negative-inlier-count": {
			update: func(cfg *Config) { cfg.InlierCountThreshold = -1 },
		},
		"negative-budget": {
			update: func(cfg *Config) { cfg.SquaredResidualThreshold = -1 },
		},
		"early-exit-without-count": {
			update: func(cfg *Config) {
				cfg.EarlyExit = true
				cfg.InlierCountThreshold = 0
			},
		},
		"zero-count-without-early-exit": {
			update: func(cfg *Config) { cfg.InlierCountThreshold = 0 },
			valid:  true,
		},
		"early-exit": {
			update: func(cfg *Config) {
				cfg.EarlyExit = true
				cfg.InlierCountThreshold = 10
			},
			valid: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.update(&cfg)
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}

}
