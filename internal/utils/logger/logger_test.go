package logger

import (
	"context"
	"testing"

	"golang.org/x/exp/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		env           string
		expectedLevel slog.Level
	}{
		{
			name:          "local environment",
			env:           envLocal,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "dev environment",
			env:           envDev,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "prod environment",
			env:           envProd,
			expectedLevel: slog.LevelInfo,
		},
		{
			name:          "unknown environment falls back to local",
			env:           "staging",
			expectedLevel: slog.LevelDebug,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.env)
			require.NotNil(t, log)

			ctx := context.Background()
			assert.True(t, log.Enabled(ctx, tt.expectedLevel))
			if tt.expectedLevel > slog.LevelDebug {
				assert.False(t, log.Enabled(ctx, slog.LevelDebug))
			}
		})
	}
}
