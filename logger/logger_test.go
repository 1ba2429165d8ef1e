package logger

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefault_NoopBeforeInitialize(t *testing.T) {
	require.NotNil(t, Default())
	assert.NotPanics(t, func() {
		Info("not initialised")
		Error(errors.New("boom"))
		Error(nil)
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"verbose", zapcore.InvalidLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLevel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInitialize_InvalidLevel(t *testing.T) {
	err := Initialize(Config{Level: "loud"})
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestInitialize_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clubstake.log")
	require.NoError(t, Initialize(Config{Level: "warn", OutputPath: path}))
	t.Cleanup(func() { log = zap.NewNop() })

	Info("dropped below level")
	Warn("kept", zap.String("club", "alpha"))
	Flush(0)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kept")
	assert.Contains(t, string(data), `"club":"alpha"`)
	assert.NotContains(t, string(data), "dropped below level")
}

func TestFromContext_NilContext(t *testing.T) {
	//nolint:staticcheck // nil context is handled explicitly
	assert.Equal(t, Default(), FromContext(nil))
}

func TestWithContext(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	//nolint:staticcheck // nil context is handled explicitly
	assert.Same(t, base, WithContext(base, nil))

	WithContext(base, context.Background()).Info("scoped", zap.String("job", "sweep"))
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "scoped", entry.Message)
	assert.Equal(t, "sweep", entry.ContextMap()["job"])
}
