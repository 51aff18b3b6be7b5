package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	l, err := New("warn", "json")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	_, err = New("loud", "")
	assert.Error(t, err)
	_, err = New("info", "xml")
	assert.Error(t, err)
}

func TestGlobal(t *testing.T) {
	defer SetGlobal(nil)

	assert.NotNil(t, L())
	l := zap.NewExample()
	SetGlobal(l)
	assert.Same(t, l, L())
	SetGlobal(nil)
	assert.NotSame(t, l, L())
}
