package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { Log.SetLevel(logrus.InfoLevel) })

	require.NoError(t, SetLevel("debug"))
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())

	assert.Error(t, SetLevel("chatty"))
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel(), "bad names leave the level alone")
}

func TestWithSystem(t *testing.T) {
	entry := WithSystem("persistence")
	assert.Equal(t, "persistence", entry.Data["system"])
}
