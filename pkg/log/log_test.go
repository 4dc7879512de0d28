package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The forwarders must be usable before Init/NewLog runs; config loading logs
// while the configured logger does not exist yet.
func TestForwardersUsableBeforeInit(t *testing.T) {
	require.NotPanics(t, func() {
		Infof("config file loaded: %s", "conf.d/config.toml")
		Infow("config file loaded", "path", "conf.d/config.toml")
		Errorf("failed to unmarshal configuration file: %v", "bad toml")
	})
}

func TestNewLogInstallsConfiguredLogger(t *testing.T) {
	require.NotNil(t, GetLogger())

	newLogger, err := NewLog(SetDefaults())
	require.NoError(t, err)
	require.NotNil(t, newLogger)
	assert.NotNil(t, GetLogger())
}

func TestValidateRequiresPathForFileOutput(t *testing.T) {
	conf := &Conf{Output: "file"}
	require.Error(t, conf.Validate())

	conf.Path = "./logs"
	require.NoError(t, conf.Validate())
	assert.Equal(t, 100, conf.RotateSize)
	assert.Equal(t, 10, conf.RotateNum)
	assert.Equal(t, 7, conf.KeepDays)
}
