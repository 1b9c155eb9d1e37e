package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/fitfriend/fitfriend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execConfig(run func(*bytes.Buffer) error) (string, error) {
	stdout := new(bytes.Buffer)
	err := run(stdout)
	return stdout.String(), err
}

func configGet(homeDir, key string) (string, error) {
	return execConfig(func(buf *bytes.Buffer) error {
		cmd := configGetCmd
		cmd.SetOut(buf)
		return runConfigGet(cmd, homeDir, key)
	})
}

func configSet(homeDir, key, value string) (string, error) {
	return execConfig(func(buf *bytes.Buffer) error {
		cmd := configSetCmd
		cmd.SetOut(buf)
		return runConfigSet(cmd, homeDir, key, value)
	})
}

func TestConfigGetAll(t *testing.T) {
	t.Setenv(config.EnvBackend, "")

	stdout, err := configGet(t.TempDir(), "")
	require.NoError(t, err)

	assert.Contains(t, stdout, "roster:")
	assert.Contains(t, stdout, "Alex P., Jamie L., Casey B., Jordan M., MySelf")
	assert.Contains(t, stdout, "backend:")
	assert.Contains(t, stdout, "file")
	assert.Contains(t, stdout, "quota_bytes:")
}

func TestConfigGetSingleKey(t *testing.T) {
	t.Setenv(config.EnvBackend, "")

	stdout, err := configGet(t.TempDir(), "backend")
	require.NoError(t, err)
	assert.Equal(t, "file\n", stdout)

	_, err = configGet(t.TempDir(), "colour")
	assert.Error(t, err)
}

func TestConfigGetShowsEnvOverride(t *testing.T) {
	t.Setenv(config.EnvBackend, "memory")

	stdout, err := configGet(t.TempDir(), "backend")
	require.NoError(t, err)
	assert.Equal(t, "memory\n", stdout)
}

func TestConfigSetPersists(t *testing.T) {
	t.Setenv(config.EnvBackend, "")
	home := t.TempDir()

	stdout, err := configSet(home, "backend", "sqlite")
	require.NoError(t, err)
	assert.Contains(t, stdout, "set")
	assert.Contains(t, stdout, "sqlite")

	cfg, err := config.Read(home)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Backend)

	_, err = configSet(home, "quota_bytes", "5000")
	require.NoError(t, err)
	cfg, err = config.Read(home)
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.QuotaBytes)
	assert.Equal(t, "sqlite", cfg.Backend)
}

func TestConfigSetDoesNotPersistEnvOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.EnvBackend, "memory")

	_, err := configSet(home, "quota_bytes", "10")
	require.NoError(t, err)

	cfg, err := config.Read(home)
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Backend)
}

func TestConfigSetRejects(t *testing.T) {
	home := t.TempDir()

	_, err := configSet(home, "roster", "A,B")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only")

	_, err = configSet(home, "backend", "cloud")
	require.Error(t, err)
	assert.NoFileExists(t, config.Path(home))
}

func TestConfigPath(t *testing.T) {
	home := t.TempDir()

	stdout, err := execConfig(func(buf *bytes.Buffer) error {
		cmd := configPathCmd
		cmd.SetOut(buf)
		return runConfigPath(cmd, home)
	})
	require.NoError(t, err)
	assert.Contains(t, stdout, filepath.Join(home, ".fitfriend", "config.json"))
	assert.Contains(t, stdout, filepath.Join(home, ".fitfriend", "data"))
}

func TestConfigGroupSubcommands(t *testing.T) {
	names := make([]string, 0, len(configCmd.Commands()))
	for _, c := range configCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"get", "set", "path"}, names)
}
