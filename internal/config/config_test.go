package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"salt":"dave","workers":3,"encrypt_names":false}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dave", cfg.Salt)
	assert.Equal(t, 3, cfg.Workers)
	assert.False(t, cfg.NamesEncrypted())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "config: parse")
}

func TestResolveDefaults(t *testing.T) {
	t.Setenv(SaltEnv, "")
	os.Unsetenv(SaltEnv)

	var cfg Config
	cfg.Resolve(Flags{OutputDir: "/tmp/out"})

	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, filepath.Join("/tmp/out", "manifest.json"), cfg.ManifestFile)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.True(t, cfg.NamesEncrypted())
	assert.Equal(t, 512, cfg.VisualSize)
}

func TestResolvePrecedence(t *testing.T) {
	t.Setenv(SaltEnv, "from-env")

	cfg := Config{Salt: "from-file", Workers: 2}
	cfg.Resolve(Flags{})
	assert.Equal(t, "from-env", cfg.Salt)
	assert.Equal(t, 2, cfg.Workers)

	off := false
	cfg.Resolve(Flags{Salt: "from-flag", Workers: 7, EncryptNames: &off})
	assert.Equal(t, "from-flag", cfg.Salt)
	assert.Equal(t, 7, cfg.Workers)
	assert.False(t, cfg.NamesEncrypted())
}
