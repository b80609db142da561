package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// SaltEnv names the environment variable that overrides the configured salt.
const SaltEnv = "FILE_ENCRYPT_SALT"

// Config holds the salt, output location and worker settings.
type Config struct {
	Salt string `json:"salt"`

	// Paths
	OutputDir    string `json:"output_dir"`
	ManifestFile string `json:"manifest_file"`

	// Batch settings
	Workers      int   `json:"workers"`
	EncryptNames *bool `json:"encrypt_names"`

	// Visualiser settings
	VisualSize int `json:"visual_size"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority over the environment, which takes priority over
// the config file.
func (c *Config) Resolve(flags Flags) {
	if salt, ok := os.LookupEnv(SaltEnv); ok {
		c.Salt = salt
	}
	if flags.Salt != "" {
		c.Salt = flags.Salt
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.EncryptNames != nil {
		c.EncryptNames = flags.EncryptNames
	}

	if c.OutputDir == "" {
		cwd, _ := os.Getwd()
		c.OutputDir = cwd
	}
	if c.ManifestFile == "" {
		c.ManifestFile = filepath.Join(c.OutputDir, "manifest.json")
	} else if !filepath.IsAbs(c.ManifestFile) {
		c.ManifestFile = filepath.Join(c.OutputDir, c.ManifestFile)
	}

	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.EncryptNames == nil {
		on := true
		c.EncryptNames = &on
	}
	if c.VisualSize <= 0 {
		c.VisualSize = 512
	}
}

// NamesEncrypted reports whether file names are encrypted along with contents.
func (c *Config) NamesEncrypted() bool {
	return c.EncryptNames == nil || *c.EncryptNames
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Salt         string
	OutputDir    string
	Workers      int
	EncryptNames *bool
}
