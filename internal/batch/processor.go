package batch

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"file-encrypt/internal/xtea"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxNameLen is the common file name limit (NAME_MAX on Linux and macOS).
const maxNameLen = 255

// Mode selects the direction of a batch run.
type Mode int

const (
	Encrypt Mode = iota
	Decrypt
)

func (m Mode) String() string {
	if m == Decrypt {
		return "decrypt"
	}
	return "encrypt"
}

// Config holds all shared resources for a batch run.
type Config struct {
	Engine       *xtea.Engine
	Mode         Mode
	OutputDir    string
	EncryptNames bool
	Workers      int
	Logger       *zap.Logger
	// Progress receives periodic progress lines. Defaults to os.Stdout.
	Progress io.Writer
}

// Result holds the outcome of processing one file.
type Result struct {
	Input   string
	Output  string
	Bytes   int
	Success bool
	Error   string
}

// Run processes all files using a worker pool. Results are in input order.
// A cancelled context stops files that have not started yet.
func Run(ctx context.Context, cfg Config, paths []string) []Result {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Progress == nil {
		cfg.Progress = os.Stdout
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	total := len(paths)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				reportProgress(cfg.Progress, processed.Load(), total, time.Since(start))
			}
		}
	}()

	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			results[i] = Result{Input: path, Error: err.Error()}
			continue
		}
		g.Go(func() error {
			results[i] = processFile(cfg, path)
			processed.Add(1)
			return nil
		})
	}
	g.Wait()
	close(done)

	return results
}

func reportProgress(w io.Writer, done int64, total int, elapsed time.Duration) {
	if done <= 0 {
		return
	}
	rate := float64(done) / elapsed.Seconds()
	fmt.Fprintf(w, "  [%d/%d] %.1f files/sec\n", done, total, rate)
}

// Errors combines the errors of all failed results, or returns nil.
func Errors(results []Result) error {
	var err error
	for _, r := range results {
		if !r.Success {
			err = multierr.Append(err, fmt.Errorf("%s: %s", r.Input, r.Error))
		}
	}
	return err
}

func processFile(cfg Config, path string) Result {
	out, n, err := transformFile(cfg, path)
	if err != nil {
		cfg.Logger.Debug("file failed", zap.String("input", path), zap.Error(err))
		return Result{Input: path, Output: out, Error: err.Error()}
	}
	cfg.Logger.Debug("file done", zap.String("input", path), zap.String("output", out))
	return Result{Input: path, Output: out, Bytes: n, Success: true}
}

func transformFile(cfg Config, path string) (string, int, error) {
	outName, err := outputName(cfg, filepath.Base(path))
	if err != nil {
		return "", 0, err
	}
	outPath := filepath.Join(cfg.OutputDir, outName)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", 0, fmt.Errorf("read %s: %w", path, err)
	}

	var payload []byte
	switch cfg.Mode {
	case Encrypt:
		payload = []byte(cfg.Engine.Encrypt(data))
	case Decrypt:
		payload, err = decryptContents(cfg.Engine, data)
		if err != nil {
			return outPath, 0, fmt.Errorf("decrypt %s: %w", path, err)
		}
	default:
		return "", 0, fmt.Errorf("unknown mode %d", cfg.Mode)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return outPath, 0, err
	}
	if err := os.WriteFile(outPath, payload, 0644); err != nil {
		return outPath, 0, fmt.Errorf("write %s: %w", outPath, err)
	}
	return outPath, len(payload), nil
}

// decryptContents decodes and opens an encrypted file body. An empty file
// encrypts to the IV alone; that stream is accepted here and gives an empty
// file, although the engine itself rejects it as truncated.
func decryptContents(e *xtea.Engine, data []byte) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: base64: %v", xtea.ErrMalformedInput, err)
	}
	if len(raw) == xtea.BlockSize {
		return []byte{}, nil
	}
	return e.Open(raw)
}

// outputName maps an input base name to its output base name. The extension
// is kept in the clear.
func outputName(cfg Config, base string) (string, error) {
	if !cfg.EncryptNames {
		return base, nil
	}
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		// Dotfiles: nothing to hide and an empty name cannot be decrypted.
		return base, nil
	}

	if cfg.Mode == Encrypt {
		name := EncryptName(cfg.Engine, stem) + ext
		if len(name) > maxNameLen {
			return "", fmt.Errorf("%s: encrypted name is %d bytes, limit is %d", base, len(name), maxNameLen)
		}
		return name, nil
	}
	name, err := DecryptName(cfg.Engine, stem)
	if err != nil {
		return "", err
	}
	return name + ext, nil
}
