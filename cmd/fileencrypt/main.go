package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"file-encrypt/internal/batch"
	"file-encrypt/internal/config"
	"file-encrypt/internal/logging"
	"file-encrypt/internal/xtea"

	"go.uber.org/zap"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	salt := flag.String("salt", "", "Salt used as key material (default: config or $"+config.SaltEnv+")")
	decrypt := flag.Bool("decrypt", false, "Decrypt the given files instead of encrypting them")
	outputDir := flag.String("output", "", "Output directory (default: current directory)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	keepNames := flag.Bool("keep-names", false, "Leave file names unencrypted")
	selfTest := flag.Bool("selftest", false, "Check the cipher against known test vectors and exit")
	verbose := flag.Bool("verbose", false, "Enable debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] file...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	log, err := logging.New(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	flags := config.Flags{
		Salt:      *salt,
		OutputDir: *outputDir,
		Workers:   *workers,
	}
	if *keepNames {
		off := false
		flags.EncryptNames = &off
	}
	cfg.Resolve(flags)

	engine := xtea.New(cfg.Salt, xtea.WithLogger(log))

	if *selfTest {
		if !engine.SelfTest() {
			fmt.Println("Self-test: FAILED")
			os.Exit(1)
		}
		fmt.Println("Self-test: OK")
		return
	}

	files := flag.Args()
	if len(files) == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if cfg.Salt == "" {
		log.Warn("no salt configured, using the all-zero key")
	}

	mode := batch.Encrypt
	if *decrypt {
		mode = batch.Decrypt
	}

	fmt.Printf("XTEA-CBC file %s\n", mode)
	fmt.Printf("Files: %d, Workers: %d\n", len(files), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()

	results := batch.Run(ctx, batch.Config{
		Engine:       engine,
		Mode:         mode,
		OutputDir:    cfg.OutputDir,
		EncryptNames: cfg.NamesEncrypted(),
		Workers:      cfg.Workers,
		Logger:       log,
	}, files)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	success := 0
	for _, r := range results {
		if r.Success {
			success++
			fmt.Printf("  %s -> %s\n", r.Input, r.Output)
		}
	}
	fmt.Printf("Processed: %d/%d\n", success, len(files))

	if err := batch.WriteManifest(cfg.ManifestFile, mode, results); err != nil {
		log.Warn("manifest write failed", zap.String("path", cfg.ManifestFile), zap.Error(err))
	} else {
		fmt.Printf("Manifest: %s\n", cfg.ManifestFile)
	}

	if err := batch.Errors(results); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed:\n%v\n", err)
		os.Exit(1)
	}
}
