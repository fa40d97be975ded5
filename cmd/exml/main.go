// Command exml decrypts or encrypts SDD EXML containers.
//
// Usage:
//
//	exml [-decrypt|-encrypt] [-strict] [-v] <input> [<output>]
//	exml -batch <dir> [-out <dir>] [-workers N] [-strict]
//
// Without -encrypt the input is decrypted. The output defaults to
// "<input>-decrypted" or "<input>-encrypted".
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"sdd-exml/internal/batch"
	"sdd-exml/internal/config"
	"sdd-exml/internal/exml"
)

func usage() {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s [-decrypt|-encrypt] <input_file> [output_file]\n", name)
	fmt.Fprintf(os.Stderr, "       %s -batch <dir> [-out <dir>] [-workers N]\n", name)
	fmt.Fprintln(os.Stderr, "  Default mode: decrypt")
	fmt.Fprintln(os.Stderr, "  If output_file is not specified, a suffix is added to the input filename")
	flag.PrintDefaults()
}

func main() {
	decrypt := flag.Bool("decrypt", false, "Decrypt the input (default)")
	encrypt := flag.Bool("encrypt", false, "Encrypt the input")
	strict := flag.Bool("strict", false, "Warn when the padding trailer is out of range")
	verbose := flag.Bool("v", false, "Debug logging")
	configFile := flag.String("config", "", "Path to a JSON or YAML config file")
	batchDir := flag.String("batch", "", "Decrypt every .exml file in this directory")
	outDir := flag.String("out", "", "Output directory for -batch (default: next to inputs)")
	workers := flag.Int("workers", 0, "Worker goroutines for -batch (default: NumCPU)")

	flag.Usage = usage
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		OutputDir: *outDir,
		Strict:    *strict,
		Workers:   *workers,
		Verbose:   *verbose,
	}, nil)

	log, err := cfg.Logger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	codec := &exml.Codec{Strict: cfg.Strict, Logger: log}

	if *batchDir != "" {
		os.Exit(runBatch(cfg, codec, log, *batchDir))
	}

	if *decrypt && *encrypt {
		fmt.Fprintln(os.Stderr, "Error: -decrypt and -encrypt are mutually exclusive")
		os.Exit(1)
	}
	mode := exml.ModeDecrypt
	if *encrypt {
		mode = exml.ModeEncrypt
	}

	args := flag.Args()
	if len(args) < 1 || args[0] == "" {
		fmt.Fprintln(os.Stderr, "Error: input file required")
		usage()
		os.Exit(1)
	}
	input := args[0]
	output := exml.OutputPath(input, mode)
	if len(args) > 1 {
		output = args[1]
	}

	err = codec.ProcessFile(mode, input, output)
	switch {
	case errors.Is(err, exml.ErrMalformedPadding):
		// Output was written; the warning has been logged.
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if mode == exml.ModeEncrypt {
		fmt.Printf("Encrypted: %s -> %s\n", input, output)
	} else {
		fmt.Printf("Decrypted: %s -> %s\n", input, output)
	}
}

func runBatch(cfg config.Config, codec *exml.Codec, log *logrus.Logger, dir string) int {
	bc := batch.Config{
		InputDir:  dir,
		OutputDir: cfg.OutputDir,
		Codec:     codec,
		Workers:   cfg.Workers,
		Logger:    log,
	}

	jobs, err := batch.FindJobs(bc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if len(jobs) == 0 {
		fmt.Println("No .exml files found.")
		return 0
	}

	fmt.Printf("Containers: %d, Workers: %d\n", len(jobs), bc.Workers)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := batch.Run(bc, jobs)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	success, failed := 0, 0
	var failures []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			failures = append(failures, r)
		}
	}
	fmt.Printf("Decrypted: %d/%d\n", success, len(jobs))

	if len(failures) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(failures) < limit {
			limit = len(failures)
		}
		for _, f := range failures[:limit] {
			fmt.Printf("  %s: %s\n", filepath.Base(f.Input), f.Error)
		}
	}

	manifestDir := cfg.OutputDir
	if manifestDir == "" {
		manifestDir = dir
	}
	manifestPath := filepath.Join(manifestDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		return 1
	}
	return 0
}
