// Command ccfdecode builds the CCF decode table from SDD CCF data.
//
// Usage:
//
//	ccfdecode [-ids 1,2,65-73 | -all] [-config sdd.yaml] [-v] [ccf-file]
//
// The input is a decrypted CCF_DATA_*.exml-decrypted file; an encrypted
// .exml container is decrypted in memory first. The JSON decode table goes
// to stdout, the summary to stderr.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"sdd-exml/internal/archive"
	"sdd-exml/internal/ccf"
	"sdd-exml/internal/config"
	"sdd-exml/internal/exml"
)

func main() {
	configFile := flag.String("config", "", "Path to a JSON or YAML config file")
	idList := flag.String("ids", "", "Option ids to emit, e.g. 1,2,65-73 (default: built-in IMC list)")
	all := flag.Bool("all", false, "Emit every option in the CCF data")
	baseDir := flag.String("data", "", "SDD install directory (default: auto-detect)")
	verbose := flag.Bool("v", false, "Debug logging")

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

	ids, err := config.ParseIDs(*idList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Resolve(config.Flags{
		BaseDir:   *baseDir,
		OptionIDs: ids,
		AllIDs:    *all,
		Verbose:   *verbose,
	}, ccf.DefaultIDs)

	log, err := cfg.Logger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	input := cfg.CCFFile
	if flag.NArg() > 0 {
		input = flag.Arg(0)
	}
	if input == "" {
		fmt.Fprintln(os.Stderr, "Error: CCF file required")
		flag.Usage()
		os.Exit(1)
	}

	doc, err := loadDocument(input, &exml.Codec{Strict: cfg.Strict, Logger: log}, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	table, stats := (&ccf.Extractor{Logger: log}).Extract(doc)
	log.WithFields(logrus.Fields{
		"groups":          stats.Groups,
		"skipped_groups":  stats.SkippedGroups,
		"options":         stats.Options,
		"skipped_options": stats.SkippedOptions,
		"replaced":        stats.ReplacedRecords,
	}).Debug("ccf: extracted")

	out := table
	if cfg.AllIDs {
		ccf.WriteSummary(os.Stderr, table, nil)
	} else {
		var missing []int
		out, missing = table.Filter(cfg.OptionIDs)
		ccf.WriteSummary(os.Stderr, table, cfg.OptionIDs)
		if len(missing) > 0 {
			log.WithField("missing", missing).Infof("%d requested option ids not in CCF data", len(missing))
		}
	}

	if err := ccf.WriteJSON(os.Stdout, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadDocument reads path and parses it, decrypting first when the file is
// still an EXML container.
func loadDocument(path string, codec *exml.Codec, log *logrus.Logger) (*ccf.Document, error) {
	data, err := archive.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if !ccf.LooksLikeXML(data) {
		log.WithField("file", path).Debug("ccf: input is not XML, decrypting as EXML")
		plain, err := codec.Decrypt(data)
		if err != nil && !errors.Is(err, exml.ErrMalformedPadding) {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		data = plain
	}

	doc, err := ccf.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
