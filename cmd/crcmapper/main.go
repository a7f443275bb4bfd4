// Package main provides the crcmapper command-line tool for turning a
// harvested CRC well record into a ScienceBase item.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"crcsb/internal/config"
	"crcsb/internal/formatter"
	"crcsb/internal/logger"
	"crcsb/internal/normalizer"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "crcmapper: %v\n", err)
		}

		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	flags := flag.NewFlagSet("crcmapper", flag.ContinueOnError)
	flags.SetOutput(stderr)

	configPath := flags.String("config", "", "Path to YAML config file (optional)")
	inputPath := flags.String("input", "", "Path to source record JSON file")
	outputPath := flags.String("output", "", "Path to output item JSON file")
	previewPath := flags.String("preview", "", "Path to markdown preview file (optional)")
	logLevel := flags.String("log-level", "", "Log level: debug, info, warn, error")

	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()

	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	// Flags override the config file
	if *inputPath != "" {
		cfg.Mapper.Input = *inputPath
	}

	if *outputPath != "" {
		cfg.Mapper.Output = *outputPath
	}

	if *previewPath != "" {
		cfg.Mapper.Preview = *previewPath
	}

	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	if err := cfg.Validate(); err != nil {
		flags.Usage()
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	log := logger.NewLoggerWithWriter(cfg.Logging.Level, cfg.Logging.Format, stderr)

	return mapFile(cfg, log)
}

func mapFile(cfg *config.Config, log *logger.Logger) error {
	start := time.Now()

	content, err := os.ReadFile(cfg.Mapper.Input)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	log.Debug("read source record", "path", cfg.Mapper.Input, "bytes", len(content))

	rec, err := normalizer.DecodeRecord(content)
	if err != nil {
		return err
	}

	log = log.With("libNum", rec.LibNum.String())

	item, err := normalizer.NewProcessor().WithLogger(log).Process(rec)
	if err != nil {
		return err
	}

	log.Info("mapped record",
		"title", item.Title,
		"identifiers", len(item.Identifiers),
		"webLinks", len(item.WebLinks),
		"tags", len(item.Tags),
		"spatial", item.Spatial != nil,
	)

	var data []byte
	if cfg.Mapper.PrettyPrint {
		data, err = json.MarshalIndent(item, "", "  ")
	} else {
		data, err = json.Marshal(item)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	if err := writeFile(cfg.Mapper.Output, data); err != nil {
		return err
	}

	log.Info("saved item", "path", cfg.Mapper.Output)

	if cfg.Mapper.Preview != "" {
		if err := writeFile(cfg.Mapper.Preview, []byte(formatter.RenderItem(item))); err != nil {
			return err
		}

		log.Info("saved preview", "path", cfg.Mapper.Preview)
	}

	log.Debug("done", "duration", time.Since(start))

	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
