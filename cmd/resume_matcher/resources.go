package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/skills"
)

// resources bundles what every parsing command needs
type resources struct {
	cfg      config.Config
	logger   *slog.Logger
	dict     *skills.Dictionary
	analyzer nlp.Analyzer
}

// loadConfig merges the optional config file, the environment and the
// persistent flags, in increasing order of precedence.
func loadConfig() (config.Config, error) {
	cfg := config.Config{}
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *fileCfg
	}
	if err := cfg.ApplyEnv(); err != nil {
		return config.Config{}, err
	}
	if skillsPath != "" {
		cfg.SkillsPath = skillsPath
	}
	if verbose {
		cfg.Verbose = true
	}

	cfg = cfg.MergeWithDefaults(config.Default())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
}

// loadResources builds the config, logger and shared skill dictionary.
// A database URL takes precedence over the dictionary file.
func loadResources(ctx context.Context, stderr io.Writer) (*resources, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg, stderr)
	slog.SetDefault(logger)

	start := time.Now()
	var (
		dict  *skills.Dictionary
		stats skills.Stats
	)
	source := cfg.SkillsPath
	if cfg.DatabaseURL != "" {
		source = "postgres:" + cfg.SkillsTable
		dict, stats, err = skills.ConnectAndLoad(ctx, cfg.DatabaseURL, cfg.SkillsTable)
	} else {
		dict, stats, err = skills.LoadFile(cfg.SkillsPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load skill dictionary: %w", err)
	}

	logger.Debug("skill dictionary loaded",
		"source", source,
		"skills", dict.Len(),
		"aliases", dict.AliasCount(),
		"rows", stats.Rows,
		"skipped", stats.Skipped,
		"duration", time.Since(start),
	)

	return &resources{
		cfg:      cfg,
		logger:   logger,
		dict:     dict,
		analyzer: nlp.NewLexicon(dict),
	}, nil
}

// writeJSON writes v as indented JSON to path, or to w when path is empty,
// then validates the file against schema when the schema resolves.
func writeJSON(w io.Writer, path string, v any, schema string, logger *slog.Logger) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, err := fmt.Fprintln(w, string(jsonBytes))
		return err
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	// Validate against schema (if schema file exists)
	if schemaPath := schemas.ResolveSchemaPath(schema); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("generated JSON does not validate against schema: %w", err)
			}
			logger.Warn("could not validate output against schema", "schema", schemaPath, "error", err)
		}
	}

	_, _ = fmt.Fprintf(w, "Output: %s\n", path)
	return nil
}
