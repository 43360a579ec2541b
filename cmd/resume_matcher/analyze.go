package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/export"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/resume"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score how well a résumé covers a job description",
	Long: `Score how well a résumé covers the hard-skill requirements of a job description.

Inputs may be raw documents or JSON produced by parse-jd and parse-resume.
Must-have requirements count double in the coverage percentage.`,
	RunE: runAnalyze,
}

var (
	analyzeJD              string
	analyzeResume          string
	analyzeNoSkillsSection bool
	analyzeOutput          string
	analyzeXLSX            string
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeJD, "jd", "", "Job description file or ParsedJD JSON")
	analyzeCmd.Flags().StringVar(&analyzeResume, "resume", "", "Résumé file or ResumeDocument JSON")
	analyzeCmd.Flags().BoolVar(&analyzeNoSkillsSection, "no-skills-section", false, "Only count evidence found in bullets")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	analyzeCmd.Flags().StringVar(&analyzeXLSX, "xlsx", "", "Also write an Excel coverage report to this path")
	_ = analyzeCmd.MarkFlagRequired("jd")
	_ = analyzeCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	res, err := loadResources(ctx, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	var (
		jd  *types.ParsedJD
		doc *types.ResumeDocument
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		jd, err = loadJD(res, analyzeJD)
		return err
	})
	g.Go(func() error {
		var err error
		doc, err = loadResume(res, analyzeResume)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	opts := ranking.DefaultOptions()
	opts.CountSkillsSection = !analyzeNoSkillsSection
	analysis := ranking.Score(jd, doc, opts)
	res.logger.Info("analysis complete",
		"coverage_pct", analysis.CoveragePct,
		"must", fmt.Sprintf("%d/%d", analysis.MustFound, analysis.MustTotal),
		"nice", fmt.Sprintf("%d/%d", analysis.NiceFound, analysis.NiceTotal),
	)

	if res.cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintAnalysis(analysis)
	}

	if analyzeXLSX != "" {
		if err := export.WriteAnalysisWorkbook(analyzeXLSX, jd, analysis); err != nil {
			return err
		}
		res.logger.Info("coverage report written", "path", analyzeXLSX)
	}

	return writeJSON(cmd.OutOrStdout(), analyzeOutput, analysis, schemas.AnalysisSchema, res.logger)
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// loadJD reads ParsedJD JSON or parses a raw job description
func loadJD(res *resources, path string) (*types.ParsedJD, error) {
	if isJSON(path) {
		var jd types.ParsedJD
		if err := readJSONFile(path, &jd); err != nil {
			return nil, err
		}
		return &jd, nil
	}
	text, _, err := ingestion.IngestFromFile(path)
	if err != nil {
		return nil, err
	}
	return parsing.ParseJobDescription(text, res.dict, res.analyzer), nil
}

// loadResume reads ResumeDocument JSON or parses a raw résumé
func loadResume(res *resources, path string) (*types.ResumeDocument, error) {
	if isJSON(path) {
		var doc types.ResumeDocument
		if err := readJSONFile(path, &doc); err != nil {
			return nil, err
		}
		return &doc, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return resume.ParseBytes(data, filepath.Base(path), res.dict, res.analyzer)
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
