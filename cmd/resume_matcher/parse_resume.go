package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/resume"
	"github.com/jonathan/resume-matcher/internal/schemas"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Parse a résumé into structured ResumeDocument JSON",
	Long:  "Parse a résumé (.pdf, .docx, .txt, .md or .html) into ResumeDocument JSON that validates against the resume schema.",
	RunE:  runParseResume,
}

var (
	parseResumeInput  string
	parseResumeOutput string
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeInput, "in", "i", "", "Path to résumé file")
	parseResumeCmd.Flags().StringVarP(&parseResumeOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	_ = parseResumeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	res, err := loadResources(ctx, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	data, err := os.ReadFile(parseResumeInput)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	name := filepath.Base(parseResumeInput)
	doc, err := resume.ParseBytes(data, name, res.dict, res.analyzer)
	if err != nil {
		return err
	}
	res.logger.Debug("resume parsed",
		"source", ingestion.NewMetadata(data, name, "").String(),
		"experience", len(doc.Experience),
		"projects", len(doc.Projects),
		"bullets", len(doc.AllBullets()),
		"skills", len(doc.Skills),
	)

	if res.cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintResume(doc)
	}

	return writeJSON(cmd.OutOrStdout(), parseResumeOutput, doc, schemas.ResumeSchema, res.logger)
}
