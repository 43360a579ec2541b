package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/schemas"
)

var parseJDCmd = &cobra.Command{
	Use:   "parse-jd",
	Short: "Parse a job description into structured ParsedJD JSON",
	Long:  "Parse a job description from a text, HTML, PDF or DOCX file, or from a job posting URL, into ParsedJD JSON that validates against the parsed_jd schema.",
	RunE:  runParseJD,
}

var (
	parseJDInput   string
	parseJDURL     string
	parseJDBrowser bool
	parseJDOutput  string
)

// newRenderer builds the headless renderer used by --browser
var newRenderer = func() fetch.RenderFunc {
	return fetch.NewBrowserRenderer(nil)
}

func init() {
	parseJDCmd.Flags().StringVarP(&parseJDInput, "in", "i", "", "Path to job description file")
	parseJDCmd.Flags().StringVar(&parseJDURL, "url", "", "URL of a job posting to fetch")
	parseJDCmd.Flags().BoolVar(&parseJDBrowser, "browser", false, "Render --url pages in headless Chrome when the fetched text is too short (requires Chrome)")
	parseJDCmd.Flags().StringVarP(&parseJDOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	parseJDCmd.MarkFlagsMutuallyExclusive("in", "url")
	parseJDCmd.MarkFlagsOneRequired("in", "url")
	parseJDCmd.MarkFlagsRequiredTogether("browser", "url")

	rootCmd.AddCommand(parseJDCmd)
}

func runParseJD(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	res, err := loadResources(ctx, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	var (
		text string
		meta *ingestion.Metadata
	)
	if parseJDURL != "" {
		var render fetch.RenderFunc
		if parseJDBrowser {
			render = newRenderer()
		}
		text, meta, err = ingestion.IngestFromURL(ctx, parseJDURL, nil, render)
	} else {
		text, meta, err = ingestion.IngestFromFile(parseJDInput)
	}
	if err != nil {
		return err
	}
	res.logger.Debug("job description ingested", "source", meta.String())

	jd := parsing.ParseJobDescription(text, res.dict, res.analyzer)
	res.logger.Debug("job description parsed", "requirements", len(jd.Requirements), "responsibilities", len(jd.Responsibilities))

	if res.cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintParsedJD(jd)
	}

	return writeJSON(cmd.OutOrStdout(), parseJDOutput, jd, schemas.ParsedJDSchema, res.logger)
}
