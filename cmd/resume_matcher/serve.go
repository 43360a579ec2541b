package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/server"
	"github.com/jonathan/resume-matcher/internal/server/ratelimit"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing /parse-jd, /parse-jd-text, /resume/ingest and /analyze.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from PORT or 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	res, err := loadResources(ctx, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	port := res.cfg.Port
	if servePort != 0 {
		port = servePort
	}

	srv := server.New(server.Config{
		Port:           port,
		CORSOrigins:    res.cfg.CORSOrigins,
		MaxUploadBytes: res.cfg.MaxUploadBytes(),
		RateLimit:      ratelimit.LoadConfig(res.cfg.RateLimitRPS, res.cfg.RateLimitBurst),
		Logger:         res.logger,
	}, res.dict, res.analyzer)

	return srv.Start()
}
