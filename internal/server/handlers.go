package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/resume"
	"github.com/jonathan/resume-matcher/internal/types"
)

// ParseJDRequest represents the request body for /parse-jd
type ParseJDRequest struct {
	RawText string `json:"raw_text" validate:"required"`
}

// AnalyzeRequest represents the request body for /analyze.
// CountSkillsSection defaults to true when absent.
type AnalyzeRequest struct {
	JD                 *types.ParsedJD       `json:"jd" validate:"required"`
	Resume             *types.ResumeDocument `json:"resume" validate:"required"`
	CountSkillsSection *bool                 `json:"count_skills_section,omitempty"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleParseJD parses a job description sent as JSON
func (s *Server) handleParseJD(w http.ResponseWriter, r *http.Request) {
	var req ParseJDRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.jobParser.Parse(req.RawText))
}

// handleParseJDText parses a job description sent as a text/plain body
func (s *Server) handleParseJDText(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxUpload))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if strings.TrimSpace(string(body)) == "" {
		s.writeError(w, &ErrValidation{Field: "body", Message: "required"})
		return
	}
	s.jsonResponse(w, http.StatusOK, s.jobParser.Parse(string(body)))
}

// handleResumeIngest parses an uploaded résumé file from the "file" form field
func (s *Server) handleResumeIngest(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > s.maxUpload {
		s.writeError(w, &ErrPayloadTooLarge{Limit: s.maxUpload})
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			s.writeError(w, &ErrPayloadTooLarge{Limit: s.maxUpload})
			return
		}
		s.writeError(w, &ErrValidation{Field: "file", Message: "multipart form required"})
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, &ErrValidation{Field: "file", Message: "required"})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, fmt.Errorf("reading upload: %w", err))
		return
	}

	doc, err := s.resumeParser.ParseBytes(data, header.Filename)
	if err != nil {
		var inputErr *resume.InputError
		if errors.As(err, &inputErr) {
			s.logger.Warn("resume ingest failed", "filename", header.Filename, "error", err)
			s.errorResponse(w, http.StatusBadRequest, "Failed to parse resume: "+inputErr.Error())
			return
		}
		s.writeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, doc)
}

// handleAnalyze scores a parsed résumé against a parsed job description
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	opts := ranking.DefaultOptions()
	if req.CountSkillsSection != nil {
		opts.CountSkillsSection = *req.CountSkillsSection
	}

	s.jsonResponse(w, http.StatusOK, ranking.Score(req.JD, req.Resume, opts))
}

// decodeJSON reads a size-limited JSON body into v and validates it
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxUpload)).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return &ErrPayloadTooLarge{Limit: s.maxUpload}
		}
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	if err := s.validator.Struct(v); err != nil {
		return validationError(err)
	}
	return nil
}

// writeError maps err to a status and writes it
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
		s.errorResponse(w, status, "internal server error")
		return
	}
	s.errorResponse(w, status, err.Error())
}
