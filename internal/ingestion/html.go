package ingestion

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-matcher/internal/fetch"
)

func extractHTML(data []byte) (string, error) {
	return HTMLToText(string(data))
}

// HTMLToText renders a saved job posting page to line-oriented text
func HTMLToText(page string) (string, error) {
	return fetch.ExtractMainText(page, fetch.JobPostingSelectors(), fetch.PlatformNoiseSelectors("")...)
}

// IngestFromURL fetches a job posting and returns its main text with metadata.
// Platform-specific selectors are used when the host is a known job board.
// When render is non-nil and the fetched page yields too little text, the page
// is rendered with it and re-extracted; a failed render keeps the fetched text.
func IngestFromURL(ctx context.Context, urlStr string, opts *fetch.Options, render fetch.RenderFunc) (string, *Metadata, error) {
	result, err := fetch.URL(ctx, urlStr, opts)
	if err != nil {
		return "", nil, err
	}

	contentSelectors := fetch.PlatformContentSelectors(urlStr)
	noiseSelectors := fetch.PlatformNoiseSelectors(urlStr)

	page := result.HTML
	text, err := fetch.ExtractMainText(page, contentSelectors, noiseSelectors...)
	if err != nil {
		return "", nil, &ExtractionError{Filename: urlStr, Message: "could not extract text", Cause: err}
	}

	rendered := false
	if render != nil && fetch.ShouldUseBrowser(text) {
		if html, renderErr := render(ctx, urlStr); renderErr == nil {
			if rtext, extractErr := fetch.ExtractMainText(html, contentSelectors, noiseSelectors...); extractErr == nil && len(rtext) > len(text) {
				page, text, rendered = html, rtext, true
			}
		}
	}

	if text == "" {
		return "", nil, &ExtractionError{Filename: urlStr, Message: "page has no text content"}
	}

	meta := NewMetadata([]byte(page), "", text)
	meta.Format = FormatHTML
	meta.URL = urlStr
	meta.Platform = string(fetch.DetectPlatform(urlStr))
	meta.Rendered = rendered
	return text, meta, nil
}

// String summarizes the metadata for log lines
func (m *Metadata) String() string {
	name := m.Filename
	if m.URL != "" {
		name = m.URL
	}
	rendered := ""
	if m.Rendered {
		rendered = ", rendered"
	}
	return fmt.Sprintf("%s (%s, %d bytes, sha256 %.12s%s)", name, m.Format, m.Bytes, m.Hash, rendered)
}
