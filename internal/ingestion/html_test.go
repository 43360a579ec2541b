package ingestion

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shellPage = `<html><body><main><p>Loading job...</p></main></body></html>`

func renderedPage() string {
	var sb strings.Builder
	sb.WriteString(`<html><body><main><h1>Senior Backend Engineer</h1><h2>Requirements</h2><ul>`)
	for i := 0; i < 40; i++ {
		sb.WriteString(`<li>Production experience with Go and Kubernetes</li>`)
	}
	sb.WriteString(`</ul></main></body></html>`)
	return sb.String()
}

func serve(t *testing.T, page string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(page))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestIngestFromURL_NoRenderer(t *testing.T) {
	server := serve(t, shellPage)

	text, meta, err := IngestFromURL(context.Background(), server.URL, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Loading job...", text)
	assert.False(t, meta.Rendered)
	assert.Equal(t, FormatHTML, meta.Format)
	assert.Equal(t, server.URL, meta.URL)
}

func TestIngestFromURL_RendersShortPage(t *testing.T) {
	server := serve(t, shellPage)

	var calls int
	render := func(_ context.Context, urlStr string) (string, error) {
		calls++
		assert.Equal(t, server.URL, urlStr)
		return renderedPage(), nil
	}

	text, meta, err := IngestFromURL(context.Background(), server.URL, nil, render)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Contains(t, text, "Senior Backend Engineer")
	assert.Contains(t, text, "- Production experience with Go and Kubernetes")
	assert.True(t, meta.Rendered)
	assert.Contains(t, meta.String(), "rendered")
}

func TestIngestFromURL_LongPageSkipsRenderer(t *testing.T) {
	server := serve(t, renderedPage())

	render := func(context.Context, string) (string, error) {
		t.Fatal("renderer should not run for a complete page")
		return "", nil
	}

	text, meta, err := IngestFromURL(context.Background(), server.URL, nil, render)
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Backend Engineer")
	assert.False(t, meta.Rendered)
}

func TestIngestFromURL_RenderFailureKeepsFetchedText(t *testing.T) {
	server := serve(t, shellPage)

	render := func(context.Context, string) (string, error) {
		return "", errors.New("chrome not found")
	}

	text, meta, err := IngestFromURL(context.Background(), server.URL, nil, render)
	require.NoError(t, err)
	assert.Equal(t, "Loading job...", text)
	assert.False(t, meta.Rendered)
}

func TestIngestFromURL_EmptyPage(t *testing.T) {
	server := serve(t, `<html><body></body></html>`)

	_, _, err := IngestFromURL(context.Background(), server.URL, nil, nil)
	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Contains(t, extractErr.Error(), "no text content")
}
