package fetch

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinContentLength is the extracted text length below which a plain HTTP
// fetch is treated as an unrendered client-side shell.
const MinContentLength = 500

// ShouldUseBrowser reports whether extracted text is too short to be a
// rendered job posting.
func ShouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinContentLength
}

// RenderFunc returns the HTML of urlStr after client-side rendering
type RenderFunc func(ctx context.Context, urlStr string) (string, error)

// BrowserOptions configures headless rendering
type BrowserOptions struct {
	Timeout time.Duration
	// Settle is how long to wait after the body is ready for scripts to fill
	// in the posting
	Settle time.Duration
	// ExecPath overrides the Chrome binary chromedp would discover
	ExecPath string
}

// DefaultBrowserOptions returns the options used by NewBrowserRenderer(nil)
func DefaultBrowserOptions() *BrowserOptions {
	return &BrowserOptions{
		Timeout: 30 * time.Second,
		Settle:  3 * time.Second,
	}
}

// NewBrowserRenderer returns a RenderFunc backed by headless Chrome.
// Chrome or Chromium must be installed; the renderer fails otherwise.
func NewBrowserRenderer(opts *BrowserOptions) RenderFunc {
	if opts == nil {
		opts = DefaultBrowserOptions()
	}
	return func(ctx context.Context, urlStr string) (string, error) {
		return Render(ctx, urlStr, opts)
	}
}

// Render loads urlStr in headless Chrome and returns the rendered document HTML
func Render(ctx context.Context, urlStr string, opts *BrowserOptions) (string, error) {
	if opts == nil {
		opts = DefaultBrowserOptions()
	}
	parsed, err := url.Parse(urlStr)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(DefaultUserAgent),
	)
	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, opts.Timeout)
	defer cancelTimeout()

	var html string
	err = chromedp.Run(browserCtx,
		chromedp.Navigate(urlStr),
		chromedp.WaitReady("body"),
		chromedp.Sleep(opts.Settle),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "browser rendering failed", Cause: err}
	}
	return html, nil
}
