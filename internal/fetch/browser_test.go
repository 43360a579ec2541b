package fetch

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldUseBrowser(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", true},
		{"loading shell", "Loading job...", true},
		{"whitespace padded", "   " + strings.Repeat("a", MinContentLength-1) + "   ", true},
		{"full posting", strings.Repeat("a", MinContentLength), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldUseBrowser(tt.text))
		})
	}
}

func TestDefaultBrowserOptions(t *testing.T) {
	opts := DefaultBrowserOptions()
	assert.Equal(t, 30*time.Second, opts.Timeout)
	assert.Equal(t, 3*time.Second, opts.Settle)
	assert.Empty(t, opts.ExecPath)
}

func TestRender_InvalidURL(t *testing.T) {
	for _, u := range []string{"not a url", "ftp://example.com/job", "https://"} {
		t.Run(u, func(t *testing.T) {
			_, err := NewBrowserRenderer(nil)(context.Background(), u)
			var fetchErr *Error
			require.ErrorAs(t, err, &fetchErr)
			assert.Equal(t, "invalid URL", fetchErr.Message)
		})
	}
}
