package ratelimit

import (
	"path"
	"strings"
)

// MatchEndpoint returns the configuration for a request, or nil when no
// entry covers it. Paths are cleaned before comparison and methods compare
// case-insensitively. An entry whose Path ends in "/" covers every path
// below it; exact entries win over such prefix entries.
func MatchEndpoint(reqPath string, method string, configs []EndpointConfig) *EndpointConfig {
	cleaned := path.Clean("/" + reqPath)

	var prefixHit *EndpointConfig
	for i := range configs {
		ec := &configs[i]
		if !strings.EqualFold(ec.Method, method) {
			continue
		}
		if ec.Path == cleaned {
			return ec
		}
		if prefixHit == nil && strings.HasSuffix(ec.Path, "/") && strings.HasPrefix(cleaned, ec.Path) {
			prefixHit = ec
		}
	}
	return prefixHit
}
