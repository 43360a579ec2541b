package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path      string  // exact path, or a prefix when it ends in "/"
	Method    string  // HTTP method (GET, POST, etc.)
	RPS       float64 // sustained requests per second
	Burst     int     // bucket capacity, at least 1
	Unlimited bool    // never throttled
}

// LoadConfig builds a configuration around the given default rate, reading
// the enable switch, cleanup interval and IP lists from the environment.
func LoadConfig(rps float64, burst int) *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled || rps <= 0 {
		return &Config{
			Enabled: false,
		}
	}

	cleanupInterval := getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute)

	whitelist := parseIPList(getEnvString("RATE_LIMIT_WHITELIST", ""))
	blacklist := parseIPList(getEnvString("RATE_LIMIT_BLACKLIST", ""))

	return &Config{
		Enabled:         true,
		DefaultRPS:      rps,
		DefaultBurst:    burst,
		CleanupInterval: cleanupInterval,
		IdleTimeout:     time.Hour,
		Whitelist:       whitelist,
		Blacklist:       blacklist,
		EndpointConfigs: DefaultEndpointConfigs(rps, burst),
	}
}

// DefaultEndpointConfigs returns the endpoint-specific configurations derived
// from the default rate. File ingestion is the most expensive call and gets
// half the budget.
func DefaultEndpointConfigs(rps float64, burst int) []EndpointConfig {
	return []EndpointConfig{
		{Path: "/resume/ingest", Method: "POST", RPS: rps / 2, Burst: max(1, burst/2)},
		{Path: "/analyze", Method: "POST", RPS: rps, Burst: burst},
		{Path: "/parse-jd", Method: "POST", RPS: rps, Burst: burst},
		{Path: "/parse-jd-text", Method: "POST", RPS: rps, Burst: burst},
		{Path: "/health", Method: "GET", Unlimited: true},
	}
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a map.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	if list == "" {
		return result
	}

	for _, ip := range strings.Split(list, ",") {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}

	return result
}
