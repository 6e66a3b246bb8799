package services

import (
	"os"
	"strings"
)

const (
	// Set by the hosting platform on deployed instances; when present the
	// mounted volume below is preferred for persisted logs.
	hostingMarkerEnv  = "RENDER"
	hostingVolumePath = "/var/data"

	localAPIKeyFile = "google_ai_key.txt"
	localDebugFile  = "debug.txt"
)

func GetEnv(key, fallback string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		return fallback
	}
	return value
}

// ResolveAPIKey returns the Google AI key from the environment, falling back
// to a local key file for development setups. Empty string means unconfigured.
func ResolveAPIKey() string {
	if key := os.Getenv("GOOGLE_AI_API_KEY"); key != "" {
		return strings.TrimSpace(key)
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return strings.TrimSpace(key)
	}
	data, err := os.ReadFile(localAPIKeyFile)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// DebugEnabled checks the DEBUG env var first, then a local debug file.
// Matching is case-insensitive on "true".
func DebugEnabled() bool {
	if v := os.Getenv("DEBUG"); v != "" {
		return strings.EqualFold(strings.TrimSpace(v), "true")
	}
	data, err := os.ReadFile(localDebugFile)
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(string(data)), "true")
}
