package config

import (
	"log"
	"os"
	"strconv"
)

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetBool parses the environment value for key as a boolean ("1", "t",
// "true" and friends). Unset and empty values fall back silently;
// unparseable ones fall back with a warning.
func GetBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	parsed, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("config: invalid boolean %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return parsed
}
