package config

import (
	"os"
	"strings"
)

type Environment struct {
	IsDevelopment  bool
	AllowedOrigins []string
	CookieSecure   bool
}

var Env Environment

func init() {
	// Get allowed origins from environment variable
	origins := os.Getenv("ALLOWED_ORIGINS")

	// If no origins are set, we're in development
	isDev := origins == ""
	if isDev {
		origins = "http://localhost:3000,http://localhost:5173"
	}

	allowed := strings.Split(origins, ",")
	for i := range allowed {
		allowed[i] = strings.TrimSpace(allowed[i])
	}

	Env = Environment{
		IsDevelopment:  isDev,
		AllowedOrigins: allowed,
		CookieSecure:   !isDev,
	}
}
