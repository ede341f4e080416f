package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// BodyLimitMB is the largest accepted request body, in megabytes.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"32"`
	// CORSOrigins is a comma separated list of allowed origins, "*" for any.
	CORSOrigins string `mapstructure:"cors_origins" default:"*"`
}

// BodyLimit returns the body limit in bytes, falling back to 32 MB.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 32 * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}

// Origins returns the allowed origins normalized for the cors middleware.
func (c Config) Origins() string {
	parts := strings.Split(c.CORSOrigins, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return "*"
	}
	return strings.Join(out, ",")
}
