package server

import (
	"net/http"
	"strings"
)

// SecurityConfig holds the security settings applied to every HTTP
// endpoint the metrics server exposes.
type SecurityConfig struct {
	// EnableCORS enables cross-origin resource sharing headers.
	EnableCORS bool

	// AllowedOrigins lists the origins permitted when CORS is enabled.
	// A single "*" entry matches any origin.
	AllowedOrigins []string

	// AllowedMethods lists the HTTP methods advertised in CORS responses.
	AllowedMethods []string
}

// DefaultSecurityConfig returns the configuration used when none is
// supplied: permissive CORS limited to read-only methods.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	}
}

// SecurityMiddleware wraps next with standard security response headers
// and CORS handling. OPTIONS preflight requests are answered directly
// with 204 No Content and never reach the next handler.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			if origin := allowedOrigin(config.AllowedOrigins, r.Header.Get("Origin")); origin != "" {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				h.Set("Access-Control-Allow-Headers", "Content-Type")
				h.Set("Access-Control-Max-Age", "86400")
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

// allowedOrigin returns the Access-Control-Allow-Origin value for the
// request origin, or "" when the origin is not permitted.
func allowedOrigin(allowed []string, origin string) string {
	for _, a := range allowed {
		if a == "*" {
			return "*"
		}
		if a == origin && origin != "" {
			return origin
		}
	}
	return ""
}
