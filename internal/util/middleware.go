package util

import (
	"net/http"
	"strings"
)

// PathPrefixRewrite removes prefix from the request path so the server can be
// reached through a gateway that forwards a sub path.
func PathPrefixRewrite(prefix string) func(http.Handler) http.Handler {
	prefix = NormalizePathPrefix(prefix)
	return func(next http.Handler) http.Handler {
		if prefix == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == prefix || strings.HasPrefix(r.URL.Path, prefix+"/") {
				r.URL.Path = strings.TrimPrefix(r.URL.Path, prefix)
				if r.URL.Path == "" {
					r.URL.Path = "/"
				}
				r.URL.RawPath = ""
			}

			next.ServeHTTP(w, r)
		})
	}
}

// NormalizePathPrefix returns prefix with a leading and without a trailing slash.
// The root prefix is returned as the empty string.
func NormalizePathPrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix
}
