package middlewares

import (
	"net/http"
	"strings"

	"github.com/localbiz/marketplace-api/internal/logger"
)

// ValidateJSONContentType rejects POST/PUT/PATCH requests whose body is not
// declared as JSON. Requests without a body pass through.
func ValidateJSONContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodPatch {
			next.ServeHTTP(w, r)
			return
		}

		if r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}

		contentType := r.Header.Get("Content-Type")
		if !strings.Contains(contentType, "application/json") {
			logger.Log.Warnw("invalid content type",
				"path", r.URL.Path,
				"content_type", contentType,
				"method", r.Method,
			)
			writeAuthError(w, http.StatusBadRequest, "Content-Type must be application/json")
			return
		}

		next.ServeHTTP(w, r)
	})
}
