// AngelaMos | 2026
// middleware.go

package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

const notConfiguredMessage = "CMS_ADMIN_TOKEN is not configured. " +
	"Please set it in the database."

// RequireAdmin gates mutating endpoints behind the stored bearer token.
// Reads stay public; this is only mounted on writes.
func RequireAdmin(svc *Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authorization := r.Header.Get("Authorization")
			if authorization == "" {
				core.Unauthorized(w, "Missing Authorization header")
				return
			}

			token := ParseBearer(authorization)
			if token == "" {
				core.Unauthorized(
					w,
					"Authorization header must use Bearer token",
				)
				return
			}

			if err := svc.Verify(r.Context(), token); err != nil {
				writeVerifyError(w, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ParseBearer extracts the token from an Authorization header value.
// Returns "" when the scheme is not Bearer or the token is empty.
func ParseBearer(authorization string) string {
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func writeVerifyError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrTokenNotConfigured):
		core.JSONError(w, core.ConfigurationError(notConfiguredMessage))
	case errors.Is(err, core.ErrForbidden):
		core.Forbidden(w, "Invalid token")
	default:
		core.InternalServerError(w, err)
	}
}
