package middleware

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/hrkit/employee-service/internal/application/employee"
	"github.com/hrkit/employee-service/internal/domain"
)

// TokenVerifier is the slice of the token signer the middleware needs.
type TokenVerifier interface {
	Verify(token string) (employee.TokenClaims, error)
}

type WriteErrFunc func(http.ResponseWriter, *http.Request, error)

// jwtShape is a cheap structural check run before signature verification:
// three dot-separated base64url segments.
var jwtShape = regexp.MustCompile(`^[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+$`)

// Auth verifies Authorization: Bearer <token> and injects the caller's
// identity into the request context.
func Auth(verifier TokenVerifier, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" {
				writeErr(w, r, domain.ErrTokenMissing())
				return
			}

			parts := strings.SplitN(h, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeErr(w, r, domain.ErrTokenMissing())
				return
			}

			raw := strings.TrimSpace(parts[1])
			if raw == "" || !jwtShape.MatchString(raw) {
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			claims, err := verifier.Verify(raw)
			if err != nil {
				writeErr(w, r, err)
				return
			}

			if claims.EmployeeID == 0 || !domain.IsValidRole(string(claims.Role)) {
				writeErr(w, r, domain.ErrTokenData())
				return
			}

			ctx := WithIdentity(r.Context(), domain.Identity{
				ID:    claims.EmployeeID,
				Email: claims.Email,
				Role:  claims.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects non-admin callers. Assumes Auth ran first.
func RequireAdmin(writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			if !ok {
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}
			if id.Role != domain.RoleAdmin {
				writeErr(w, r, domain.ErrNotAuthorized())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
