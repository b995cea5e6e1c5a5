package middleware

import (
	"net/http"

	"github.com/heartmarshall/lexical-decision/pkg/ctxutil"
)

// RequireRole rejects requests whose token role differs from role:
// 401 when anonymous, 403 for any other role. Must run after Auth.
func RequireRole(role string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch ctxutil.RoleFromCtx(r.Context()) {
			case role:
				next.ServeHTTP(w, r)
			case "":
				writeError(w, http.StatusUnauthorized, "authentication required")
			default:
				writeError(w, http.StatusForbidden, "insufficient role")
			}
		})
	}
}
