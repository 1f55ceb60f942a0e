package auth

import (
	"context"
	"net/http"

	"ShadeShop/internal/user"
	"ShadeShop/pkg/kit"
)

// ForbiddenMessage is the body message for every token-gate rejection.
const ForbiddenMessage = "Unauthorized - Missing or invalid accessToken, can only access cart if user is logged in"

type ctxKey string

const userKey ctxKey = "user"

func UserFromContext(ctx context.Context) (user.User, bool) {
	u, ok := ctx.Value(userKey).(user.User)
	return u, ok
}

// RequireToken gates private routes on the accessToken query parameter.
// Missing, unknown and expired tokens all fail the same way, as does a
// token whose owner no longer resolves to a user.
func RequireToken(tokens *TokenRegistry, users user.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			value := r.URL.Query().Get("accessToken")
			if value == "" {
				kit.WriteError(w, http.StatusForbidden, ForbiddenMessage, "query")
				return
			}

			tok, ok := tokens.Resolve(value)
			if !ok {
				kit.WriteError(w, http.StatusForbidden, ForbiddenMessage, "query")
				return
			}

			u, found, err := users.ByUsername(r.Context(), tok.Username)
			if err != nil || !found {
				kit.WriteError(w, http.StatusForbidden, ForbiddenMessage, "query")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
