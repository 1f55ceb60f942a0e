package kit

import "net/http"

const (
	corsAllowOrigin  = "*"
	corsAllowHeaders = "Origin, X-Requested-With, Content-Type, Accept, X-Authentication"
)

// CORS stamps permissive cross-origin headers on every response and
// short-circuits OPTIONS preflights with an empty 200 before routing.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", corsAllowOrigin)
		w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
