package cart

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ShadeShop/internal/auth"
	"ShadeShop/pkg/kit"
)

// Server handles /me/cart. Every route runs behind auth.RequireToken, so
// the authenticated user is always on the context.
type Server struct {
	Log   *zap.Logger
	Carts *Manager
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.get)
	r.Post("/", s.add)
	r.Put("/{productId}", s.update)
	r.Delete("/{productId}", s.remove)

	return r
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, http.StatusForbidden, auth.ForbiddenMessage, "query")
		return
	}

	kit.WriteJSON(w, http.StatusOK, s.Carts.Get(u.Username))
}

func (s *Server) add(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, http.StatusForbidden, auth.ForbiddenMessage, "query")
		return
	}

	productID := r.URL.Query().Get("productId")
	if productID == "" {
		kit.WriteError(w, http.StatusBadRequest, "Bad request - productId required", "query")
		return
	}

	entry, err := s.Carts.Add(r.Context(), u.Username, productID)
	if err != nil {
		s.writeCartError(w, err, "query")
		return
	}

	// The client gets the product back, not the wrapping entry.
	kit.WriteJSON(w, http.StatusOK, entry.Product)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, http.StatusForbidden, auth.ForbiddenMessage, "query")
		return
	}

	productID := chi.URLParam(r, "productId")

	quantity, err := strconv.Atoi(r.URL.Query().Get("quantity"))
	if err != nil {
		kit.WriteError(w, http.StatusBadRequest, "Invalid quantity", "query")
		return
	}

	entry, err := s.Carts.SetQuantity(u.Username, productID, quantity)
	if err != nil {
		s.writeCartError(w, err, "path")
		return
	}

	kit.WriteJSON(w, http.StatusOK, entry)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, http.StatusForbidden, auth.ForbiddenMessage, "query")
		return
	}

	productID := chi.URLParam(r, "productId")

	p, err := s.Carts.Remove(u.Username, productID)
	if err != nil {
		s.writeCartError(w, err, "path")
		return
	}

	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) writeCartError(w http.ResponseWriter, err error, fields string) {
	switch err {
	case ErrProductNotFound:
		kit.WriteError(w, http.StatusNotFound, "Product not found", fields)
	case ErrDuplicateProduct:
		kit.WriteError(w, http.StatusConflict, "Product already in user's cart", "POST")
	case ErrInvalidQuantity:
		kit.WriteError(w, http.StatusBadRequest, "Invalid quantity", "query")
	default:
		if s.Log != nil {
			s.Log.Error("cart operation failed", zap.Error(err))
		}
		kit.WriteError(w, http.StatusInternalServerError, "Server error", "")
	}
}
