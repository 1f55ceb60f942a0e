package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ShadeShop/pkg/kit"
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/brands", s.brands)
	r.Get("/brands/{categoryId}/products", s.productsByCategory)
	r.Get("/products", s.products)

	return r
}

func (s *Server) brands(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	// No search term returns every brand, never a 404.
	if query == "" {
		all, err := s.Store.Brands(r.Context())
		if err != nil {
			s.serverError(w, "list brands failed", err)
			return
		}
		kit.WriteJSON(w, http.StatusOK, all)
		return
	}

	matched, err := s.Store.BrandsByName(r.Context(), query)
	if err != nil {
		s.serverError(w, "find brand failed", err)
		return
	}
	if len(matched) == 0 {
		kit.WriteError(w, http.StatusNotFound, "Brand not found", "query")
		return
	}
	kit.WriteJSON(w, http.StatusOK, matched)
}

func (s *Server) productsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")

	// An unknown category is a 404; a known category with no products is
	// an empty 200 array.
	ok, err := s.Store.BrandExists(r.Context(), categoryID)
	if err != nil {
		s.serverError(w, "brand lookup failed", err)
		return
	}
	if !ok {
		kit.WriteError(w, http.StatusNotFound, "Brand not found", "id")
		return
	}

	products, err := s.Store.ProductsByCategory(r.Context(), categoryID)
	if err != nil {
		s.serverError(w, "list category products failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) products(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	if query == "" {
		all, err := s.Store.Products(r.Context())
		if err != nil {
			s.serverError(w, "list products failed", err)
			return
		}
		kit.WriteJSON(w, http.StatusOK, all)
		return
	}

	matched, err := s.Store.SearchProducts(r.Context(), query)
	if err != nil {
		s.serverError(w, "search products failed", err)
		return
	}
	if len(matched) == 0 {
		kit.WriteError(w, http.StatusNotFound, "Product not found", "query")
		return
	}
	kit.WriteJSON(w, http.StatusOK, matched)
}

func (s *Server) serverError(w http.ResponseWriter, msg string, err error) {
	if s.Log != nil {
		s.Log.Error(msg, zap.Error(err))
	}
	kit.WriteError(w, http.StatusInternalServerError, "Server error", "")
}
