package adapthttp

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"mcafe/internal/app"
	"mcafe/internal/domain"
)

type productPayload struct {
	Name        string `json:"name"`
	Price       price  `json:"price"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

func (p productPayload) fields() domain.ProductFields {
	return domain.ProductFields{
		Name:        p.Name,
		Price:       float64(p.Price),
		Image:       p.Image,
		Description: p.Description,
	}
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	items, err := s.catalog.List(r.Context())
	if err != nil {
		log.Printf("list products: %v", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": items})
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body productPayload
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	p, err := s.catalog.Create(r.Context(), body.fields())
	if errors.Is(err, app.ErrInvalidProduct) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		log.Printf("create product: %v", err)
		writeError(w, storeStatus(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": p})
}

// handleProductByID dispatches PATCH and DELETE on /admin/products/{id}.
func (s *Server) handleProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/products/"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid product id"})
		return
	}

	switch r.Method {
	case http.MethodPatch:
		var body productPayload
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		p, err := s.catalog.Update(r.Context(), id, body.fields())
		if errors.Is(err, app.ErrInvalidProduct) {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if err != nil {
			log.Printf("update product %d: %v", id, err)
			writeError(w, storeStatus(err), err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": p})

	case http.MethodDelete:
		removed, err := s.catalog.Delete(r.Context(), id)
		if err != nil {
			log.Printf("delete product %d: %v", id, err)
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": removed})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
