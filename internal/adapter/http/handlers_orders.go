package adapthttp

import (
	"errors"
	"log"
	"net/http"

	"mcafe/internal/app"
	"mcafe/internal/domain"
)

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	items, err := s.orders.List(r.Context())
	if err != nil {
		log.Printf("list orders: %v", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": items})
}

func (s *Server) handleSubmitOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Items        []domain.OrderItem `json:"items"`
		Total        price              `json:"total"`
		CustomerName string             `json:"customer_name"`
		Requests     string             `json:"requests"`
		Location     string             `json:"location"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	created, err := s.orders.Submit(r.Context(), domain.Order{
		Items:        body.Items,
		Total:        float64(body.Total),
		CustomerName: body.CustomerName,
		Requests:     body.Requests,
		Location:     body.Location,
	})
	if errors.Is(err, app.ErrInvalidOrder) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		log.Printf("submit order: %v", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": created})
}
