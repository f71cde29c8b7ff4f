package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zapcapta/zapcapta-api/internal/entity"
)

type LeadsHandler struct {
	leadRepo entity.LeadRepositoryInterface
}

func NewLeadsHandler(leadRepo entity.LeadRepositoryInterface) *LeadsHandler {
	return &LeadsHandler{leadRepo: leadRepo}
}

// HandleList lista os leads do cliente com os mesmos filtros da exportação.
func (h *LeadsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientId")
	if clientID == "" {
		http.Error(w, "clientId obrigatório", http.StatusBadRequest)
		return
	}

	filter := entity.LeadFilter{Origin: r.URL.Query().Get("origin")}
	if since := r.URL.Query().Get("since"); since != "" {
		if t, err := time.Parse("2006-01-02", since); err == nil {
			filter.Since = t
		}
	}
	if until := r.URL.Query().Get("until"); until != "" {
		if t, err := time.Parse("2006-01-02", until); err == nil {
			filter.Until = t.Add(24*time.Hour - time.Second)
		}
	}

	leads, err := h.leadRepo.ListByClient(r.Context(), clientID, filter)
	if err != nil {
		http.Error(w, "falha ao listar leads", http.StatusInternalServerError)
		return
	}
	if leads == nil {
		leads = []*entity.Lead{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(leads)
}
