package handlers

import (
	"encoding/csv"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zapcapta/zapcapta-api/internal/entity"
)

type ExportHandler struct {
	leadRepo entity.LeadRepositoryInterface
}

func NewExportHandler(leadRepo entity.LeadRepositoryInterface) *ExportHandler {
	return &ExportHandler{leadRepo: leadRepo}
}

// HandleExport devolve os leads do cliente em CSV. Filtros opcionais:
// ?origin=Meta+Ads&since=2026-01-01&until=2026-01-31
func (h *ExportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
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
			// Fim do dia, não meia-noite.
			filter.Until = t.Add(24*time.Hour - time.Second)
		}
	}

	leads, err := h.leadRepo.ListByClient(r.Context(), clientID, filter)
	if err != nil {
		http.Error(w, "falha ao listar leads", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="leads.csv"`)

	writer := csv.NewWriter(w)
	defer writer.Flush()

	writer.Write([]string{"name", "email", "cellphone", "message", "origem", "campanha", "url_pesquisa", "created_at"})
	for _, lead := range leads {
		writer.Write([]string{
			lead.Name,
			lead.Email,
			lead.Phone,
			lead.Message,
			lead.Origin,
			lead.Campaign,
			lead.URL,
			lead.CreatedAt.Format(time.RFC3339),
		})
	}
}
