package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zapcapta/zapcapta-api/internal/entity"
	"github.com/zapcapta/zapcapta-api/internal/usecase"
)

type SiteHandler struct {
	createUC *usecase.CreateSiteUseCase
	siteRepo usecase.SiteRepositoryInterface
}

func NewSiteHandler(createUC *usecase.CreateSiteUseCase, siteRepo usecase.SiteRepositoryInterface) *SiteHandler {
	return &SiteHandler{
		createUC: createUC,
		siteRepo: siteRepo,
	}
}

func (h *SiteHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateSiteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	site, err := h.createUC.Execute(r.Context(), input)
	if err != nil {
		status := http.StatusInternalServerError
		if usecase.IsDomainError(err) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(site)
}

func (h *SiteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientId")
	if clientID == "" {
		http.Error(w, "clientId obrigatório", http.StatusBadRequest)
		return
	}

	sites, err := h.siteRepo.ListByClient(r.Context(), clientID)
	if err != nil {
		http.Error(w, "falha ao listar sites", http.StatusInternalServerError)
		return
	}
	if sites == nil {
		sites = []*entity.Site{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sites)
}
