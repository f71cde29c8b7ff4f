package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/zapcapta/zapcapta-api/internal/importer"
	"github.com/zapcapta/zapcapta-api/internal/infra/http/middleware"
	"github.com/zapcapta/zapcapta-api/internal/usecase"
)

const maxImportBytes = 10 << 20 // 10 MB

type ImportHandler struct {
	importUC *usecase.ImportLeadsUseCase
}

func NewImportHandler(importUC *usecase.ImportLeadsUseCase) *ImportHandler {
	return &ImportHandler{importUC: importUC}
}

type pasteImportRequest struct {
	Text string `json:"text"`
}

// HandleFile importa um CSV enviado via multipart (campo "file").
func (h *ImportHandler) HandleFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportBytes); err != nil {
		http.Error(w, "upload inválido", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "campo 'file' obrigatório", http.StatusBadRequest)
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxImportBytes))
	if err != nil {
		http.Error(w, "falha ao ler arquivo", http.StatusBadRequest)
		return
	}

	h.run(w, r, string(raw), h.importUC.ImportFile)
}

// HandlePaste importa texto colado no dashboard.
func (h *ImportHandler) HandlePaste(w http.ResponseWriter, r *http.Request) {
	var req pasteImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	h.run(w, r, req.Text, h.importUC.ImportPasted)
}

func (h *ImportHandler) run(
	w http.ResponseWriter,
	r *http.Request,
	raw string,
	fn func(ctx context.Context, raw string, progress func(float64)) (*importer.Result, error),
) {
	result, err := fn(r.Context(), raw, nil)
	if err != nil {
		// Pré-condição de lote quebrada: nenhum Result foi produzido.
		if importer.IsBatchAbort(err) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	middleware.RecordImportRows(result.Success, len(result.Errors))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}
