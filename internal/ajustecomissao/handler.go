// internal/ajustecomissao/handler.go
package ajustecomissao

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// CriarAjuste trata POST /consultores/{id}/ajustes-comissao
func (h *Handler) CriarAjuste(w http.ResponseWriter, r *http.Request) {
	consultorID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de consultor inválido", http.StatusBadRequest)
		return
	}

	var a AjusteComissao
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if a.Tipo != TipoPercentual && a.Tipo != TipoFixo {
		http.Error(w, "tipo deve ser 'percentual' ou 'fixo'", http.StatusBadRequest)
		return
	}

	a.ConsultorID = uint(consultorID)
	if err := h.Repository.Criar(h.DB, &a); err != nil {
		http.Error(w, "erro ao salvar ajuste", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(a)
}

// ListarPorConsultor trata GET /consultores/{id}/ajustes-comissao
func (h *Handler) ListarPorConsultor(w http.ResponseWriter, r *http.Request) {
	consultorID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de consultor inválido", http.StatusBadRequest)
		return
	}
	ajustes, err := h.Repository.ListarPorConsultor(h.DB, uint(consultorID))
	if err != nil {
		http.Error(w, "erro ao buscar ajustes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ajustes)
}

// DeletarAjuste trata DELETE /ajustes-comissao/{id}
func (h *Handler) DeletarAjuste(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao deletar ajuste", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
