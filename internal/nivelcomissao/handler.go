// internal/nivelcomissao/handler.go
package nivelcomissao

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

// CriarNivel trata POST /niveis-comissao
func (h *Handler) CriarNivel(w http.ResponseWriter, r *http.Request) {
	var n NivelComissao
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if n.Nome == "" {
		http.Error(w, "nome é obrigatório", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Criar(h.DB, &n); err != nil {
		http.Error(w, "erro ao salvar nível", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(n)
}

// ListarNiveis trata GET /niveis-comissao
func (h *Handler) ListarNiveis(w http.ResponseWriter, r *http.Request) {
	niveis, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "erro ao buscar níveis", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(niveis)
}

// BuscarPorID trata GET /niveis-comissao/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	n, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "nível não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(n)
}

// AtualizarNivel trata PUT /niveis-comissao/{id}
func (h *Handler) AtualizarNivel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	n, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "nível não encontrado", http.StatusNotFound)
		return
	}
	var payload NivelComissao
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	n.Nome = payload.Nome
	n.Percentual = payload.Percentual
	n.Ordem = payload.Ordem
	if err := h.Repository.Atualizar(h.DB, n); err != nil {
		http.Error(w, "erro ao atualizar nível", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(n)
}

// DeletarNivel trata DELETE /niveis-comissao/{id}
func (h *Handler) DeletarNivel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao deletar nível", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
