// internal/comercializadora/handler.go
package comercializadora

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

// CriarComercializadora trata POST /comercializadoras
func (h *Handler) CriarComercializadora(w http.ResponseWriter, r *http.Request) {
	var c Comercializadora
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if c.ModeloComissao != ModeloTabela && c.ModeloComissao != ModeloFormula {
		http.Error(w, "modeloComissao deve ser 'tabela' ou 'formula'", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Criar(h.DB, &c); err != nil {
		http.Error(w, "erro ao salvar comercializadora", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// ListarComercializadoras trata GET /comercializadoras
func (h *Handler) ListarComercializadoras(w http.ResponseWriter, r *http.Request) {
	lista, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		http.Error(w, "erro ao buscar comercializadoras", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lista)
}

// BuscarPorID trata GET /comercializadoras/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "comercializadora não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// AtualizarComercializadora trata PUT /comercializadoras/{id}
func (h *Handler) AtualizarComercializadora(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "comercializadora não encontrada", http.StatusNotFound)
		return
	}
	var payload Comercializadora
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if payload.ModeloComissao != ModeloTabela && payload.ModeloComissao != ModeloFormula {
		http.Error(w, "modeloComissao deve ser 'tabela' ou 'formula'", http.StatusBadRequest)
		return
	}
	c.Nome = payload.Nome
	c.CIF = payload.CIF
	c.ModeloComissao = payload.ModeloComissao
	c.MargemGnewPct = payload.MargemGnewPct
	c.Ativa = payload.Ativa
	if err := h.Repository.Atualizar(h.DB, c); err != nil {
		http.Error(w, "erro ao atualizar comercializadora", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// DeletarComercializadora trata DELETE /comercializadoras/{id}
func (h *Handler) DeletarComercializadora(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao deletar comercializadora", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
