// internal/tabelacomissao/handler.go
package tabelacomissao

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

// CriarFaixa trata POST /faixas-comissao. Rejeita faixas que se sobreponham
// a outra já cadastrada para o mesmo (produto, tarifa).
func (h *Handler) CriarFaixa(w http.ResponseWriter, r *http.Request) {
	var f FaixaComissao
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if f.ProdutoID == 0 || f.Tarifa == "" {
		http.Error(w, "produtoId e tarifa são obrigatórios", http.StatusBadRequest)
		return
	}
	if f.ConsumoMax < f.ConsumoMin {
		http.Error(w, "consumoMax deve ser maior ou igual a consumoMin", http.StatusBadRequest)
		return
	}

	sobrepoe, err := h.Repository.ExisteSobreposicao(h.DB, f.ProdutoID, f.Tarifa, f.ConsumoMin, f.ConsumoMax)
	if err != nil {
		http.Error(w, "erro ao validar faixa", http.StatusInternalServerError)
		return
	}
	if sobrepoe {
		http.Error(w, "faixa sobrepõe outra já cadastrada para o mesmo produto e tarifa", http.StatusConflict)
		return
	}

	if err := h.Repository.Criar(h.DB, &f); err != nil {
		http.Error(w, "erro ao salvar faixa", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(f)
}

// ListarPorProduto trata GET /produtos/{id}/faixas-comissao
func (h *Handler) ListarPorProduto(w http.ResponseWriter, r *http.Request) {
	produtoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de produto inválido", http.StatusBadRequest)
		return
	}
	faixas, err := h.Repository.ListarPorProduto(h.DB, uint(produtoID))
	if err != nil {
		http.Error(w, "erro ao buscar faixas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(faixas)
}

// DeletarFaixa trata DELETE /faixas-comissao/{id}
func (h *Handler) DeletarFaixa(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao deletar faixa", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
