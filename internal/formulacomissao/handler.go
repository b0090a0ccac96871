// internal/formulacomissao/handler.go
package formulacomissao

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

// SalvarConfiguracao trata PUT /produtos/{id}/formula-comissao.
// Cria ou substitui a configuração de fórmula do produto.
func (h *Handler) SalvarConfiguracao(w http.ResponseWriter, r *http.Request) {
	produtoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de produto inválido", http.StatusBadRequest)
		return
	}

	var cfg ConfiguracaoFormula
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if cfg.TipoPreco != PrecoFixo && cfg.TipoPreco != PrecoIndexado {
		http.Error(w, "tipoPreco deve ser 'fixo' ou 'indexado'", http.StatusBadRequest)
		return
	}
	if cfg.MetodoPotencia != PotenciaSomaPeriodos && cfg.MetodoPotencia != PotenciaMedia {
		http.Error(w, "metodoPotencia deve ser 'somaPeriodos' ou 'media'", http.StatusBadRequest)
		return
	}

	cfg.ProdutoID = uint(produtoID)
	if existente, err := h.Repository.BuscarPorProduto(h.DB, cfg.ProdutoID); err == nil {
		cfg.ID = existente.ID
	}
	if err := h.Repository.Salvar(h.DB, &cfg); err != nil {
		http.Error(w, "erro ao salvar configuração", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cfg)
}

// BuscarConfiguracao trata GET /produtos/{id}/formula-comissao
func (h *Handler) BuscarConfiguracao(w http.ResponseWriter, r *http.Request) {
	produtoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de produto inválido", http.StatusBadRequest)
		return
	}
	cfg, err := h.Repository.BuscarPorProduto(h.DB, uint(produtoID))
	if err != nil {
		http.Error(w, "configuração não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cfg)
}

// DeletarConfiguracao trata DELETE /produtos/{id}/formula-comissao
func (h *Handler) DeletarConfiguracao(w http.ResponseWriter, r *http.Request) {
	produtoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de produto inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(produtoID)); err != nil {
		http.Error(w, "erro ao deletar configuração", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
