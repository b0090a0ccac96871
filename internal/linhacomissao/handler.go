// internal/linhacomissao/handler.go
package linhacomissao

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler expõe a visão do razão e a ação de status de pagamento.
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// Listar trata GET /linhas-comissao com filtros e paginação:
// contratoId, consultorId, status, pagina, tamanho.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filtro FiltroLinhas
	if v, err := strconv.Atoi(q.Get("contratoId")); err == nil {
		filtro.ContratoID = uint(v)
	}
	if v, err := strconv.Atoi(q.Get("consultorId")); err == nil {
		filtro.ConsultorID = uint(v)
	}
	filtro.StatusPago = q.Get("status")
	filtro.Pagina, _ = strconv.Atoi(q.Get("pagina"))
	filtro.Tamanho, _ = strconv.Atoi(q.Get("tamanho"))

	linhas, total, err := h.Repo.ListarDetalhado(filtro)
	if err != nil {
		http.Error(w, "erro ao buscar linhas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"total":  total,
		"linhas": linhas,
	})
}

// ListarPorContrato trata GET /contratos/{id}/linhas-comissao
func (h *Handler) ListarPorContrato(w http.ResponseWriter, r *http.Request) {
	contratoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de contrato inválido", http.StatusBadRequest)
		return
	}
	linhas, err := h.Repo.ListByContrato(uint(contratoID))
	if err != nil {
		http.Error(w, "erro ao buscar linhas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(linhas)
}

// AtualizarStatus trata PATCH /linhas-comissao/{id}/status. Só o fluxo de
// pagamento passa por aqui; valores de comissão nunca são alterados.
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var payload atualizarStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado ou campos inválidos", http.StatusBadRequest)
		return
	}
	if payload.StatusPago == "" {
		http.Error(w, "O campo 'statusPago' é obrigatório", http.StatusBadRequest)
		return
	}

	err = h.Repo.AtualizarStatusPagamento(uint(id), payload.StatusPago, payload.DataPago, payload.Observacoes, payload.Deducao)
	if err != nil {
		http.Error(w, "erro ao atualizar status da linha", http.StatusInternalServerError)
		return
	}

	linha, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "linha não encontrada após atualização", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(linha)
}
