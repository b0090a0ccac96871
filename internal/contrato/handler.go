package contrato

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

// CriarContrato trata POST /contratos
func (h *Handler) CriarContrato(w http.ResponseWriter, r *http.Request) {
	var req createContratoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.ConsultorID == 0 {
		http.Error(w, "consultorId é obrigatório", http.StatusBadRequest)
		return
	}

	c := Contrato{
		CUPS:               req.CUPS,
		Tarifa:             req.Tarifa,
		ConsumoAnual:       req.ConsumoAnual,
		PotenciaP1:         req.PotenciaP1,
		PotenciaP2:         req.PotenciaP2,
		PotenciaP3:         req.PotenciaP3,
		PotenciaP4:         req.PotenciaP4,
		PotenciaP5:         req.PotenciaP5,
		PotenciaP6:         req.PotenciaP6,
		FeeEnergia:         req.FeeEnergia,
		FeeEnergiaFixo:     req.FeeEnergiaFixo,
		ComercializadoraID: req.ComercializadoraID,
		ProdutoID:          req.ProdutoID,
		ConsultorID:        req.ConsultorID,
		StatusComissao:     StatusComissaoPendente,
	}

	if err := h.Repository.Criar(h.DB, &c); err != nil {
		http.Error(w, "erro ao salvar contrato", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// ListarContratos trata GET /contratos (query param opcional consultorId)
func (h *Handler) ListarContratos(w http.ResponseWriter, r *http.Request) {
	var (
		contratos []Contrato
		err       error
	)
	if v, convErr := strconv.Atoi(r.URL.Query().Get("consultorId")); convErr == nil {
		contratos, err = h.Repository.ListarPorConsultor(h.DB, uint(v))
	} else {
		contratos, err = h.Repository.ListarTodos(h.DB)
	}
	if err != nil {
		http.Error(w, "erro ao buscar contratos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(contratos)
}

// BuscarPorID trata GET /contratos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "contrato não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// AtualizarContrato trata PUT /contratos/{id}. Atualiza só os dados de
// entrada; os campos derivados continuam sendo responsabilidade do motor.
func (h *Handler) AtualizarContrato(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "contrato não encontrado", http.StatusNotFound)
		return
	}

	var req createContratoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	c.CUPS = req.CUPS
	c.Tarifa = req.Tarifa
	c.ConsumoAnual = req.ConsumoAnual
	c.PotenciaP1 = req.PotenciaP1
	c.PotenciaP2 = req.PotenciaP2
	c.PotenciaP3 = req.PotenciaP3
	c.PotenciaP4 = req.PotenciaP4
	c.PotenciaP5 = req.PotenciaP5
	c.PotenciaP6 = req.PotenciaP6
	c.FeeEnergia = req.FeeEnergia
	c.FeeEnergiaFixo = req.FeeEnergiaFixo
	c.ComercializadoraID = req.ComercializadoraID
	c.ProdutoID = req.ProdutoID
	if req.ConsultorID != 0 {
		c.ConsultorID = req.ConsultorID
	}

	if err := h.Repository.Salvar(h.DB, c); err != nil {
		http.Error(w, "erro ao atualizar contrato", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// DeletarContrato trata DELETE /contratos/{id}
func (h *Handler) DeletarContrato(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao deletar contrato", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
