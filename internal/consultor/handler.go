package consultor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/KromaEnergia/api-comissoes/internal/auth"
	"github.com/KromaEnergia/api-comissoes/internal/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// Login gera um JWT para credenciais válidas
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	// Busca usuário por email ou CNPJ
	user, err := h.Repository.BuscarPorEmailOuCNPJ(h.DB, req.Login)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	// Verifica senha
	if !utils.CheckSenha(user.Senha, req.Password) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	// Gera token
	token, err := auth.GerarToken(user.ID, user.IsAdmin)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// CriarConsultor cadastra novo consultor
func (h *Handler) CriarConsultor(w http.ResponseWriter, r *http.Request) {
	var req createConsultorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	// Gera hash da senha
	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	// Monta modelo
	c := Consultor{
		Nome:                  req.Nome,
		Sobrenome:             req.Sobrenome,
		CNPJ:                  req.CNPJ,
		Email:                 req.Email,
		Telefone:              req.Telefone,
		Foto:                  req.Foto,
		Senha:                 hash,
		PrecisaRedefinirSenha: false,
		IsAdmin:               req.IsAdmin,
		SuperiorID:            req.SuperiorID,
		NivelComissaoID:       req.NivelComissaoID,
	}

	if err := h.Repository.Salvar(h.DB, &c); err != nil {
		http.Error(w, "erro ao salvar consultor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// ListarConsultores retorna todos ou apenas o próprio registro
func (h *Handler) ListarConsultores(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.CtxUserID).(uint)
	isAdmin, _ := r.Context().Value(auth.CtxIsAdmin).(bool)

	if !isAdmin {
		c, err := h.Repository.BuscarPorID(h.DB, userID)
		if err != nil {
			http.Error(w, "consultor não encontrado", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]Consultor{*c})
		return
	}

	consultores, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "erro ao buscar consultores", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(consultores)
}

// BuscarPorID trata GET /consultores/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "consultor não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// ListarCadeia trata GET /consultores/{id}/cadeia e devolve a cadeia
// hierárquica resolvida (consultor, superior, superior do superior...).
func (h *Handler) ListarCadeia(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	cadeia, err := CadeiaHierarquia(h.DB, uint(id), nil)
	if err != nil {
		http.Error(w, "erro ao resolver cadeia", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cadeia)
}

// ListarSubordinados trata GET /consultores/{id}/subordinados e devolve os
// consultores cujo superior direto é o informado.
func (h *Handler) ListarSubordinados(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	subordinados, err := h.Repository.ListarSubordinados(h.DB, uint(id))
	if err != nil {
		http.Error(w, "erro ao buscar subordinados", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(subordinados)
}

// ResetarSenha trata POST /consultores/{id}/resetar-senha (somente admin):
// gera uma senha temporária, grava o hash e marca o consultor para
// redefinir a senha no próximo login.
func (h *Handler) ResetarSenha(w http.ResponseWriter, r *http.Request) {
	isAdmin, _ := r.Context().Value(auth.CtxIsAdmin).(bool)
	if !isAdmin {
		http.Error(w, "apenas administradores podem resetar senhas", http.StatusForbidden)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "consultor não encontrado", http.StatusNotFound)
		return
	}

	temporaria, err := utils.GerarSenhaTemporaria()
	if err != nil {
		http.Error(w, "erro ao gerar senha temporária", http.StatusInternalServerError)
		return
	}
	hash, err := utils.HashSenha(temporaria)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	c.Senha = hash
	c.PrecisaRedefinirSenha = true
	if err := h.Repository.Salvar(h.DB, c); err != nil {
		http.Error(w, "erro ao salvar consultor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"senhaTemporaria": temporaria})
}

// AtualizarConsultor trata PUT /consultores/{id}
func (h *Handler) AtualizarConsultor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "consultor não encontrado", http.StatusNotFound)
		return
	}

	var req updateConsultorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	if req.Nome != nil {
		c.Nome = *req.Nome
	}
	if req.Sobrenome != nil {
		c.Sobrenome = *req.Sobrenome
	}
	if req.Telefone != nil {
		c.Telefone = *req.Telefone
	}
	if req.Foto != nil {
		c.Foto = *req.Foto
	}
	if req.SuperiorID != nil {
		c.SuperiorID = req.SuperiorID
	}
	if req.NivelComissaoID != nil {
		c.NivelComissaoID = req.NivelComissaoID
	}

	if err := h.Repository.Salvar(h.DB, c); err != nil {
		http.Error(w, "erro ao atualizar consultor", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// DeletarConsultor trata DELETE /consultores/{id}
func (h *Handler) DeletarConsultor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao deletar consultor", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
