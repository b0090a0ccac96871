// internal/calculocomissao/handler.go
package calculocomissao

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler expõe o gatilho de recálculo de comissões.
type Handler struct {
	DB      *gorm.DB
	Service *Service
}

func NewHandler(db *gorm.DB, service *Service) *Handler {
	return &Handler{DB: db, Service: service}
}

// Calcular trata POST /contratos/{id}/calcular-comissoes. O recálculo é
// sempre uma ação explícita do operador; não há retry automático.
func (h *Handler) Calcular(w http.ResponseWriter, r *http.Request) {
	contratoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de contrato inválido", http.StatusBadRequest)
		return
	}

	resultado, err := h.Service.Calcular(r.Context(), h.DB, uint(contratoID))
	if err != nil {
		var ec *ErroCalculo
		switch {
		case errors.As(err, &ec):
			status := http.StatusNotFound
			if ec.Tipo == TipoValidacao {
				status = http.StatusUnprocessableEntity
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(ec)
		case errors.Is(err, gorm.ErrRecordNotFound):
			http.Error(w, "contrato não encontrado", http.StatusNotFound)
		default:
			http.Error(w, "erro ao calcular comissões", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resultado)
}
