package calculocomissao

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KromaEnergia/api-comissoes/internal/contrato"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func executarRecalculo(t *testing.T, db *gorm.DB, id string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(db, novoServico())
	router := mux.NewRouter()
	router.HandleFunc("/contratos/{id}/calcular-comissoes", h.Calcular).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/contratos/"+id+"/calcular-comissoes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandlerCalcularSucesso(t *testing.T) {
	db := abrirBanco(t)
	montarCenarioTabela(t, db)

	rec := executarRecalculo(t, db, "1")
	require.Equal(t, http.StatusOK, rec.Code)

	var res Resultado
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, 100.0, res.ComissaoBruta)
	assert.Equal(t, 63.0, res.TotalRepasseRede)
}

func TestHandlerCalcularErroDeValidacaoDevolve422(t *testing.T) {
	db := abrirBanco(t)
	ctr := &contrato.Contrato{Tarifa: "2.0TD", ConsumoAnual: 3000, ConsultorID: 1}
	require.NoError(t, db.Create(ctr).Error)

	rec := executarRecalculo(t, db, "1")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var corpo map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&corpo))
	assert.Equal(t, "MissingCompanyOrProduct", corpo["erro"])
	assert.Equal(t, TipoValidacao, corpo["tipo"])
}

func TestHandlerCalcularErroDeConsultaDevolve404(t *testing.T) {
	db := abrirBanco(t)
	ctr := montarCenarioTabela(t, db)
	require.NoError(t, db.Model(&contrato.Contrato{}).
		Where("id = ?", ctr.ID).
		Update("consumo_anual", 9000).Error)

	rec := executarRecalculo(t, db, "1")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var corpo map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&corpo))
	assert.Equal(t, "NoRateForRange", corpo["erro"])
}

func TestHandlerCalcularContratoInexistente(t *testing.T) {
	db := abrirBanco(t)

	rec := executarRecalculo(t, db, "77")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerCalcularIDInvalido(t *testing.T) {
	db := abrirBanco(t)

	rec := executarRecalculo(t, db, "abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
