// internal/linhacomissao/dto.go
package linhacomissao

import "time"

// LinhaDetalhadaDTO é a visão do razão para o painel: linha + campos de
// exibição do contrato e do consultor.
type LinhaDetalhadaDTO struct {
	ID                 uint       `json:"id"`
	ContratoID         uint       `json:"contratoId"`
	CUPS               string     `json:"cups"`
	ConsultorID        uint       `json:"consultorId"`
	NomeConsultor      string     `json:"nomeConsultor"`
	ValorPago          float64    `json:"valorPago"`
	NomeNivel          *string    `json:"nomeNivel"`
	PercentualAplicado *float64   `json:"percentualAplicado"`
	EDiferencial       bool       `json:"eDiferencial"`
	StatusPago         string     `json:"statusPago"`
	DataPago           *time.Time `json:"dataPago"`
	Deducao            float64    `json:"deducao"`
}

// FiltroLinhas são os filtros aceitos pela listagem paginada.
type FiltroLinhas struct {
	ContratoID  uint
	ConsultorID uint
	StatusPago  string
	Pagina      int
	Tamanho     int
}

// atualizarStatusRequest é o corpo do PATCH de pagamento. Só os campos do
// fluxo de pagamento são aceitos.
type atualizarStatusRequest struct {
	StatusPago  string     `json:"statusPago"`
	DataPago    *time.Time `json:"dataPago"`
	Observacoes *string    `json:"observacoes"`
	Deducao     *float64   `json:"deducao"`
}
