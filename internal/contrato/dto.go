package contrato

// createContratoRequest é o corpo de POST /contratos. Os campos derivados de
// comissão não são aceitos na entrada; só o motor de cálculo os escreve.
type createContratoRequest struct {
	CUPS         string  `json:"cups"`
	Tarifa       string  `json:"tarifa"`
	ConsumoAnual float64 `json:"consumoAnual"`

	PotenciaP1 *float64 `json:"potenciaP1"`
	PotenciaP2 *float64 `json:"potenciaP2"`
	PotenciaP3 *float64 `json:"potenciaP3"`
	PotenciaP4 *float64 `json:"potenciaP4"`
	PotenciaP5 *float64 `json:"potenciaP5"`
	PotenciaP6 *float64 `json:"potenciaP6"`

	FeeEnergia     *float64 `json:"feeEnergia"`
	FeeEnergiaFixo *float64 `json:"feeEnergiaFixo"`

	ComercializadoraID *uint `json:"comercializadoraId"`
	ProdutoID          *uint `json:"produtoId"`
	ConsultorID        uint  `json:"consultorId"`
}
