package contrato

import (
	"gorm.io/gorm"
)

// Status do cálculo de comissão de um contrato.
const (
	StatusComissaoPendente  = "Pendente"
	StatusComissaoCalculada = "Calculada"
)

// Contrato identifica um ponto de suprimento vendido: CUPS, tarifa, consumo
// anual, os até seis períodos de potência contratada e os fees escolhidos na
// venda. Os campos de comissão são derivados — escritos apenas pelo motor de
// cálculo, nunca pela entrada manual.
type Contrato struct {
	gorm.Model

	CUPS         string  `gorm:"size:30;index" json:"cups"`
	Tarifa       string  `gorm:"size:20" json:"tarifa"`
	ConsumoAnual float64 `gorm:"not null;default:0" json:"consumoAnual"`

	// Potência contratada por período (kW). Slot nulo = período não
	// contratado; distinto de 0 para o método de média.
	PotenciaP1 *float64 `json:"potenciaP1"`
	PotenciaP2 *float64 `json:"potenciaP2"`
	PotenciaP3 *float64 `json:"potenciaP3"`
	PotenciaP4 *float64 `json:"potenciaP4"`
	PotenciaP5 *float64 `json:"potenciaP5"`
	PotenciaP6 *float64 `json:"potenciaP6"`

	// Fees escolhidos na venda, quando o fluxo comercial permite escolher
	// entre opções pré-configuradas. Nulo = usa o padrão da fórmula.
	FeeEnergia     *float64 `json:"feeEnergia"`
	FeeEnergiaFixo *float64 `json:"feeEnergiaFixo"`

	ComercializadoraID *uint `gorm:"index" json:"comercializadoraId"`
	ProdutoID          *uint `gorm:"index" json:"produtoId"`
	ConsultorID        uint  `gorm:"not null;index" json:"consultorId"`

	// Campos derivados pelo motor de comissões.
	ComissaoBruta       float64 `gorm:"not null;default:0" json:"comissaoBruta"`
	ComissaoGnew        float64 `gorm:"not null;default:0" json:"comissaoGnew"`
	MargemGnew          float64 `gorm:"not null;default:0" json:"margemGnew"`
	BaseRepasseParceiro float64 `gorm:"not null;default:0" json:"baseRepasseParceiro"`
	// TotalRepasseRede é a soma de tudo que foi distribuído à rede de
	// vendas por este contrato.
	TotalRepasseRede float64 `gorm:"not null;default:0" json:"totalRepasseRede"`
	StatusComissao   string  `gorm:"size:50;not null;default:'Pendente'" json:"statusComissao"`
}

// Potencias devolve os seis slots de potência na ordem dos períodos.
func (c *Contrato) Potencias() []*float64 {
	return []*float64{c.PotenciaP1, c.PotenciaP2, c.PotenciaP3, c.PotenciaP4, c.PotenciaP5, c.PotenciaP6}
}
