// internal/comercializadora/model.go
package comercializadora

import (
	"time"
)

// Modelos de comissão suportados por uma comercializadora.
const (
	ModeloTabela  = "tabela"
	ModeloFormula = "formula"
)

// Comercializadora é a fornecedora de energia que remunera a operadora.
// ModeloComissao define como a comissão bruta de um contrato é obtida:
// via tabela de faixas ou via fórmula paramétrica.
type Comercializadora struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Nome string `gorm:"size:255;not null" json:"nome"`
	CIF  string `gorm:"size:20" json:"cif"`

	ModeloComissao string `gorm:"size:20;not null;default:'tabela'" json:"modeloComissao"`
	// MargemGnewPct só se aplica ao modelo tabela (fração 0-1).
	MargemGnewPct float64 `gorm:"not null;default:0" json:"margemGnewPct"`

	Ativa bool `gorm:"not null;default:true" json:"ativa"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
