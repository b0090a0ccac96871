// internal/formulacomissao/model.go
package formulacomissao

import "gorm.io/gorm"

// Tipos de preço e métodos de cálculo de potência.
const (
	PrecoFixo     = "fixo"
	PrecoIndexado = "indexado"

	PotenciaSomaPeriodos = "somaPeriodos"
	PotenciaMedia        = "media"
)

// ConfiguracaoFormula parametriza o cálculo de comissão por fórmula para um
// produto: fees de energia e potência, margem de intermediação, comissão de
// serviço e fatores de ajuste.
type ConfiguracaoFormula struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProdutoID uint `gorm:"not null;uniqueIndex" json:"produtoId"`

	TipoPreco string `gorm:"size:20;not null;default:'fixo'" json:"tipoPreco"`

	FeeEnergia          float64 `gorm:"not null;default:0" json:"feeEnergia"`
	FeeEnergiaFixo      float64 `gorm:"not null;default:0" json:"feeEnergiaFixo"`
	MargemIntermediacao float64 `gorm:"not null;default:0" json:"margemIntermediacao"`

	FeePotencia    float64 `gorm:"not null;default:0" json:"feePotencia"`
	MetodoPotencia string  `gorm:"size:20;not null;default:'somaPeriodos'" json:"metodoPotencia"`

	ComissaoServico float64 `gorm:"not null;default:0" json:"comissaoServico"`
	FatorEnergia    float64 `gorm:"not null;default:1" json:"fatorEnergia"`
	FatorPotencia   float64 `gorm:"not null;default:1" json:"fatorPotencia"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ConfiguracaoFormula{})
}
