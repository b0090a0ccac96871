// internal/ajustecomissao/model.go
package ajustecomissao

import (
	"time"

	"gorm.io/gorm"
)

// Tipos de ajuste.
const (
	TipoPercentual = "percentual"
	TipoFixo       = "fixo"
)

// AjusteComissao sobrescreve o direito de comissão de um consultor.
// ProdutoID nulo significa "vale para qualquer produto"; um ajuste
// específico de produto tem precedência sobre o global.
type AjusteComissao struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ConsultorID uint   `gorm:"not null;index" json:"consultorId"`
	ProdutoID   *uint  `gorm:"index" json:"produtoId"`
	Tipo        string `gorm:"size:20;not null" json:"tipo"`
	// Valor é uma fração da base de repasse no tipo percentual, ou um
	// montante literal no tipo fixo.
	Valor float64 `gorm:"not null;default:0" json:"valor"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&AjusteComissao{})
}
