// internal/nivelcomissao/model.go
package nivelcomissao

import "gorm.io/gorm"

// NivelComissao é a faixa de comissão atribuída a um consultor, expressa
// como fração da base de repasse. Percentual nulo significa que o nível não
// tem taxa padrão: o direito do consultor vem obrigatoriamente de um ajuste
// (caso fixo/VIP).
type NivelComissao struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	Nome       string   `gorm:"size:100;not null;uniqueIndex" json:"nome"`
	Percentual *float64 `json:"percentual"`
	Ordem      int      `gorm:"not null;default:0" json:"ordem"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&NivelComissao{})
}
