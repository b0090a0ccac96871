// internal/produtos/model.go
package produtos

import "gorm.io/gorm"

// Produto é um produto de energia comercializável (luz, gás, serviços).
// Faixas de comissão e configurações de fórmula referenciam um produto.
type Produto struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Nome  string `gorm:"size:255;not null" json:"nome"`
	Tipo  string `gorm:"size:255;not null" json:"tipo"`
	Ativo bool   `gorm:"not null;default:false" json:"ativo"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Produto{})
}
