// internal/tabelacomissao/model.go
package tabelacomissao

import "gorm.io/gorm"

// FaixaComissao mapeia (produto, tarifa, faixa de consumo) para o valor
// bruto de comissão pago pela comercializadora. Faixas de um mesmo
// (produto, tarifa) não podem se sobrepor; a verificação acontece antes do
// insert.
type FaixaComissao struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	ProdutoID  uint    `gorm:"not null;index:idx_faixa_produto_tarifa" json:"produtoId"`
	Tarifa     string  `gorm:"size:20;not null;index:idx_faixa_produto_tarifa" json:"tarifa"`
	ConsumoMin float64 `gorm:"not null;default:0" json:"consumoMin"`
	ConsumoMax float64 `gorm:"not null;default:0" json:"consumoMax"`
	ValorBruto float64 `gorm:"not null;default:0" json:"valorBruto"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&FaixaComissao{})
}
