// internal/linhacomissao/model.go
package linhacomissao

import (
	"time"

	"gorm.io/gorm"
)

// LinhaComissao é uma linha do razão de comissões de um contrato: quanto um
// consultor da cadeia recebe por aquele contrato. As linhas de um contrato
// são sempre apagadas e regravadas em bloco pelo recálculo; só o fluxo de
// pagamento altera linhas existentes, e apenas os campos de pagamento
// (StatusPago, DataPago, Observacoes, Deducao) — nunca ValorPago nem
// EDiferencial.
type LinhaComissao struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	ContratoID  uint `gorm:"not null;index" json:"contratoId"`
	ConsultorID uint `gorm:"not null;index" json:"consultorId"`

	ValorPago          float64  `gorm:"not null;default:0" json:"valorPago"`
	NomeNivel          *string  `gorm:"size:100" json:"nomeNivel"`
	PercentualAplicado *float64 `json:"percentualAplicado"`

	// EDiferencial marca a linha de um superior que recebe apenas o delta
	// sobre o que o subordinado imediatamente abaixo já ganhou.
	EDiferencial             bool  `gorm:"not null;default:false" json:"eDiferencial"`
	DiferencialDeConsultorID *uint `json:"diferencialDeConsultorId"`

	StatusPago  string     `gorm:"size:50;not null;default:'Pendente';index" json:"statusPago"`
	DataPago    *time.Time `json:"dataPago"`
	Observacoes string     `gorm:"size:500" json:"observacoes"`
	// Deducao é um desconto manual aplicado no pagamento desta linha.
	Deducao float64 `gorm:"not null;default:0" json:"deducao"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&LinhaComissao{})
}
