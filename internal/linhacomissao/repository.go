// internal/linhacomissao/repository.go
package linhacomissao

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados das linhas de comissão.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB retorna uma cópia do repo usando um *gorm.DB específico (ex.: tx).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

/* ========================= CRUD básico de linhas ========================= */

// CreateInBatch grava múltiplas linhas de uma vez (ignora se vazio).
func (r *Repository) CreateInBatch(linhas []*LinhaComissao) error {
	if len(linhas) == 0 {
		return nil
	}
	return r.DB.Create(linhas).Error
}

// DeleteByContrato apaga todas as linhas de um contrato. É o primeiro passo
// do recálculo: o razão do contrato é sempre reconstruído do zero.
func (r *Repository) DeleteByContrato(contratoID uint) error {
	return r.DB.Where("contrato_id = ?", contratoID).Delete(&LinhaComissao{}).Error
}

// FindByID busca uma única linha pelo seu ID.
func (r *Repository) FindByID(id uint) (*LinhaComissao, error) {
	var linha LinhaComissao
	if err := r.DB.First(&linha, id).Error; err != nil {
		return nil, err
	}
	return &linha, nil
}

// ListByContrato busca todas as linhas de um contrato, do dono para cima.
func (r *Repository) ListByContrato(contratoID uint) ([]LinhaComissao, error) {
	var linhas []LinhaComissao
	err := r.DB.
		Where("contrato_id = ?", contratoID).
		Order("id ASC").
		Find(&linhas).Error
	return linhas, err
}

/* ======================== Visão paginada do razão ======================== */

// ListarDetalhado devolve a visão do painel, com joins para os campos de
// exibição do contrato e do consultor, paginada e filtrável.
func (r *Repository) ListarDetalhado(f FiltroLinhas) ([]LinhaDetalhadaDTO, int64, error) {
	query := r.DB.
		Table("linha_comissaos").
		Joins("JOIN contratos ON contratos.id = linha_comissaos.contrato_id").
		Joins("JOIN consultors ON consultors.id = linha_comissaos.consultor_id")

	if f.ContratoID != 0 {
		query = query.Where("linha_comissaos.contrato_id = ?", f.ContratoID)
	}
	if f.ConsultorID != 0 {
		query = query.Where("linha_comissaos.consultor_id = ?", f.ConsultorID)
	}
	if f.StatusPago != "" {
		query = query.Where("linha_comissaos.status_pago = ?", f.StatusPago)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Tamanho <= 0 {
		f.Tamanho = 50
	}
	if f.Pagina <= 0 {
		f.Pagina = 1
	}

	var linhas []LinhaDetalhadaDTO
	err := query.
		Select(`linha_comissaos.id, linha_comissaos.contrato_id, contratos.cups,
			linha_comissaos.consultor_id, consultors.nome AS nome_consultor,
			linha_comissaos.valor_pago, linha_comissaos.nome_nivel,
			linha_comissaos.percentual_aplicado, linha_comissaos.e_diferencial,
			linha_comissaos.status_pago, linha_comissaos.data_pago,
			linha_comissaos.deducao`).
		Order("linha_comissaos.id DESC").
		Limit(f.Tamanho).
		Offset((f.Pagina - 1) * f.Tamanho).
		Scan(&linhas).Error
	return linhas, total, err
}

/* ========================== Fluxo de pagamento =========================== */

// AtualizarStatusPagamento altera apenas os campos do fluxo de pagamento de
// uma linha existente. ValorPago e EDiferencial nunca são tocados aqui.
// - Se status == "Pago", grava data_pago com a data informada.
// - Caso contrário, zera data_pago (NULL).
func (r *Repository) AtualizarStatusPagamento(id uint, status string, dataPago *time.Time, observacoes *string, deducao *float64) error {
	updates := map[string]interface{}{"status_pago": status}
	if status == "Pago" {
		updates["data_pago"] = dataPago
	} else {
		updates["data_pago"] = nil
	}
	if observacoes != nil {
		updates["observacoes"] = *observacoes
	}
	if deducao != nil {
		updates["deducao"] = *deducao
	}
	res := r.DB.Model(&LinhaComissao{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

/* ========================= Soma do repasse à rede ======================== */

// SomarValorPorContrato soma o valor pago de todas as linhas do contrato.
func (r *Repository) SomarValorPorContrato(contratoID uint) (float64, error) {
	var total float64
	err := r.DB.Model(&LinhaComissao{}).
		Where("contrato_id = ?", contratoID).
		Select("COALESCE(SUM(valor_pago), 0)").
		Scan(&total).Error
	return total, err
}
