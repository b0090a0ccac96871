// internal/ajustecomissao/repository.go
package ajustecomissao

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, a *AjusteComissao) error
	ListarPorConsultor(db *gorm.DB, consultorID uint) ([]AjusteComissao, error)
	// CarregarParaCadeia busca, em uma única query, os ajustes de todos os
	// consultores da cadeia que se apliquem ao produto (específicos do
	// produto ou globais), indexados por consultor.
	CarregarParaCadeia(db *gorm.DB, consultorIDs []uint, produtoID uint) (Indice, error)
	Deletar(db *gorm.DB, id uint) error
}

// Indice agrupa os ajustes carregados por consultor.
type Indice map[uint][]AjusteComissao

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, a *AjusteComissao) error {
	return db.Create(a).Error
}

func (r *repositoryImpl) ListarPorConsultor(db *gorm.DB, consultorID uint) ([]AjusteComissao, error) {
	var ajustes []AjusteComissao
	err := db.Where("consultor_id = ?", consultorID).Find(&ajustes).Error
	return ajustes, err
}

func (r *repositoryImpl) CarregarParaCadeia(db *gorm.DB, consultorIDs []uint, produtoID uint) (Indice, error) {
	indice := Indice{}
	if len(consultorIDs) == 0 {
		return indice, nil
	}

	var ajustes []AjusteComissao
	err := db.
		Where("consultor_id IN ?", consultorIDs).
		Where("produto_id = ? OR produto_id IS NULL", produtoID).
		Find(&ajustes).Error
	if err != nil {
		return nil, err
	}

	for _, a := range ajustes {
		indice[a.ConsultorID] = append(indice[a.ConsultorID], a)
	}
	return indice, nil
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&AjusteComissao{}, id).Error
}
