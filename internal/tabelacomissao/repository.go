// internal/tabelacomissao/repository.go
package tabelacomissao

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, f *FaixaComissao) error
	BuscarPorID(db *gorm.DB, id uint) (*FaixaComissao, error)
	// BuscarFaixa devolve a faixa de (produto, tarifa) que contém o consumo,
	// ou gorm.ErrRecordNotFound se nenhuma cobre o valor.
	BuscarFaixa(db *gorm.DB, produtoID uint, tarifa string, consumo float64) (*FaixaComissao, error)
	// ExisteSobreposicao verifica se [consumoMin, consumoMax] intersecta
	// alguma faixa já cadastrada para o mesmo (produto, tarifa).
	ExisteSobreposicao(db *gorm.DB, produtoID uint, tarifa string, consumoMin, consumoMax float64) (bool, error)
	ListarPorProduto(db *gorm.DB, produtoID uint) ([]FaixaComissao, error)
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, f *FaixaComissao) error {
	return db.Create(f).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*FaixaComissao, error) {
	var f FaixaComissao
	if err := db.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repositoryImpl) BuscarFaixa(db *gorm.DB, produtoID uint, tarifa string, consumo float64) (*FaixaComissao, error) {
	var f FaixaComissao
	err := db.
		Where("produto_id = ? AND tarifa = ?", produtoID, tarifa).
		Where("consumo_min <= ? AND consumo_max >= ?", consumo, consumo).
		First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repositoryImpl) ExisteSobreposicao(db *gorm.DB, produtoID uint, tarifa string, consumoMin, consumoMax float64) (bool, error) {
	var total int64
	err := db.Model(&FaixaComissao{}).
		Where("produto_id = ? AND tarifa = ?", produtoID, tarifa).
		Where("consumo_min <= ? AND consumo_max >= ?", consumoMax, consumoMin).
		Count(&total).Error
	return total > 0, err
}

func (r *repositoryImpl) ListarPorProduto(db *gorm.DB, produtoID uint) ([]FaixaComissao, error) {
	var faixas []FaixaComissao
	err := db.
		Where("produto_id = ?", produtoID).
		Order("tarifa ASC, consumo_min ASC").
		Find(&faixas).Error
	return faixas, err
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&FaixaComissao{}, id).Error
}
