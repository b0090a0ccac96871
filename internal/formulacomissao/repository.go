// internal/formulacomissao/repository.go
package formulacomissao

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, c *ConfiguracaoFormula) error
	BuscarPorProduto(db *gorm.DB, produtoID uint) (*ConfiguracaoFormula, error)
	Deletar(db *gorm.DB, produtoID uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *ConfiguracaoFormula) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) BuscarPorProduto(db *gorm.DB, produtoID uint) (*ConfiguracaoFormula, error) {
	var cfg ConfiguracaoFormula
	if err := db.Where("produto_id = ?", produtoID).First(&cfg).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *repositoryImpl) Deletar(db *gorm.DB, produtoID uint) error {
	return db.Where("produto_id = ?", produtoID).Delete(&ConfiguracaoFormula{}).Error
}
