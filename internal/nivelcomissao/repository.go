// internal/nivelcomissao/repository.go
package nivelcomissao

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, n *NivelComissao) error
	BuscarPorID(db *gorm.DB, id uint) (*NivelComissao, error)
	ListarTodos(db *gorm.DB) ([]NivelComissao, error)
	Atualizar(db *gorm.DB, n *NivelComissao) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, n *NivelComissao) error {
	return db.Create(n).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*NivelComissao, error) {
	var n NivelComissao
	if err := db.First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]NivelComissao, error) {
	var niveis []NivelComissao
	err := db.Order("ordem ASC").Find(&niveis).Error
	return niveis, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, n *NivelComissao) error {
	return db.Save(n).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&NivelComissao{}, id).Error
}
