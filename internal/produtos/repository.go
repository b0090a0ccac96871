// internal/produtos/repository.go
package produtos

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, p *Produto) error
	BuscarPorID(db *gorm.DB, id uint) (*Produto, error)
	ListarTodos(db *gorm.DB) ([]Produto, error)
	ListarAtivos(db *gorm.DB) ([]Produto, error)
	Atualizar(db *gorm.DB, p *Produto) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, p *Produto) error {
	return db.Create(p).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Produto, error) {
	var p Produto
	if err := db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Produto, error) {
	var produtos []Produto
	err := db.Order("nome ASC").Find(&produtos).Error
	return produtos, err
}

func (r *repositoryImpl) ListarAtivos(db *gorm.DB) ([]Produto, error) {
	var produtos []Produto
	err := db.Where("ativo = ?", true).Order("nome ASC").Find(&produtos).Error
	return produtos, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, p *Produto) error {
	return db.Save(p).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Produto{}, id).Error
}
