// internal/comercializadora/repository.go
package comercializadora

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, c *Comercializadora) error
	BuscarPorID(db *gorm.DB, id uint) (*Comercializadora, error)
	ListarTodas(db *gorm.DB) ([]Comercializadora, error)
	Atualizar(db *gorm.DB, c *Comercializadora) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Comercializadora) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Comercializadora, error) {
	var c Comercializadora
	if err := db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Comercializadora, error) {
	var lista []Comercializadora
	err := db.Order("nome ASC").Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, c *Comercializadora) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Comercializadora{}, id).Error
}
