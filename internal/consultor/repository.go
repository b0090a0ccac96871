package consultor

import (
	"gorm.io/gorm"
)

type Repository interface {
	BuscarPorEmailOuCNPJ(db *gorm.DB, valor string) (*Consultor, error)
	Salvar(db *gorm.DB, c *Consultor) error
	BuscarPorID(db *gorm.DB, id uint) (*Consultor, error)
	ListarTodos(db *gorm.DB) ([]Consultor, error)
	ListarSubordinados(db *gorm.DB, superiorID uint) ([]Consultor, error)
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Busca primeiro por e-mail, depois por CNPJ, para evitar ambiguidade
func (r *repositoryImpl) BuscarPorEmailOuCNPJ(db *gorm.DB, valor string) (*Consultor, error) {
	var c Consultor

	if err := db.Where("email = ?", valor).First(&c).Error; err == nil {
		return &c, nil
	}
	if err := db.Where("cnpj = ?", valor).First(&c).Error; err == nil {
		return &c, nil
	}

	return nil, gorm.ErrRecordNotFound
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *Consultor) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Consultor, error) {
	var c Consultor
	err := db.Preload("Nivel").First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Consultor, error) {
	var consultores []Consultor
	err := db.Preload("Nivel").Find(&consultores).Error
	return consultores, err
}

// ListarSubordinados retorna os consultores cujo superior direto é o informado.
func (r *repositoryImpl) ListarSubordinados(db *gorm.DB, superiorID uint) ([]Consultor, error) {
	var consultores []Consultor
	err := db.Preload("Nivel").Where("superior_id = ?", superiorID).Order("id").Find(&consultores).Error
	return consultores, err
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Consultor{}, id).Error
}
