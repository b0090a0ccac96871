package contrato

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, c *Contrato) error
	BuscarPorID(db *gorm.DB, id uint) (*Contrato, error)
	ListarTodos(db *gorm.DB) ([]Contrato, error)
	ListarPorConsultor(db *gorm.DB, consultorID uint) ([]Contrato, error)
	Salvar(db *gorm.DB, c *Contrato) error
	// AtualizarCamposComissao grava apenas os campos derivados do cálculo,
	// sem tocar nos dados de entrada do contrato.
	AtualizarCamposComissao(db *gorm.DB, id uint, campos map[string]interface{}) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Contrato) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Contrato, error) {
	var c Contrato
	if err := db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Contrato, error) {
	var contratos []Contrato
	err := db.Find(&contratos).Error
	return contratos, err
}

func (r *repositoryImpl) ListarPorConsultor(db *gorm.DB, consultorID uint) ([]Contrato, error) {
	var contratos []Contrato
	err := db.Where("consultor_id = ?", consultorID).Find(&contratos).Error
	return contratos, err
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *Contrato) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) AtualizarCamposComissao(db *gorm.DB, id uint, campos map[string]interface{}) error {
	return db.Model(&Contrato{}).Where("id = ?", id).Updates(campos).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Contrato{}, id).Error
}
