package consultor

import (
	"github.com/KromaEnergia/api-comissoes/internal/nivelcomissao"
	"gorm.io/gorm"
)

// Consultor é um vendedor da rede. SuperiorID aponta para o consultor
// imediatamente acima na hierarquia (ponteiro de pai, formando uma floresta);
// nulo para quem está no topo. NivelComissaoID define a faixa padrão de
// comissão do consultor, quando houver.
type Consultor struct {
	gorm.Model
	Nome                  string `json:"nome"`
	Sobrenome             string `json:"sobrenome"`
	CNPJ                  string `json:"cnpj" gorm:"unique"`
	Email                 string `json:"email" gorm:"unique"`
	Telefone              string `json:"telefone"`
	Foto                  string `json:"foto"`
	Senha                 string `json:"-"`
	PrecisaRedefinirSenha bool   `json:"-"`
	IsAdmin               bool   `gorm:"default:false" json:"isAdmin"`

	SuperiorID *uint `gorm:"index" json:"superiorId"`

	NivelComissaoID *uint                        `gorm:"index" json:"nivelComissaoId"`
	Nivel           *nivelcomissao.NivelComissao `gorm:"foreignKey:NivelComissaoID" json:"nivel,omitempty"`
}
