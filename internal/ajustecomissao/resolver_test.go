package ajustecomissao

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptrUint(v uint) *uint        { return &v }
func ptrFloat(v float64) *float64 { return &v }

func TestComissaoEfetivaAjusteDeProdutoVenceGlobal(t *testing.T) {
	indice := Indice{
		7: {
			{ConsultorID: 7, ProdutoID: nil, Tipo: TipoPercentual, Valor: 0.9},
			{ConsultorID: 7, ProdutoID: ptrUint(3), Tipo: TipoFixo, Valor: 50},
		},
	}

	valor := ComissaoEfetiva(7, 3, 90, ptrFloat(0.5), indice)
	assert.Equal(t, 50.0, valor)
}

func TestComissaoEfetivaGlobalVenceNivel(t *testing.T) {
	indice := Indice{
		7: {
			{ConsultorID: 7, ProdutoID: nil, Tipo: TipoPercentual, Valor: 0.9},
		},
	}

	valor := ComissaoEfetiva(7, 3, 90, ptrFloat(0.5), indice)
	assert.Equal(t, 81.0, valor)
}

func TestComissaoEfetivaAjusteDeOutroProdutoNaoSeAplica(t *testing.T) {
	indice := Indice{
		7: {
			{ConsultorID: 7, ProdutoID: ptrUint(99), Tipo: TipoFixo, Valor: 500},
		},
	}

	// ajuste é de outro produto; cai na taxa do nível
	valor := ComissaoEfetiva(7, 3, 90, ptrFloat(0.5), indice)
	assert.Equal(t, 45.0, valor)
}

func TestComissaoEfetivaNivelPadrao(t *testing.T) {
	valor := ComissaoEfetiva(7, 3, 90, ptrFloat(0.7), Indice{})
	assert.Equal(t, 63.0, valor)
}

func TestComissaoEfetivaSemNivelESemAjuste(t *testing.T) {
	valor := ComissaoEfetiva(7, 3, 90, nil, Indice{})
	assert.Equal(t, 0.0, valor)
}

func TestComissaoEfetivaArredondaPercentual(t *testing.T) {
	indice := Indice{
		7: {
			{ConsultorID: 7, ProdutoID: ptrUint(3), Tipo: TipoPercentual, Valor: 0.333},
		},
	}

	// 90.05 * 0.333 = 29.98665 -> 29.99
	valor := ComissaoEfetiva(7, 3, 90.05, nil, indice)
	assert.Equal(t, 29.99, valor)
}
