package tabelacomissao

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func abrirBanco(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&FaixaComissao{}))
	return db
}

func TestBuscarFaixaDentroDosLimites(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository()

	require.NoError(t, repo.Criar(db, &FaixaComissao{
		ProdutoID: 1, Tarifa: "2.0TD", ConsumoMin: 0, ConsumoMax: 5000, ValorBruto: 100,
	}))

	f, err := repo.BuscarFaixa(db, 1, "2.0TD", 3000)
	require.NoError(t, err)
	assert.Equal(t, 100.0, f.ValorBruto)

	// limites são inclusivos
	f, err = repo.BuscarFaixa(db, 1, "2.0TD", 5000)
	require.NoError(t, err)
	assert.Equal(t, 100.0, f.ValorBruto)

	_, err = repo.BuscarFaixa(db, 1, "2.0TD", 5001)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	_, err = repo.BuscarFaixa(db, 1, "3.0TD", 3000)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestExisteSobreposicao(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository()

	require.NoError(t, repo.Criar(db, &FaixaComissao{
		ProdutoID: 1, Tarifa: "2.0TD", ConsumoMin: 0, ConsumoMax: 5000, ValorBruto: 100,
	}))

	casos := []struct {
		nome     string
		min, max float64
		espera   bool
	}{
		{"intersecta pela direita", 4000, 6000, true},
		{"contida", 1000, 2000, true},
		{"encosta no limite", 5000, 7000, true},
		{"disjunta", 5001, 7000, false},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			sobrepoe, err := repo.ExisteSobreposicao(db, 1, "2.0TD", c.min, c.max)
			require.NoError(t, err)
			assert.Equal(t, c.espera, sobrepoe)
		})
	}

	// outra tarifa ou outro produto não contam
	sobrepoe, err := repo.ExisteSobreposicao(db, 1, "3.0TD", 0, 5000)
	require.NoError(t, err)
	assert.False(t, sobrepoe)

	sobrepoe, err = repo.ExisteSobreposicao(db, 2, "2.0TD", 0, 5000)
	require.NoError(t, err)
	assert.False(t, sobrepoe)
}
