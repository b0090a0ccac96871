package formulacomissao

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestCalcularPrecoFixo(t *testing.T) {
	cfg := &ConfiguracaoFormula{
		TipoPreco:       PrecoFixo,
		FeeEnergiaFixo:  0.05,
		MetodoPotencia:  PotenciaSomaPeriodos,
		ComissaoServico: 10,
		FatorEnergia:    1,
		FatorPotencia:   1,
	}

	// 1000 * 0.05 = 50 de energia, sem potência, + 10 de serviço
	bruta := Calcular(cfg, Entrada{Consumo: 1000})
	assert.Equal(t, 60.0, bruta)
}

func TestCalcularPrecoIndexadoComMargem(t *testing.T) {
	cfg := &ConfiguracaoFormula{
		TipoPreco:           PrecoIndexado,
		FeeEnergia:          0.02,
		MargemIntermediacao: 0.01,
		MetodoPotencia:      PotenciaSomaPeriodos,
		FatorEnergia:        2,
		FatorPotencia:       1,
	}

	// 1000 * (0.02 + 0.01) = 30, * fator 2 = 60
	bruta := Calcular(cfg, Entrada{Consumo: 1000})
	assert.Equal(t, 60.0, bruta)
}

func TestCalcularPotenciaSomaPeriodos(t *testing.T) {
	cfg := &ConfiguracaoFormula{
		TipoPreco:      PrecoFixo,
		FeePotencia:    2,
		MetodoPotencia: PotenciaSomaPeriodos,
		FatorEnergia:   1,
		FatorPotencia:  1,
	}

	// (3 + 5) * 2 = 16; slots nulos são ignorados
	bruta := Calcular(cfg, Entrada{Potencias: []*float64{ptr(3), nil, ptr(5), nil, nil, nil}})
	assert.Equal(t, 16.0, bruta)
}

func TestCalcularPotenciaMedia(t *testing.T) {
	cfg := &ConfiguracaoFormula{
		TipoPreco:      PrecoFixo,
		FeePotencia:    2,
		MetodoPotencia: PotenciaMedia,
		FatorEnergia:   1,
		FatorPotencia:  1,
	}

	// média sobre os slots presentes: (3 + 5) / 2 * 2 = 8
	bruta := Calcular(cfg, Entrada{Potencias: []*float64{ptr(3), nil, ptr(5)}})
	assert.Equal(t, 8.0, bruta)
}

func TestCalcularFeeEscolhidoVencePadrao(t *testing.T) {
	cfg := &ConfiguracaoFormula{
		TipoPreco:      PrecoFixo,
		FeeEnergiaFixo: 0.05,
		MetodoPotencia: PotenciaSomaPeriodos,
		FatorEnergia:   1,
		FatorPotencia:  1,
	}

	bruta := Calcular(cfg, Entrada{Consumo: 1000, FeeEnergiaFixo: ptr(0.1)})
	assert.Equal(t, 100.0, bruta)
}

func TestCalcularArredondaCadaComponente(t *testing.T) {
	cfg := &ConfiguracaoFormula{
		TipoPreco:      PrecoFixo,
		FeeEnergiaFixo: 0.0333,
		FeePotencia:    0.333,
		MetodoPotencia: PotenciaSomaPeriodos,
		FatorEnergia:   1,
		FatorPotencia:  1,
	}

	// energia: 333 * 0.0333 = 11.0889 -> 11.09
	// potência: 7 * 0.333 = 2.331 -> 2.33
	bruta := Calcular(cfg, Entrada{Consumo: 333, Potencias: []*float64{ptr(7)}})
	assert.Equal(t, 13.42, bruta)
}
