// internal/formulacomissao/calculadora.go
package formulacomissao

import "github.com/KromaEnergia/api-comissoes/internal/utils"

// Entrada reúne o que o contrato fornece à fórmula: consumo anual, os até
// seis períodos de potência (slot nulo = período não contratado) e os fees
// escolhidos na venda, quando houver. Fee escolhido tem precedência sobre o
// padrão da configuração.
type Entrada struct {
	Consumo        float64
	Potencias      []*float64
	FeeEnergia     *float64
	FeeEnergiaFixo *float64
}

// Calcular avalia a fórmula e devolve a comissão bruta. Cada componente
// monetário é arredondado a 2 casas assim que é obtido.
func Calcular(cfg *ConfiguracaoFormula, in Entrada) float64 {
	energia := componenteEnergia(cfg, in)
	potencia := componentePotencia(cfg, in.Potencias)
	return utils.Arredondar2(potencia + energia + cfg.ComissaoServico)
}

func componenteEnergia(cfg *ConfiguracaoFormula, in Entrada) float64 {
	var energia float64
	if cfg.TipoPreco == PrecoFixo {
		fee := cfg.FeeEnergiaFixo
		if in.FeeEnergiaFixo != nil {
			fee = *in.FeeEnergiaFixo
		}
		energia = in.Consumo * fee
	} else {
		fee := cfg.FeeEnergia
		if in.FeeEnergia != nil {
			fee = *in.FeeEnergia
		}
		energia = in.Consumo * (fee + cfg.MargemIntermediacao)
	}
	return utils.Arredondar2(energia * cfg.FatorEnergia)
}

func componentePotencia(cfg *ConfiguracaoFormula, potencias []*float64) float64 {
	var soma float64
	var presentes int
	for _, p := range potencias {
		if p == nil {
			continue
		}
		soma += *p
		presentes++
	}
	if presentes == 0 {
		return 0
	}

	var potencia float64
	if cfg.MetodoPotencia == PotenciaMedia {
		potencia = (soma / float64(presentes)) * cfg.FeePotencia
	} else {
		potencia = soma * cfg.FeePotencia
	}
	return utils.Arredondar2(potencia * cfg.FatorPotencia)
}
