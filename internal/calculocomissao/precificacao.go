// internal/calculocomissao/precificacao.go
package calculocomissao

import (
	"errors"

	"github.com/KromaEnergia/api-comissoes/internal/comercializadora"
	"github.com/KromaEnergia/api-comissoes/internal/contrato"
	"github.com/KromaEnergia/api-comissoes/internal/formulacomissao"
	"github.com/KromaEnergia/api-comissoes/internal/utils"
	"gorm.io/gorm"
)

// Precificacao é o resultado da resolução do modelo de comissão: o que a
// comercializadora paga (ComissaoBruta/ComissaoGnew), a margem retida e a
// base sobre a qual a rede de vendas é remunerada.
type Precificacao struct {
	ComissaoBruta       float64
	ComissaoGnew        float64
	MargemGnew          float64
	BaseRepasseParceiro float64
}

// precificar escolhe o modelo conforme a comercializadora.
func (s *Service) precificar(db *gorm.DB, ctr *contrato.Contrato, com *comercializadora.Comercializadora) (*Precificacao, error) {
	if com.ModeloComissao == comercializadora.ModeloFormula {
		return s.precificarFormula(db, ctr, com)
	}
	return s.precificarTabela(db, ctr, com)
}

// precificarTabela: comissão bruta direto da faixa; margem é uma fração da
// bruta e a base de repasse é o restante.
func (s *Service) precificarTabela(db *gorm.DB, ctr *contrato.Contrato, com *comercializadora.Comercializadora) (*Precificacao, error) {
	if ctr.Tarifa == "" || ctr.ConsumoAnual <= 0 {
		return nil, ErrTarifaOuConsumoAusente
	}

	faixa, err := s.Faixas.BuscarFaixa(db, *ctr.ProdutoID, ctr.Tarifa, ctr.ConsumoAnual)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFaixaNaoEncontrada
	}
	if err != nil {
		return nil, err
	}

	bruta := utils.Arredondar2(faixa.ValorBruto)
	margem := utils.Arredondar2(bruta * com.MargemGnewPct)
	base := utils.Arredondar2(bruta - margem)

	return &Precificacao{
		ComissaoBruta:       bruta,
		ComissaoGnew:        bruta,
		MargemGnew:          margem,
		BaseRepasseParceiro: base,
	}, nil
}

// precificarFormula: a comissão bruta sai da fórmula do produto, mas a base
// de repasse vem SEMPRE da tabela, exatamente como no modelo tabela — o que
// se fatura da comercializadora e o que se repassa à rede são figuras
// independentes. A margem é a diferença e pode ser negativa; nenhuma
// correção é aplicada.
func (s *Service) precificarFormula(db *gorm.DB, ctr *contrato.Contrato, com *comercializadora.Comercializadora) (*Precificacao, error) {
	cfg, err := s.Formulas.BuscarPorProduto(db, *ctr.ProdutoID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFormulaNaoConfigurada
	}
	if err != nil {
		return nil, err
	}

	bruta := formulacomissao.Calcular(cfg, formulacomissao.Entrada{
		Consumo:        ctr.ConsumoAnual,
		Potencias:      ctr.Potencias(),
		FeeEnergia:     ctr.FeeEnergia,
		FeeEnergiaFixo: ctr.FeeEnergiaFixo,
	})

	faixa, err := s.Faixas.BuscarFaixa(db, *ctr.ProdutoID, ctr.Tarifa, ctr.ConsumoAnual)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTabelaRepasseAusente
	}
	if err != nil {
		return nil, err
	}

	valorTabela := utils.Arredondar2(faixa.ValorBruto)
	margemTabela := utils.Arredondar2(valorTabela * com.MargemGnewPct)
	base := utils.Arredondar2(valorTabela - margemTabela)
	margem := utils.Arredondar2(bruta - base)

	return &Precificacao{
		ComissaoBruta:       bruta,
		ComissaoGnew:        bruta,
		MargemGnew:          margem,
		BaseRepasseParceiro: base,
	}, nil
}
