package calculocomissao

import (
	"context"
	"fmt"
	"testing"

	"github.com/KromaEnergia/api-comissoes/internal/ajustecomissao"
	"github.com/KromaEnergia/api-comissoes/internal/comercializadora"
	"github.com/KromaEnergia/api-comissoes/internal/consultor"
	"github.com/KromaEnergia/api-comissoes/internal/contrato"
	"github.com/KromaEnergia/api-comissoes/internal/formulacomissao"
	"github.com/KromaEnergia/api-comissoes/internal/linhacomissao"
	"github.com/KromaEnergia/api-comissoes/internal/nivelcomissao"
	"github.com/KromaEnergia/api-comissoes/internal/produtos"
	"github.com/KromaEnergia/api-comissoes/internal/tabelacomissao"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func abrirBanco(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&nivelcomissao.NivelComissao{},
		&consultor.Consultor{},
		&comercializadora.Comercializadora{},
		&produtos.Produto{},
		&tabelacomissao.FaixaComissao{},
		&formulacomissao.ConfiguracaoFormula{},
		&ajustecomissao.AjusteComissao{},
		&contrato.Contrato{},
		&linhacomissao.LinhaComissao{},
	))
	return db
}

func novoServico() *Service {
	return NewService(zap.NewNop(), nil)
}

func criarNivel(t *testing.T, db *gorm.DB, nome string, percentual *float64) *nivelcomissao.NivelComissao {
	t.Helper()
	n := &nivelcomissao.NivelComissao{Nome: nome, Percentual: percentual}
	require.NoError(t, db.Create(n).Error)
	return n
}

func criarConsultor(t *testing.T, db *gorm.DB, nome string, superiorID, nivelID *uint) *consultor.Consultor {
	t.Helper()
	c := &consultor.Consultor{
		Nome:            nome,
		Email:           fmt.Sprintf("%s@kroma.com.br", nome),
		CNPJ:            fmt.Sprintf("cnpj-%s", nome),
		SuperiorID:      superiorID,
		NivelComissaoID: nivelID,
	}
	require.NoError(t, db.Create(c).Error)
	return c
}

func ptrF(v float64) *float64 { return &v }

// cenário do caminho feliz, modelo tabela: faixa de R$100 com 10% de margem
// retida, dono com nível de 50% e superior com nível de 70%.
func montarCenarioTabela(t *testing.T, db *gorm.DB) *contrato.Contrato {
	t.Helper()

	com := &comercializadora.Comercializadora{
		Nome:           "Iberluz",
		ModeloComissao: comercializadora.ModeloTabela,
		MargemGnewPct:  0.10,
		Ativa:          true,
	}
	require.NoError(t, db.Create(com).Error)

	prod := &produtos.Produto{Nome: "Luz Empresas", Tipo: "luz", Ativo: true}
	require.NoError(t, db.Create(prod).Error)

	require.NoError(t, db.Create(&tabelacomissao.FaixaComissao{
		ProdutoID:  prod.ID,
		Tarifa:     "2.0TD",
		ConsumoMin: 0,
		ConsumoMax: 5000,
		ValorBruto: 100,
	}).Error)

	nivelDono := criarNivel(t, db, "Consultor", ptrF(0.5))
	nivelPai := criarNivel(t, db, "Gestor", ptrF(0.7))
	pai := criarConsultor(t, db, "helena", nil, &nivelPai.ID)
	dono := criarConsultor(t, db, "marcos", &pai.ID, &nivelDono.ID)

	ctr := &contrato.Contrato{
		CUPS:               "ES0021000000001234AB",
		Tarifa:             "2.0TD",
		ConsumoAnual:       3000,
		ComercializadoraID: &com.ID,
		ProdutoID:          &prod.ID,
		ConsultorID:        dono.ID,
	}
	require.NoError(t, db.Create(ctr).Error)
	return ctr
}

func TestCalcularModeloTabela(t *testing.T) {
	db := abrirBanco(t)
	ctr := montarCenarioTabela(t, db)

	res, err := novoServico().Calcular(context.Background(), db, ctr.ID)
	require.NoError(t, err)

	assert.Equal(t, 100.0, res.ComissaoBruta)
	assert.Equal(t, 100.0, res.ComissaoGnew)
	assert.Equal(t, 90.0, res.BaseRepasseParceiro)
	assert.Equal(t, 63.0, res.TotalRepasseRede)

	var atualizado contrato.Contrato
	require.NoError(t, db.First(&atualizado, ctr.ID).Error)
	assert.Equal(t, 10.0, atualizado.MargemGnew)
	assert.Equal(t, 90.0, atualizado.BaseRepasseParceiro)
	assert.Equal(t, 63.0, atualizado.TotalRepasseRede)
	assert.Equal(t, contrato.StatusComissaoCalculada, atualizado.StatusComissao)

	linhas, err := linhacomissao.NewRepository(db).ListByContrato(ctr.ID)
	require.NoError(t, err)
	require.Len(t, linhas, 2)

	// dono: linha cheia de 50% da base
	assert.Equal(t, ctr.ConsultorID, linhas[0].ConsultorID)
	assert.Equal(t, 45.0, linhas[0].ValorPago)
	assert.False(t, linhas[0].EDiferencial)
	assert.Nil(t, linhas[0].DiferencialDeConsultorID)

	// superior: só o delta 90*0.7 - 45, referenciando o dono
	assert.Equal(t, 18.0, linhas[1].ValorPago)
	assert.True(t, linhas[1].EDiferencial)
	require.NotNil(t, linhas[1].DiferencialDeConsultorID)
	assert.Equal(t, ctr.ConsultorID, *linhas[1].DiferencialDeConsultorID)
}

func TestCalcularEIdempotente(t *testing.T) {
	db := abrirBanco(t)
	ctr := montarCenarioTabela(t, db)
	svc := novoServico()

	_, err := svc.Calcular(context.Background(), db, ctr.ID)
	require.NoError(t, err)
	res, err := svc.Calcular(context.Background(), db, ctr.ID)
	require.NoError(t, err)

	// as linhas foram regravadas, não acumuladas
	linhas, err := linhacomissao.NewRepository(db).ListByContrato(ctr.ID)
	require.NoError(t, err)
	require.Len(t, linhas, 2)
	assert.Equal(t, 45.0, linhas[0].ValorPago)
	assert.Equal(t, 18.0, linhas[1].ValorPago)
	assert.Equal(t, 63.0, res.TotalRepasseRede)
}

// A soma telescópica deve fechar no maior percentual da cadeia, e um nível
// intermediário com percentual menor que o de baixo não recebe linha, mas
// também não apaga o marco do direito nominal.
func TestCascataTelescopicaComNivelMenorNoMeio(t *testing.T) {
	db := abrirBanco(t)
	ctr := montarCenarioTabela(t, db)

	// troca a cadeia: dono 50% -> meio 30% -> topo 80%
	nivelMeio := criarNivel(t, db, "Meio", ptrF(0.3))
	nivelTopo := criarNivel(t, db, "Topo", ptrF(0.8))
	topo := criarConsultor(t, db, "rita", nil, &nivelTopo.ID)
	meio := criarConsultor(t, db, "bruno", &topo.ID, &nivelMeio.ID)
	require.NoError(t, db.Model(&consultor.Consultor{}).
		Where("id = ?", ctr.ConsultorID).
		Update("superior_id", meio.ID).Error)

	res, err := novoServico().Calcular(context.Background(), db, ctr.ID)
	require.NoError(t, err)

	linhas, err := linhacomissao.NewRepository(db).ListByContrato(ctr.ID)
	require.NoError(t, err)
	require.Len(t, linhas, 2)

	// dono 90*0.5 = 45; meio 90*0.3 = 27 < 45 => sem linha; topo 90*0.8 -
	// 27 (direito nominal do meio, não o que foi pago) = 45.
	assert.Equal(t, 45.0, linhas[0].ValorPago)
	assert.Equal(t, topo.ID, linhas[1].ConsultorID)
	assert.Equal(t, 45.0, linhas[1].ValorPago)
	require.NotNil(t, linhas[1].DiferencialDeConsultorID)
	assert.Equal(t, meio.ID, *linhas[1].DiferencialDeConsultorID)
	assert.Equal(t, 90.0, res.TotalRepasseRede)
}

func TestAjusteFixoDoDonoNaoMudaODireitoDoSuperior(t *testing.T) {
	db := abrirBanco(t)
	ctr := montarCenarioTabela(t, db)

	require.NoError(t, db.Create(&ajustecomissao.AjusteComissao{
		ConsultorID: ctr.ConsultorID,
		Tipo:        ajustecomissao.TipoFixo,
		Valor:       50,
	}).Error)

	res, err := novoServico().Calcular(context.Background(), db, ctr.ID)
	require.NoError(t, err)

	linhas, err := linhacomissao.NewRepository(db).ListByContrato(ctr.ID)
	require.NoError(t, err)
	require.Len(t, linhas, 2)

	// dono recebe o montante fixo; o superior recebe 90*0.7 - 50
	assert.Equal(t, 50.0, linhas[0].ValorPago)
	assert.Equal(t, 13.0, linhas[1].ValorPago)
	assert.Equal(t, 63.0, res.TotalRepasseRede)
}

func TestCalcularSemVinculosNaoTocaOContrato(t *testing.T) {
	db := abrirBanco(t)
	ctr := &contrato.Contrato{Tarifa: "2.0TD", ConsumoAnual: 3000, ConsultorID: 1}
	require.NoError(t, db.Create(ctr).Error)

	_, err := novoServico().Calcular(context.Background(), db, ctr.ID)
	require.ErrorIs(t, err, ErrVinculosAusentes)

	var atualizado contrato.Contrato
	require.NoError(t, db.First(&atualizado, ctr.ID).Error)
	assert.Equal(t, contrato.StatusComissaoPendente, atualizado.StatusComissao)
	assert.Zero(t, atualizado.ComissaoBruta)
}

func TestCalcularComercializadoraInexistente(t *testing.T) {
	db := abrirBanco(t)
	ctr := montarCenarioTabela(t, db)
	fantasma := uint(999)
	require.NoError(t, db.Model(&contrato.Contrato{}).
		Where("id = ?", ctr.ID).
		Update("comercializadora_id", fantasma).Error)

	_, err := novoServico().Calcular(context.Background(), db, ctr.ID)
	require.ErrorIs(t, err, ErrComercializadoraNaoEncontrada)
}

func TestCalcularTabelaSemTarifaOuConsumo(t *testing.T) {
	db := abrirBanco(t)
	ctr := montarCenarioTabela(t, db)
	require.NoError(t, db.Model(&contrato.Contrato{}).
		Where("id = ?", ctr.ID).
		Update("consumo_anual", 0).Error)

	_, err := novoServico().Calcular(context.Background(), db, ctr.ID)
	require.ErrorIs(t, err, ErrTarifaOuConsumoAusente)
}

func TestCalcularTabelaForaDaFaixa(t *testing.T) {
	db := abrirBanco(t)
	ctr := montarCenarioTabela(t, db)
	require.NoError(t, db.Model(&contrato.Contrato{}).
		Where("id = ?", ctr.ID).
		Update("consumo_anual", 9000).Error)

	_, err := novoServico().Calcular(context.Background(), db, ctr.ID)
	require.ErrorIs(t, err, ErrFaixaNaoEncontrada)

	// a falha aconteceu antes de qualquer escrita
	var atualizado contrato.Contrato
	require.NoError(t, db.First(&atualizado, ctr.ID).Error)
	assert.Equal(t, contrato.StatusComissaoPendente, atualizado.StatusComissao)
}

func TestCalcularModeloFormulaComMargemNegativa(t *testing.T) {
	db := abrirBanco(t)
	ctr := montarCenarioTabela(t, db)
	require.NoError(t, db.Model(&comercializadora.Comercializadora{}).
		Where("id = ?", *ctr.ComercializadoraID).
		Update("modelo_comissao", comercializadora.ModeloFormula).Error)

	// fórmula a preço fixo rende 3000*0.01 + 10 = 40; base da tabela segue
	// 90, margem 40 - 90 = -50 e o cálculo não falha
	require.NoError(t, db.Create(&formulacomissao.ConfiguracaoFormula{
		ProdutoID:       *ctr.ProdutoID,
		TipoPreco:       formulacomissao.PrecoFixo,
		FeeEnergiaFixo:  0.01,
		ComissaoServico: 10,
		MetodoPotencia:  formulacomissao.PotenciaSomaPeriodos,
		FatorEnergia:    1,
		FatorPotencia:   1,
	}).Error)

	res, err := novoServico().Calcular(context.Background(), db, ctr.ID)
	require.NoError(t, err)

	assert.Equal(t, 40.0, res.ComissaoBruta)
	assert.Equal(t, 90.0, res.BaseRepasseParceiro)

	var atualizado contrato.Contrato
	require.NoError(t, db.First(&atualizado, ctr.ID).Error)
	assert.Equal(t, -50.0, atualizado.MargemGnew)
	// a rede é remunerada sobre a base da tabela, indiferente à fórmula
	assert.Equal(t, 63.0, atualizado.TotalRepasseRede)
}

func TestCalcularFormulaSemConfiguracao(t *testing.T) {
	db := abrirBanco(t)
	ctr := montarCenarioTabela(t, db)
	require.NoError(t, db.Model(&comercializadora.Comercializadora{}).
		Where("id = ?", *ctr.ComercializadoraID).
		Update("modelo_comissao", comercializadora.ModeloFormula).Error)

	_, err := novoServico().Calcular(context.Background(), db, ctr.ID)
	require.ErrorIs(t, err, ErrFormulaNaoConfigurada)
}

func TestCalcularFormulaSemTabelaDeRepasse(t *testing.T) {
	db := abrirBanco(t)
	ctr := montarCenarioTabela(t, db)
	require.NoError(t, db.Model(&comercializadora.Comercializadora{}).
		Where("id = ?", *ctr.ComercializadoraID).
		Update("modelo_comissao", comercializadora.ModeloFormula).Error)
	require.NoError(t, db.Create(&formulacomissao.ConfiguracaoFormula{
		ProdutoID:      *ctr.ProdutoID,
		TipoPreco:      formulacomissao.PrecoFixo,
		FeeEnergiaFixo: 0.01,
		MetodoPotencia: formulacomissao.PotenciaSomaPeriodos,
		FatorEnergia:   1,
		FatorPotencia:  1,
	}).Error)
	require.NoError(t, db.Where("1 = 1").Delete(&tabelacomissao.FaixaComissao{}).Error)

	_, err := novoServico().Calcular(context.Background(), db, ctr.ID)
	require.ErrorIs(t, err, ErrTabelaRepasseAusente)
}

func TestCalcularComCicloNaHierarquia(t *testing.T) {
	db := abrirBanco(t)
	ctr := montarCenarioTabela(t, db)

	// fecha um ciclo: o superior do dono passa a apontar de volta pro dono
	var dono consultor.Consultor
	require.NoError(t, db.First(&dono, ctr.ConsultorID).Error)
	require.NoError(t, db.Model(&consultor.Consultor{}).
		Where("id = ?", *dono.SuperiorID).
		Update("superior_id", dono.ID).Error)

	res, err := novoServico().Calcular(context.Background(), db, ctr.ID)
	require.NoError(t, err)

	// a cadeia é truncada na reincidência, mas as linhas de quem já foi
	// visitado saem normalmente
	linhas, err := linhacomissao.NewRepository(db).ListByContrato(ctr.ID)
	require.NoError(t, err)
	assert.Len(t, linhas, 2)
	assert.Equal(t, 63.0, res.TotalRepasseRede)
}

func TestCalcularDonoSemPerfil(t *testing.T) {
	db := abrirBanco(t)
	ctr := montarCenarioTabela(t, db)
	require.NoError(t, db.Model(&contrato.Contrato{}).
		Where("id = ?", ctr.ID).
		Update("consultor_id", 999).Error)

	res, err := novoServico().Calcular(context.Background(), db, ctr.ID)
	require.NoError(t, err)

	// a precificação foi gravada, mas não há cadeia nem repasse
	assert.Equal(t, 0.0, res.TotalRepasseRede)
	linhas, err := linhacomissao.NewRepository(db).ListByContrato(ctr.ID)
	require.NoError(t, err)
	assert.Empty(t, linhas)

	var atualizado contrato.Contrato
	require.NoError(t, db.First(&atualizado, ctr.ID).Error)
	assert.Equal(t, contrato.StatusComissaoCalculada, atualizado.StatusComissao)
	assert.Equal(t, 0.0, atualizado.TotalRepasseRede)
}

func TestCalcularContratoInexistente(t *testing.T) {
	db := abrirBanco(t)

	_, err := novoServico().Calcular(context.Background(), db, 12345)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
