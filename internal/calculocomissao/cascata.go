// internal/calculocomissao/cascata.go
package calculocomissao

import (
	"github.com/KromaEnergia/api-comissoes/internal/ajustecomissao"
	"github.com/KromaEnergia/api-comissoes/internal/consultor"
	"github.com/KromaEnergia/api-comissoes/internal/contrato"
	"github.com/KromaEnergia/api-comissoes/internal/linhacomissao"
	"github.com/KromaEnergia/api-comissoes/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// executarCascata reconstrói o razão de comissões do contrato: apaga todas
// as linhas existentes, percorre a cadeia hierárquica do dono e grava uma
// linha cheia para o dono e uma linha diferencial para cada superior cujo
// direito nominal supere o do nível imediatamente abaixo.
//
// O direito nominal de cada um é sempre calculado sobre a MESMA base de
// repasse original (nunca sobre o que já foi distribuído abaixo): a soma
// telescópica resultante evita pagar duas vezes percentuais de níveis que se
// sobrepõem subindo a cadeia.
//
// Devolve o total repassado à rede e se houve linhas gravadas.
func (s *Service) executarCascata(db *gorm.DB, ctr *contrato.Contrato, base float64) (float64, bool, error) {
	linhasRepo := linhacomissao.NewRepository(db)

	if err := linhasRepo.DeleteByContrato(ctr.ID); err != nil {
		return 0, false, err
	}

	avisar := func(motivo string, consultorID uint) {
		s.Logger.Warn("cadeia hierárquica truncada durante o cálculo",
			zap.Uint("contratoId", ctr.ID),
			zap.Uint("consultorId", consultorID),
			zap.String("motivo", motivo),
		)
		if s.Notificador != nil {
			s.Notificador.EnviarAlertaHierarquia(ctr.ID, consultorID, motivo)
		}
	}

	cadeia, err := consultor.CadeiaHierarquia(db, ctr.ConsultorID, avisar)
	if err != nil {
		return 0, false, err
	}
	if len(cadeia) == 0 {
		// dono sem perfil: nada a pagar
		return 0, false, nil
	}

	ids := make([]uint, len(cadeia))
	for i, no := range cadeia {
		ids[i] = no.ConsultorID
	}
	indice, err := s.Ajustes.CarregarParaCadeia(db, ids, *ctr.ProdutoID)
	if err != nil {
		return 0, false, err
	}

	var linhas []*linhacomissao.LinhaComissao

	dono := cadeia[0]
	ultimoDireito := ajustecomissao.ComissaoEfetiva(dono.ConsultorID, *ctr.ProdutoID, base, dono.Percentual, indice)
	linhas = append(linhas, &linhacomissao.LinhaComissao{
		ContratoID:         ctr.ID,
		ConsultorID:        dono.ConsultorID,
		ValorPago:          ultimoDireito,
		NomeNivel:          dono.NomeNivel,
		PercentualAplicado: dono.Percentual,
		EDiferencial:       false,
	})

	abaixoID := dono.ConsultorID
	for _, no := range cadeia[1:] {
		direito := ajustecomissao.ComissaoEfetiva(no.ConsultorID, *ctr.ProdutoID, base, no.Percentual, indice)
		diferencial := utils.Arredondar2(direito - ultimoDireito)
		if diferencial > 0 {
			ref := abaixoID
			linhas = append(linhas, &linhacomissao.LinhaComissao{
				ContratoID:               ctr.ID,
				ConsultorID:              no.ConsultorID,
				ValorPago:                diferencial,
				NomeNivel:                no.NomeNivel,
				PercentualAplicado:       no.Percentual,
				EDiferencial:             true,
				DiferencialDeConsultorID: &ref,
			})
		}
		// o marco é sempre o direito nominal, não o diferencial pago
		ultimoDireito = direito
		abaixoID = no.ConsultorID
	}

	if err := linhasRepo.CreateInBatch(linhas); err != nil {
		return 0, false, err
	}

	total, err := linhasRepo.SomarValorPorContrato(ctr.ID)
	if err != nil {
		return 0, false, err
	}
	return total, true, nil
}
