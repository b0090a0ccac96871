// internal/calculocomissao/service.go
package calculocomissao

import (
	"context"
	"errors"

	"github.com/KromaEnergia/api-comissoes/internal/ajustecomissao"
	"github.com/KromaEnergia/api-comissoes/internal/comercializadora"
	"github.com/KromaEnergia/api-comissoes/internal/contrato"
	"github.com/KromaEnergia/api-comissoes/internal/formulacomissao"
	"github.com/KromaEnergia/api-comissoes/internal/notificacao"
	"github.com/KromaEnergia/api-comissoes/internal/tabelacomissao"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service orquestra o cálculo completo: precificação (tabela ou fórmula),
// gravação dos campos derivados do contrato e reconstrução da cascata de
// linhas. O *gorm.DB entra por chamada, nunca fica guardado no Service:
// é a credencial de acesso ao armazenamento, e testes injetam a sua.
type Service struct {
	Logger      *zap.Logger
	Notificador *notificacao.Notificador

	Contratos         contrato.Repository
	Comercializadoras comercializadora.Repository
	Faixas            tabelacomissao.Repository
	Formulas          formulacomissao.Repository
	Ajustes           ajustecomissao.Repository
}

func NewService(logger *zap.Logger, notificador *notificacao.Notificador) *Service {
	return &Service{
		Logger:            logger,
		Notificador:       notificador,
		Contratos:         contrato.NewRepository(),
		Comercializadoras: comercializadora.NewRepository(),
		Faixas:            tabelacomissao.NewRepository(),
		Formulas:          formulacomissao.NewRepository(),
		Ajustes:           ajustecomissao.NewRepository(),
	}
}

// Calcular executa o cálculo de comissões de um contrato do início ao fim.
// Qualquer falha de precificação interrompe ANTES de escrever qualquer campo
// do contrato. A cascata (apagar + regravar linhas + atualizar o total) não
// tem rollback: uma falha no meio deixa estado parcial, que a próxima
// execução reconstrói — o recálculo é sempre disparado por ação explícita
// de um operador.
func (s *Service) Calcular(ctx context.Context, db *gorm.DB, contratoID uint) (*Resultado, error) {
	db = db.WithContext(ctx)

	ctr, err := s.Contratos.BuscarPorID(db, contratoID)
	if err != nil {
		return nil, err
	}

	if ctr.ComercializadoraID == nil || ctr.ProdutoID == nil {
		return nil, ErrVinculosAusentes
	}

	com, err := s.Comercializadoras.BuscarPorID(db, *ctr.ComercializadoraID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrComercializadoraNaoEncontrada
	}
	if err != nil {
		return nil, err
	}

	prec, err := s.precificar(db, ctr, com)
	if err != nil {
		return nil, err
	}

	if err := s.Contratos.AtualizarCamposComissao(db, ctr.ID, map[string]interface{}{
		"comissao_bruta":        prec.ComissaoBruta,
		"comissao_gnew":         prec.ComissaoGnew,
		"margem_gnew":           prec.MargemGnew,
		"base_repasse_parceiro": prec.BaseRepasseParceiro,
		"status_comissao":       contrato.StatusComissaoCalculada,
	}); err != nil {
		return nil, err
	}

	total, pagou, err := s.executarCascata(db, ctr, prec.BaseRepasseParceiro)
	if err != nil {
		return nil, err
	}
	if pagou {
		if err := s.Contratos.AtualizarCamposComissao(db, ctr.ID, map[string]interface{}{
			"total_repasse_rede": total,
		}); err != nil {
			return nil, err
		}
	}

	s.Logger.Info("comissões recalculadas",
		zap.Uint("contratoId", ctr.ID),
		zap.Float64("comissaoBruta", prec.ComissaoBruta),
		zap.Float64("baseRepasse", prec.BaseRepasseParceiro),
		zap.Float64("totalRepasseRede", total),
	)

	return &Resultado{
		ComissaoBruta:       prec.ComissaoBruta,
		ComissaoGnew:        prec.ComissaoGnew,
		BaseRepasseParceiro: prec.BaseRepasseParceiro,
		TotalRepasseRede:    total,
	}, nil
}
