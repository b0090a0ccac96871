// internal/calculocomissao/erros.go
package calculocomissao

// Tipos de falha do cálculo: dados de entrada incompletos no contrato, ou
// configuração de comissão que não cobre o contrato.
const (
	TipoValidacao = "validacao"
	TipoConsulta  = "consulta"
)

// ErroCalculo é a falha estruturada devolvida ao chamador. Codigo é estável
// e faz parte do contrato da API; Mensagem é só para leitura humana.
type ErroCalculo struct {
	Codigo   string `json:"erro"`
	Tipo     string `json:"tipo"`
	Mensagem string `json:"mensagem"`
}

func (e *ErroCalculo) Error() string {
	return e.Codigo + ": " + e.Mensagem
}

var (
	// ErrVinculosAusentes: contrato sem comercializadora ou produto.
	ErrVinculosAusentes = &ErroCalculo{
		Codigo:   "MissingCompanyOrProduct",
		Tipo:     TipoValidacao,
		Mensagem: "contrato sem comercializadora ou produto vinculado",
	}
	// ErrComercializadoraNaoEncontrada: o vínculo aponta para uma
	// comercializadora que não existe.
	ErrComercializadoraNaoEncontrada = &ErroCalculo{
		Codigo:   "CompanyNotFound",
		Tipo:     TipoConsulta,
		Mensagem: "comercializadora vinculada ao contrato não encontrada",
	}
	// ErrTarifaOuConsumoAusente: o modelo tabela exige tarifa e consumo.
	ErrTarifaOuConsumoAusente = &ErroCalculo{
		Codigo:   "MissingTariffOrConsumption",
		Tipo:     TipoValidacao,
		Mensagem: "contrato sem tarifa ou sem consumo anual positivo",
	}
	// ErrFaixaNaoEncontrada: nenhuma faixa cobre o consumo do contrato.
	ErrFaixaNaoEncontrada = &ErroCalculo{
		Codigo:   "NoRateForRange",
		Tipo:     TipoConsulta,
		Mensagem: "nenhuma faixa de comissão cobre o produto, tarifa e consumo do contrato",
	}
	// ErrFormulaNaoConfigurada: modelo fórmula sem configuração do produto.
	ErrFormulaNaoConfigurada = &ErroCalculo{
		Codigo:   "NoFormulaConfig",
		Tipo:     TipoConsulta,
		Mensagem: "produto sem configuração de fórmula de comissão",
	}
	// ErrTabelaRepasseAusente: no modelo fórmula a base de repasse vem da
	// tabela, e a tabela não cobre o contrato.
	ErrTabelaRepasseAusente = &ErroCalculo{
		Codigo:   "NoPayoutTableForFormulaModel",
		Tipo:     TipoConsulta,
		Mensagem: "sem faixa de tabela para derivar a base de repasse no modelo fórmula",
	}
)
