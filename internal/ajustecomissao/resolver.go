// internal/ajustecomissao/resolver.go
package ajustecomissao

import "github.com/KromaEnergia/api-comissoes/internal/utils"

// ComissaoEfetiva resolve o direito nominal de um consultor sobre a base de
// repasse. Ordem de resolução, vence a primeira que casar:
//  1. ajuste do consultor para este produto;
//  2. ajuste global do consultor (produto nulo);
//  3. taxa padrão do nível, se houver;
//  4. zero.
func ComissaoEfetiva(consultorID uint, produtoID uint, base float64, percentualNivel *float64, indice Indice) float64 {
	var global *AjusteComissao
	for i := range indice[consultorID] {
		a := &indice[consultorID][i]
		if a.ProdutoID != nil && *a.ProdutoID == produtoID {
			return aplicar(a, base)
		}
		if a.ProdutoID == nil && global == nil {
			global = a
		}
	}
	if global != nil {
		return aplicar(global, base)
	}
	if percentualNivel != nil {
		return utils.Arredondar2(base * *percentualNivel)
	}
	return 0
}

func aplicar(a *AjusteComissao, base float64) float64 {
	if a.Tipo == TipoFixo {
		return utils.Arredondar2(a.Valor)
	}
	return utils.Arredondar2(base * a.Valor)
}
