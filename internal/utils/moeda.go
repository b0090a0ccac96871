package utils

import "github.com/shopspring/decimal"

// Arredondar2 arredonda um valor monetário para 2 casas decimais,
// meio-afastando-se de zero (half away from zero). Todo valor intermediário
// do cálculo de comissão passa por aqui para limitar a deriva de ponto
// flutuante.
func Arredondar2(valor float64) float64 {
	f, _ := decimal.NewFromFloat(valor).Round(2).Float64()
	return f
}
