// internal/calculocomissao/dto.go
package calculocomissao

// Resultado resume o cálculo para o chamador.
type Resultado struct {
	ComissaoBruta       float64 `json:"comissaoBruta"`
	ComissaoGnew        float64 `json:"comissaoGnew"`
	BaseRepasseParceiro float64 `json:"baseRepasseParceiro"`
	TotalRepasseRede    float64 `json:"totalRepasseRede"`
}
