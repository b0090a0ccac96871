package consultor

// LoginRequest é usado em POST /login
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type createConsultorRequest struct {
	Nome            string `json:"nome"`
	Sobrenome       string `json:"sobrenome"`
	CNPJ            string `json:"cnpj"`
	Email           string `json:"email"`
	Telefone        string `json:"telefone"`
	Foto            string `json:"foto"`
	Senha           string `json:"senha"`
	IsAdmin         bool   `json:"isAdmin"`
	SuperiorID      *uint  `json:"superiorId"`
	NivelComissaoID *uint  `json:"nivelComissaoId"`
}

// updateConsultorRequest usa ponteiros para permitir omitir campos no JSON
type updateConsultorRequest struct {
	Nome            *string `json:"nome,omitempty"`
	Sobrenome       *string `json:"sobrenome,omitempty"`
	Telefone        *string `json:"telefone,omitempty"`
	Foto            *string `json:"foto,omitempty"`
	SuperiorID      *uint   `json:"superiorId,omitempty"`
	NivelComissaoID *uint   `json:"nivelComissaoId,omitempty"`
}
