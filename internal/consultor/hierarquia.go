package consultor

import (
	"errors"

	"gorm.io/gorm"
)

// NoCadeia é um consultor na cadeia hierárquica, já com o nível resolvido.
// NomeNivel e Percentual são nulos quando o consultor não tem nível
// atribuído (ou o nível não tem taxa padrão, no caso do Percentual).
type NoCadeia struct {
	ConsultorID uint
	Nome        string
	NomeNivel   *string
	Percentual  *float64
}

// MotivoTruncamento identifica por que a cadeia foi interrompida antes de um
// superior nulo.
const (
	TruncadaPorCiclo         = "ciclo"
	TruncadaPorPerfilAusente = "perfil_ausente"
)

// AvisoTruncamento é chamado quando a cadeia é truncada sem erro. O cálculo
// segue em frente com a cadeia parcial; o aviso existe só para dar
// visibilidade a dados de hierarquia ruins.
type AvisoTruncamento func(motivo string, consultorID uint)

// CadeiaHierarquia caminha os ponteiros SuperiorID a partir do dono do
// contrato e devolve [dono, superior, superior do superior, ...]. A caminhada
// é iterativa, com conjunto de visitados: um ciclo ou um perfil inexistente
// trunca a cadeia naquele ponto, sem erro.
func CadeiaHierarquia(db *gorm.DB, donoID uint, avisar AvisoTruncamento) ([]NoCadeia, error) {
	var cadeia []NoCadeia
	visitados := map[uint]bool{}

	atual := &donoID
	for atual != nil {
		id := *atual
		if visitados[id] {
			if avisar != nil {
				avisar(TruncadaPorCiclo, id)
			}
			break
		}
		visitados[id] = true

		var c Consultor
		err := db.Preload("Nivel").First(&c, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if avisar != nil {
				avisar(TruncadaPorPerfilAusente, id)
			}
			break
		}
		if err != nil {
			return nil, err
		}

		no := NoCadeia{ConsultorID: c.ID, Nome: c.Nome}
		if c.Nivel != nil {
			no.NomeNivel = &c.Nivel.Nome
			no.Percentual = c.Nivel.Percentual
		}
		cadeia = append(cadeia, no)

		atual = c.SuperiorID
	}

	return cadeia, nil
}
