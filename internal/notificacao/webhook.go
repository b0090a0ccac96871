package notificacao

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"

	"go.uber.org/zap"
)

// Notificador envia alertas operacionais para o webhook configurado em
// WEBHOOK_ALERTA_URL. Sem URL configurada, os alertas ficam só no log.
type Notificador struct {
	URL    string
	Logger *zap.Logger
}

func NewNotificador(logger *zap.Logger) *Notificador {
	return &Notificador{
		URL:    os.Getenv("WEBHOOK_ALERTA_URL"),
		Logger: logger,
	}
}

// EnviarAlertaHierarquia avisa que a cadeia hierárquica de um contrato foi
// truncada (ciclo ou perfil ausente). O cálculo segue normalmente; o alerta
// existe para que alguém corrija o dado de hierarquia.
func (n *Notificador) EnviarAlertaHierarquia(contratoID, consultorID uint, motivo string) {
	if n.URL == "" {
		return
	}
	payload := map[string]interface{}{
		"mensagem":    "Alerta: cadeia hierárquica truncada durante cálculo de comissão",
		"contratoId":  contratoID,
		"consultorId": consultorID,
		"motivo":      motivo,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(n.URL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		n.Logger.Error("erro ao enviar webhook de alerta", zap.Error(err))
		return
	}
	defer resp.Body.Close()
}
