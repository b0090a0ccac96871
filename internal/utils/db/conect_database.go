package db

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDataBase abre a conexão Postgres com as credenciais resolvidas pelo
// Secrets Manager. DB_SSL_MODE_DISABLE=true desliga o SSL para
// desenvolvimento local.
func ConnectDataBase(porta uint, host, nomeBanco, secretID string) (*gorm.DB, error) {
	var sslMode string
	if os.Getenv("DB_SSL_MODE_DISABLE") == "true" {
		sslMode = " sslmode=disable"
	}

	usuario, senha := retrieveCredentials(secretID)
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d%s",
		host, usuario, senha, nomeBanco, porta, sslMode)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
}
