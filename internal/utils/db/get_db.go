package db

import (
	"os"
	"strconv"

	"gorm.io/gorm"
)

func GetDB() (*gorm.DB, error) {
	dbHost := os.Getenv("DB_HOST")
	dbHostPort := os.Getenv("DB_PORT")
	port, err := strconv.ParseUint(dbHostPort, 10, 32)
	if err != nil {
		port = 5432 // porta padrão do PostgreSQL
	}

	dbName := os.Getenv("DB_NAME")
	dbCredsSecretID := os.Getenv("DB_SECRET_ID")
	return ConnectDataBase(uint(port), dbHost, dbName, dbCredsSecretID)
}
