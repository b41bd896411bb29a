package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/config"
)

func TestDSN(t *testing.T) {
	cfg := config.Config{
		DBUser: "cine",
		DBPass: "s3gr3do",
		DBHost: "db",
		DBPort: "3306",
		DBName: "cinemanager",
	}
	assert.Equal(t,
		"cine:s3gr3do@tcp(db:3306)/cinemanager?charset=utf8mb4&parseTime=true&loc=UTC",
		dsn(cfg))
}

func TestDSNSemSenha(t *testing.T) {
	cfg := config.Config{
		DBUser: "cine",
		DBHost: "localhost",
		DBPort: "3306",
		DBName: "cinemanager",
	}
	assert.Equal(t,
		"cine@tcp(localhost:3306)/cinemanager?charset=utf8mb4&parseTime=true&loc=UTC",
		dsn(cfg))
}
