package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/config"
	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/database"
	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/handler"
	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/middleware"
	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/repository"
	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/router"
	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/service"
)

func main() {
	// .env is optional; real deployments set variables in the environment.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowCredentials: true,
	}))

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis indisponivel, rate limiting desativado")
	}
	e.Use(middleware.NewRateLimiter(config.LoadRateLimitConfig(), rdb))

	usuarios := repository.NewUsuarioRepo(db)
	salas := repository.NewSalaRepo(db)
	sessoes := repository.NewSessaoRepo(db)
	produtos := repository.NewProdutoRepo(db)

	eventos := service.NewPublicador()

	router.RegisterRoutes(e)
	router.RegisterAuth(e, cfg.JWTSecret, handler.NewAuthHandler(cfg, usuarios, eventos))
	router.RegisterRecursos(e, cfg.JWTSecret,
		handler.NewSalaHandler(salas),
		handler.NewSessaoHandler(sessoes, salas),
		handler.NewProdutoHandler(produtos, eventos),
		handler.NewUsuarioHandler(cfg, usuarios),
	)

	log.Printf("CineManager API rodando na porta %s (env=%s)", cfg.Port, cfg.Env)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
