package router

import (
	"github.com/labstack/echo/v4"

	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/handler"
	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/middleware"
)

// RegisterRoutes mounts the public service endpoints.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Index)
	e.GET("/healthz", handler.Health)
}

// RegisterAuth mounts the auth endpoints under /api/auth.  Only /me sits
// behind the cookie check.
func RegisterAuth(e *echo.Echo, jwtSecret string, h *handler.AuthHandler) {
	g := e.Group("/api/auth")
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/logout", h.Logout)
	g.GET("/me", h.Me, middleware.AuthJWT(jwtSecret))
}

// RegisterRecursos mounts the protected resource groups.  Every route here
// requires a valid session cookie.
func RegisterRecursos(e *echo.Echo, jwtSecret string, salas *handler.SalaHandler, sessoes *handler.SessaoHandler, produtos *handler.ProdutoHandler, usuarios *handler.UsuarioHandler) {
	auth := middleware.AuthJWT(jwtSecret)

	gs := e.Group("/api/salas", auth)
	gs.GET("", salas.Listar)
	gs.GET("/:id", salas.Buscar)
	gs.POST("", salas.Criar)
	gs.PUT("/:id", salas.Atualizar)
	gs.DELETE("/:id", salas.Excluir)

	gx := e.Group("/api/sessoes", auth)
	gx.GET("", sessoes.Listar)
	gx.GET("/:id", sessoes.Buscar)
	gx.POST("", sessoes.Criar)
	gx.PUT("/:id", sessoes.Atualizar)
	gx.DELETE("/:id", sessoes.Excluir)

	gp := e.Group("/api/produtos", auth)
	gp.GET("", produtos.Listar)
	gp.GET("/:id", produtos.Buscar)
	gp.POST("", produtos.Criar)
	gp.PUT("/:id", produtos.Atualizar)
	gp.PATCH("/:id/estoque", produtos.AjustarEstoque)
	gp.DELETE("/:id", produtos.Excluir)

	// Accounts are created through /api/auth/register, never here.
	gu := e.Group("/api/usuarios", auth)
	gu.GET("", usuarios.Listar)
	gu.GET("/:id", usuarios.Buscar)
	gu.PUT("/:id", usuarios.Atualizar)
	gu.DELETE("/:id", usuarios.Excluir)
}
