package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	handlers "github.com/rakapradana/goaltrack/internal/interface/http"
	"github.com/rakapradana/goaltrack/internal/interface/middleware"
	"github.com/rakapradana/goaltrack/pkg/helpers"
)

// AuthModule wires the credential endpoints and the diagnostic echo route.
// Public: POST /api/auth/register, POST /api/auth/login
// Protected: GET /api/auth/profile, GET /api/protected

type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(limiterRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(limiterRedis(), 10, time.Minute, middleware.KeyByIP())

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/auth/profile", m.Handler.Profile)
		auth.GET("/protected", m.Handler.Protected)
	}
}
