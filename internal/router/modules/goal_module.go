package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	handlers "github.com/rakapradana/goaltrack/internal/interface/http"
	"github.com/rakapradana/goaltrack/internal/interface/middleware"
	"github.com/rakapradana/goaltrack/pkg/helpers"
)

// GoalModule wires the owner-scoped goal CRUD routes. Every route sits behind
// the auth gate; the middleware chain is body parse → auth → handler.

type GoalModule struct {
	Handler *handlers.GoalHandler
	JWT     *helpers.JWTManager
}

func NewGoalModule(h *handlers.GoalHandler, jwt *helpers.JWTManager) *GoalModule {
	return &GoalModule{Handler: h, JWT: jwt}
}

func (m *GoalModule) Register(rg *gin.RouterGroup) {
	goals := rg.Group("/goals")
	goals.Use(middleware.Auth(m.JWT))
	goals.Use(middleware.RateLimit(limiterRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		goals.GET("", m.Handler.List)
		goals.POST("", m.Handler.Create)
		goals.PUT("/:id", m.Handler.Update)
		goals.DELETE("/:id", m.Handler.Delete)
	}
}
