package router

import (
	"github.com/rakapradana/goaltrack/internal/application"
	"github.com/rakapradana/goaltrack/internal/container"
	pginfra "github.com/rakapradana/goaltrack/internal/infrastructure/postgres"
	handlers "github.com/rakapradana/goaltrack/internal/interface/http"
	"github.com/rakapradana/goaltrack/internal/router/modules"
)

func buildAuthModule() *modules.AuthModule {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	svc := application.NewAuthService(repo, container.GetJWT(), container.GetRedis(), container.GetLogger())
	h := handlers.NewAuthHandler(svc, container.GetLogger())
	return modules.NewAuthModule(h, container.GetJWT())
}

func buildGoalModule() *modules.GoalModule {
	repo := pginfra.NewGoalRepository(container.GetPGPool())
	svc := application.NewGoalService(repo, container.GetLogger())
	h := handlers.NewGoalHandler(svc, container.GetLogger())
	return modules.NewGoalModule(h, container.GetJWT())
}

// InitModules initializes all application modules and registers them with the
// router registry. Call once during startup after the container is populated.
func InitModules(r *Registry) {
	r.Add(buildAuthModule())
	r.Add(buildGoalModule())
}
