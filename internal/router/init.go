package router

import (
	userapp "github.com/longchau/pharmacy-web/internal/application"
	"github.com/longchau/pharmacy-web/internal/container"
	pginfra "github.com/longchau/pharmacy-web/internal/infrastructure/postgres"
	handlers "github.com/longchau/pharmacy-web/internal/interface/http"
	"github.com/longchau/pharmacy-web/internal/router/modules"
)

func buildService() *userapp.Service {
	cfg := container.GetConfig()

	svc := userapp.NewService(
		pginfra.NewUserRepository(container.GetPGPool()),
		container.GetLogger(),
	)
	svc.Pub = container.GetRabbitPub()
	svc.MailEnabled = cfg.MailSendEnabled
	svc.GCS = container.GetGCS()
	svc.GCSBucket = cfg.GCSBucket
	svc.ES = container.GetES()
	svc.ESUsersIndex = cfg.ESUsersIndex
	return svc
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	store := container.GetSessions()
	cookies := container.GetCookies()
	svc := buildService()

	r.Add(modules.NewPagesModule(handlers.NewPagesHandler(store, cookies, logger)))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(svc, store, cookies, logger, cfg)))
	r.Add(modules.NewProfileModule(
		handlers.NewProfileHandler(svc, store, cookies, logger),
		handlers.NewUserHandler(svc, logger),
	))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
