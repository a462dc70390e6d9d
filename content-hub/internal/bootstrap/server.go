package bootstrap

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/api"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/config"
	infragin "github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/gin"
	infralogger "github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/logger"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/metrics"
)

const metricsNamespace = "content_hub"

// SetupHTTPServer creates and configures the HTTP server.
func SetupHTTPServer(cfg *config.Config, services *Services, log infralogger.Logger) *infragin.Server {
	httpMetrics := metrics.NewHTTPMetrics(metricsNamespace, services.Registry, services.Registry)
	handler := api.NewHandler(services.Catalog, services.Importer, log)

	mode := "live"
	if services.Offline {
		mode = "offline"
	}

	builder := infragin.NewServerBuilder(serviceName, cfg.Server.Address()).
		WithLogger(log).
		WithDebug(cfg.Debug).
		WithVersion(version).
		WithCORSOrigins(cfg.Server.CORSOrigins).
		WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.IdleTimeout).
		WithMiddleware(httpMetrics.Middleware()).
		WithHealthCheck("transport", infragin.StaticChecker(infragin.HealthStatusHealthy, mode)).
		WithRoutes(func(router *gin.Engine) {
			router.GET("/metrics", httpMetrics.Handler())
			api.Register(router, handler)
		})

	if client := services.Redis; client != nil {
		builder = builder.WithHealthCheck("redis", infragin.PingChecker(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}))
	}
	return builder.Build()
}
