package gin

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/logger"
)

// ServerBuilder assembles a Server fluently:
//
//	srv := NewServerBuilder("content-hub", ":8080").
//	    WithLogger(log).
//	    WithRoutes(api.Register).
//	    Build()
type ServerBuilder struct {
	config      Config
	logger      logger.Logger
	middleware  []gin.HandlerFunc
	setupRoutes func(*gin.Engine)
	checks      map[string]HealthChecker
}

func NewServerBuilder(serviceName, address string) *ServerBuilder {
	return &ServerBuilder{
		config: Config{ServiceName: serviceName, Address: address},
		checks: make(map[string]HealthChecker),
	}
}

func (b *ServerBuilder) WithLogger(log logger.Logger) *ServerBuilder {
	b.logger = log
	return b
}

func (b *ServerBuilder) WithDebug(debug bool) *ServerBuilder {
	b.config.Debug = debug
	return b
}

func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.config.ServiceVersion = version
	return b
}

func (b *ServerBuilder) WithCORSOrigins(origins []string) *ServerBuilder {
	b.config.CORS.AllowedOrigins = origins
	return b
}

func (b *ServerBuilder) WithTimeouts(read, write, idle time.Duration) *ServerBuilder {
	b.config.ReadTimeout = read
	b.config.WriteTimeout = write
	b.config.IdleTimeout = idle
	return b
}

// WithMiddleware appends handlers run after the standard stack.
func (b *ServerBuilder) WithMiddleware(mw ...gin.HandlerFunc) *ServerBuilder {
	b.middleware = append(b.middleware, mw...)
	return b
}

// WithHealthCheck adds a named dependency check to GET /health.
func (b *ServerBuilder) WithHealthCheck(name string, check HealthChecker) *ServerBuilder {
	b.checks[name] = check
	return b
}

func (b *ServerBuilder) WithRoutes(setup func(*gin.Engine)) *ServerBuilder {
	b.setupRoutes = setup
	return b
}

func (b *ServerBuilder) Build() *Server {
	if b.logger == nil {
		b.logger = logger.NewNop()
	}
	cfg := b.config
	return NewServer(&cfg, b.logger, func(router *gin.Engine) {
		router.Use(b.middleware...)
		RegisterHealthRoutes(router, HealthOptions{
			ServiceName:    cfg.ServiceName,
			ServiceVersion: cfg.ServiceVersion,
			Checks:         b.checks,
		})
		if b.setupRoutes != nil {
			b.setupRoutes(router)
		}
	})
}
