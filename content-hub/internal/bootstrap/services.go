package bootstrap

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/config"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/events"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/gateway"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/importer"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/offline"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/repository"
	infrahttp "github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/http"
	infralogger "github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/logger"
)

// Services is everything a front end (HTTP server or CLI) needs.
type Services struct {
	Catalog   *repository.Catalog
	Importer  *importer.Importer
	Offline   bool
	Registry  *prometheus.Registry
	Redis     *redis.Client
	Publisher *events.Publisher
	log       infralogger.Logger
}

// NewServices selects the transport, connects the optional event stream and
// builds the facades. Metrics go to a private registry served on /metrics.
func NewServices(ctx context.Context, cfg *config.Config, log infralogger.Logger) *Services {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	transport := SetupTransport(cfg, reg, log)
	client, publisher := SetupEventPublisher(ctx, cfg, log)

	var notifier repository.Notifier
	if publisher != nil {
		notifier = publisher
	}
	catalog := repository.NewCatalog(transport, notifier, log)

	return &Services{
		Catalog:   catalog,
		Importer:  importer.New(catalog.Properties, log),
		Offline:   cfg.Offline(),
		Registry:  reg,
		Redis:     client,
		Publisher: publisher,
		log:       log,
	}
}

// Close releases the Redis connection, if any.
func (s *Services) Close() {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Close(); err != nil {
		s.log.Error("Failed to close redis", infralogger.Error(err))
	}
}

// SetupTransport returns the live gateway transport, or the offline
// synthesizer when no backend URL is configured.
func SetupTransport(cfg *config.Config, reg prometheus.Registerer, log infralogger.Logger) repository.Transport {
	if cfg.Offline() {
		log.Warn("No backend configured, serving synthesized offline content")
		return offline.New(log)
	}

	gw := gateway.New(cfg.Backend.BaseURL, gateway.NewSession(cfg.Backend.Token),
		gateway.WithHTTPClient(infrahttp.NewClient(infrahttp.ClientConfig{Timeout: cfg.Backend.Timeout})),
		gateway.WithLogger(log),
		gateway.WithMetrics(gateway.NewMetrics(reg)),
	)
	log.Info("Backend gateway initialized",
		infralogger.String("base_url", gw.BaseURL()),
		infralogger.Bool("authenticated", cfg.Backend.Token != ""),
	)
	return repository.NewLiveTransport(gw, log)
}
