package bootstrap

import (
	"flag"
	"fmt"

	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/config"
	infraconfig "github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/config"
	infralogger "github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/logger"
)

const serviceName = "content-hub"

// LoadConfig loads configuration. Uses -config flag with infraconfig default.
func LoadConfig() (*config.Config, error) {
	configPath := flag.String("config", infraconfig.GetConfigPath("config.yml"), "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// CreateLogger creates a logger instance from configuration.
func CreateLogger(cfg *config.Config, version string) (infralogger.Logger, error) {
	log, err := infralogger.New(infralogger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Debug,
		Service:     serviceName,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log.With(infralogger.String("version", version)), nil
}
