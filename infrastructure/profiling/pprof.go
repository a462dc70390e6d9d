// Package profiling serves the net/http/pprof endpoints on a private
// loopback listener.
package profiling

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/pprof"
	"strconv"
	"time"

	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/logger"
)

const defaultPort = 6060

// Config enables the pprof listener. It only ever binds to localhost.
type Config struct {
	Enabled bool `env:"ENABLE_PROFILING" yaml:"enabled"`
	Port    int  `env:"PPROF_PORT"       yaml:"port"`
}

// Address returns the loopback address the listener binds to.
func (c Config) Address() string {
	port := c.Port
	if port == 0 {
		port = defaultPort
	}
	return net.JoinHostPort("localhost", strconv.Itoa(port))
}

// Handler returns a mux with the standard pprof routes under /debug/pprof/.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return mux
}

// Start launches the listener in the background when cfg.Enabled. The
// returned stop function shuts it down; it is a no-op when disabled.
func Start(cfg Config, log logger.Logger) (stop func(context.Context) error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }
	}

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("Starting pprof server", logger.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("pprof server error", logger.Error(err))
		}
	}()
	return srv.Shutdown
}
