package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Fjumre/Mandatory2/internal/config"
	"github.com/Fjumre/Mandatory2/internal/listener"
	"github.com/Fjumre/Mandatory2/internal/server"
	"github.com/rs/zerolog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()

	cfg := config.Default()
	srv, err := server.Serve(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("error starting server")
	}

	ip, err := listener.OutboundIP(cfg.ProbeAddr)
	if err != nil {
		logger.Warn().Err(err).Msg("could not determine local IP")
	}
	fmt.Printf("Server running at: http://%s:%d/\n", listener.BannerHost(ip, err), cfg.Port)
	fmt.Println("Press Ctrl+C to stop the server.")
	fmt.Println()

	<-ctx.Done()
	// Restore default signal behaviour so a second Ctrl+C exits immediately.
	stop()

	logger.Info().Msg("server is shutting down")
	if err := srv.Close(); err != nil {
		logger.Error().Err(err).Msg("error closing server")
	}

	snap, err := srv.Metrics().Snapshot()
	if err != nil {
		logger.Warn().Err(err).Msg("could not gather metrics")
	}
	event := logger.Info()
	for name, value := range snap {
		event = event.Float64(name, value)
	}
	event.Msg("server gracefully stopped")
}
