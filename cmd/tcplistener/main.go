package main

import (
	"os"

	"github.com/Fjumre/Mandatory2/internal/config"
	"github.com/Fjumre/Mandatory2/internal/listener"
	"github.com/Fjumre/Mandatory2/internal/request"
	"github.com/rs/zerolog"
)

// Accepts a single connection, reads it the way the server would and prints
// the parsed request.
func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	cfg := config.Default()

	lsnr, err := listener.Listen(cfg.Port, cfg.Backlog)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not listen")
	}
	defer lsnr.Close()

	conn, err := lsnr.Accept()
	if err != nil {
		logger.Fatal().Err(err).Msg("could not accept")
	}
	defer conn.Close()
	logger.Info().Str("remote", conn.RemoteAddr().String()).Msg("connection accepted")

	text, err := request.ReadText(conn, cfg.ReadBufferSize)
	if err != nil {
		logger.Error().Err(err).Msg("could not read request")
		return
	}
	if request.IsBlank(text) {
		logger.Info().Msg("empty request")
		return
	}

	req := request.Parse(text)
	if err := req.ParseRequestLine(); err != nil {
		logger.Error().Err(err).Msg("could not parse request")
	}
	request.PrintRequestLine(os.Stdout, req)
}
