package config

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Port           int
	Backlog        int
	ReadBufferSize int

	// Root is the directory files are served from. "." is the working directory.
	Root            string
	DefaultDocument string
	NotFoundPage    string
	BadRequestPage  string

	LogFile string

	// ProbeAddr is only used to find the outbound interface for the banner.
	ProbeAddr string
}

func Default() Config {
	return Config{
		Port:            8080,
		Backlog:         1,
		ReadBufferSize:  4096,
		Root:            ".",
		DefaultDocument: "index.html",
		NotFoundPage:    "404.html",
		BadRequestPage:  "400.html",
		LogFile:         "server.log",
		ProbeAddr:       "8.8.8.8:80",
	}
}

func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}
	if c.Backlog < 1 {
		return fmt.Errorf("%w: backlog must be positive, got %d", ErrInvalidConfig, c.Backlog)
	}
	if c.ReadBufferSize < 1 {
		return fmt.Errorf("%w: read buffer size must be positive, got %d", ErrInvalidConfig, c.ReadBufferSize)
	}
	if c.DefaultDocument == "" {
		return fmt.Errorf("%w: default document is empty", ErrInvalidConfig)
	}
	if c.LogFile == "" {
		return fmt.Errorf("%w: log file is empty", ErrInvalidConfig)
	}
	return nil
}
