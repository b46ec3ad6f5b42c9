package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Reads a request from stdin, one line at a time until an empty line, sends
// it as a single CRLF-terminated request and prints the reply.
func main() {
	addr := flag.String("addr", "localhost:8080", "server address")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	rdr := bufio.NewReader(os.Stdin)
	var lines []string
	for {
		fmt.Fprint(os.Stderr, "> ")
		line, err := rdr.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line != "" {
			lines = append(lines, line)
		}
		if err != nil || line == "" {
			break
		}
	}
	if len(lines) == 0 {
		logger.Info().Msg("nothing to send")
		return
	}

	conn, err := net.Dial("tcp", *addr)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not dial")
	}
	defer conn.Close()

	raw := strings.Join(lines, "\r\n") + "\r\n\r\n"
	if _, err := io.WriteString(conn, raw); err != nil {
		logger.Fatal().Err(err).Msg("could not write")
	}

	if _, err := io.Copy(os.Stdout, conn); err != nil {
		logger.Error().Err(err).Msg("could not read reply")
	}
	fmt.Println()
}
