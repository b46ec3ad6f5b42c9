package server

import (
	"fmt"
	"net"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/Fjumre/Mandatory2/internal/accesslog"
	"github.com/Fjumre/Mandatory2/internal/config"
	"github.com/Fjumre/Mandatory2/internal/listener"
	"github.com/Fjumre/Mandatory2/internal/metrics"
	"github.com/Fjumre/Mandatory2/internal/request"
	"github.com/Fjumre/Mandatory2/internal/resolver"
	"github.com/Fjumre/Mandatory2/internal/response"
	"github.com/rs/zerolog"
)

const acceptRetryDelay = 50 * time.Millisecond

// Server serves one connection at a time. It owns the listening socket and
// the access log from Serve until Close.
type Server struct {
	listener net.Listener
	closed   atomic.Bool
	done     chan struct{}

	cfg     config.Config
	log     zerolog.Logger
	access  *accesslog.Logger
	files   *resolver.Resolver
	pages   response.ErrorPages
	metrics *metrics.Metrics
}

// Serve opens the access log and the listening socket, then runs the accept
// loop in the background until Close is called.
func Serve(cfg config.Config, log zerolog.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	access, err := accesslog.Open(cfg.LogFile)
	if err != nil {
		return nil, err
	}

	lsnr, err := listener.Listen(cfg.Port, cfg.Backlog)
	if err != nil {
		access.Close()
		return nil, fmt.Errorf("could not listen on port %d: %w", cfg.Port, err)
	}

	srv := newServer(cfg, log, lsnr, access)
	go srv.listen()

	return srv, nil
}

func newServer(cfg config.Config, log zerolog.Logger, lsnr net.Listener, access *accesslog.Logger) *Server {
	return &Server{
		listener: lsnr,
		done:     make(chan struct{}),
		cfg:      cfg,
		log:      log,
		access:   access,
		files:    resolver.New(cfg.Root, cfg.DefaultDocument),
		pages: response.ErrorPages{
			NotFound:   cfg.NotFoundPage,
			BadRequest: cfg.BadRequestPage,
		},
		metrics: metrics.New(),
	}
}

func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *Server) Metrics() *metrics.Metrics {
	return s.metrics
}

// Close stops accepting, waits for the connection in flight to finish and
// closes the access log. Calling it again is a no-op.
func (s *Server) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	err := s.listener.Close()
	<-s.done
	if cerr := s.access.Close(); err == nil {
		err = cerr
	}
	return err
}

func (s *Server) listen() {
	defer close(s.done)
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.closed.Load() {
				// Listener is closed, exit the loop without logging an error
				return
			}
			s.log.Error().Err(err).Msg("error accepting connection")
			time.Sleep(acceptRetryDelay)
			continue
		}
		// Handled inline: the next Accept waits until this client is done.
		s.handle(conn)
	}
}

func (s *Server) handle(conn net.Conn) {
	defer conn.Close()
	defer func() {
		if r := recover(); r != nil {
			s.metrics.ObservePanic()
			s.log.Error().
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("recovered while handling connection")
		}
	}()

	log := s.log.With().Str("remote", conn.RemoteAddr().String()).Logger()
	log.Info().Msg("connection established")

	text, err := request.ReadText(conn, s.cfg.ReadBufferSize)
	if err != nil {
		log.Warn().Err(err).Msg("error reading request")
	}
	if request.IsBlank(text) {
		s.metrics.ObserveSuppressed(metrics.ReasonEmpty)
		return
	}

	req := request.Parse(text)
	if req.IsFaviconProbe() {
		s.metrics.ObserveSuppressed(metrics.ReasonFavicon)
		return
	}
	log.Debug().Msg("full request:\n" + req.Raw)

	res := s.resolve(req)
	if res.Err != nil {
		log.Debug().Err(res.Err).Stringer("outcome", res.Kind).Msg("request not served from file")
	}

	resp := response.FromResult(res, s.files, s.pages)
	if _, err := resp.WriteTo(conn); err != nil {
		log.Warn().Err(err).Msg("error sending response")
	}

	entry := accesslog.Entry{
		ClientIP:    clientIP(conn.RemoteAddr()),
		RequestLine: req.Line,
		Status:      int(resp.Status),
		Size:        resp.Size(),
	}
	if err := s.access.Append(entry); err != nil {
		log.Error().Err(err).Msg("error writing access log")
	}
	s.metrics.ObserveResponse(entry.Status, entry.Size)

	log.Info().Msgf("Request: %s --> Status: %d", req.Line, entry.Status)
	log.Debug().Msg("headers:\n" + req.Headers.String())
}

// resolve never panics: anything unexpected becomes a Malformed result and
// is answered with 400.
func (s *Server) resolve(req *request.Request) (res resolver.Result) {
	defer func() {
		if r := recover(); r != nil {
			s.metrics.ObservePanic()
			res = resolver.MalformedResult(fmt.Errorf("panic while resolving %q: %v", req.Line, r))
		}
	}()

	if err := req.ParseRequestLine(); err != nil {
		return resolver.MalformedResult(err)
	}
	return s.files.Load(req.RequestLine.RequestTarget)
}

func clientIP(addr net.Addr) string {
	if tcp, ok := addr.(*net.TCPAddr); ok {
		return tcp.IP.String()
	}
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	return host
}
