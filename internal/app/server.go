package app

import (
	"context"
	"fmt"
	"log"

	"athlex/cfg"
	"athlex/internal/service/profile"
	"athlex/pkg/logger"
	"athlex/pkg/session"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
)

// Server holds all application dependencies
type Server struct {
	config   *cfg.Config
	router   *gin.Engine
	logger   *logger.AppLogger
	sessions *session.Store[*profile.Builder]
	ids      *snowflake.Node
	shutdown func(context.Context) error

	sweepCancel context.CancelFunc

	// internal service
	profileService *profile.Service
}

// NewServer creates and initializes a new server instance
func NewServer(ctx context.Context, config *cfg.Config) (*Server, error) {
	s := &Server{
		config: config,
	}

	shutdown, err := setupObservability(ctx, &config.Observability)
	if err != nil {
		return nil, fmt.Errorf("observability setup: %w", err)
	}
	s.shutdown = shutdown

	s.logger = logger.NewLogger(config.AppEnv, config.Observability.ServiceName)
	s.logger.Info(ctx, "Initializing server...")

	if err := s.initIDGenerator(); err != nil {
		return nil, fmt.Errorf("id generator init: %w", err)
	}

	s.initSessionStore(ctx)
	s.initServicesAndRoutes()

	s.logger.Info(ctx, "Server initialized successfully")
	return s, nil
}

func (s *Server) initIDGenerator() error {
	node, err := snowflake.NewNode(s.config.NodeID)
	if err != nil {
		return fmt.Errorf("snowflake node: %w", err)
	}
	s.ids = node
	return nil
}

// initSessionStore starts the in-memory store and its idle-session
// sweeper. Drafts live only here; submit or expiry is the end of them.
func (s *Server) initSessionStore(ctx context.Context) {
	s.sessions = session.NewInMemoryStore[*profile.Builder](s.config.Session.TTL, nil)

	sweepCtx, cancel := context.WithCancel(ctx)
	s.sweepCancel = cancel
	go s.sessions.Sweep(sweepCtx, s.config.Session.SweepInterval)
}

func (s *Server) initServicesAndRoutes() {
	s.profileService = profile.NewService(s.sessions, s.ids, clockwork.NewRealClock(), s.logger)

	r := gin.New()
	r.Use(gin.Recovery())
	routes := NewRoutes(r)
	routes.setupInfraRoutes()
	// Business logic endpoints
	routes.setupProfileRoutes(s.profileService)

	s.router = r
}

// Run starts the HTTP server
func (s *Server) Run(addr string) error {
	log.Printf("Server listening on %s", addr)
	return s.router.Run(addr)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.sweepCancel != nil {
		s.sweepCancel()
	}
	if s.shutdown != nil {
		if err := s.shutdown(ctx); err != nil {
			return fmt.Errorf("observability shutdown: %w", err)
		}
	}
	return nil
}
