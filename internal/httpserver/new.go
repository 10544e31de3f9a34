package httpserver

import (
	"database/sql"
	"errors"

	"records-srv/pkg/log"
	pkgRedis "records-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them; Run() (in httpserver.go)
// is responsible for HTTP serving and shutdown.
type HTTPServer struct {
	gin    *gin.Engine
	logger log.Logger
	host   string
	port   int
	mode   string

	// Storage
	postgresDB *sql.DB
	redis      pkgRedis.IRedis
}

// Config is the constructor input for HTTPServer.
// Keep this minimal: only fields really needed by HTTPServer.
type Config struct {
	Host string
	Port int
	Mode string

	PostgresDB *sql.DB
	Redis      pkgRedis.IRedis
}

// New creates a new HTTPServer instance with the provided configuration.
// It does not start serving; use (*HTTPServer).Run().
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:        gin.New(),
		logger:     logger,
		host:       cfg.Host,
		port:       cfg.Port,
		mode:       cfg.Mode,
		postgresDB: cfg.PostgresDB,
		redis:      cfg.Redis,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("PostgreSQL connection is required")
	}
	if srv.redis == nil {
		return errors.New("Redis client is required")
	}

	return nil
}
