package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	itemUC "lifedesk/internal/item/usecase"
	"lifedesk/pkg/datemath"
	"lifedesk/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	postgresDB *sql.DB
	dateMath   *datemath.Parser
	calendar   itemUC.Calendar // nil when mirroring is disabled
	calendarID string
	timezone   string

	apiKey                 string
	previewRateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	DateMath   *datemath.Parser
	Calendar   itemUC.Calendar
	CalendarID string
	Timezone   string

	APIKey                 string
	PreviewRateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                      logger,
		gin:                    gin.Default(),
		port:                   cfg.Port,
		mode:                   cfg.Mode,
		environment:            cfg.Environment,
		postgresDB:             cfg.PostgresDB,
		dateMath:               cfg.DateMath,
		calendar:               cfg.Calendar,
		calendarID:             cfg.CalendarID,
		timezone:               cfg.Timezone,
		apiKey:                 cfg.APIKey,
		previewRateLimitPerMin: cfg.PreviewRateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.dateMath == nil {
		return errors.New("datemath parser is required")
	}
	return nil
}
