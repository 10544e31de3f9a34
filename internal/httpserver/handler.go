package httpserver

import (
	"records-srv/internal/middleware"
	recordHTTP "records-srv/internal/record/delivery/http"
	recordPostgre "records-srv/internal/record/repository/postgre"
	recordUC "records-srv/internal/record/usecase"
	"records-srv/internal/revalidate"
)

const Api = "/api/v1"

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.Recovery(srv.logger))
	srv.gin.Use(middleware.RequestID())
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Record listing domain
	repo := recordPostgre.New(srv.logger, srv.postgresDB)
	signal := revalidate.NewRedisSignal(srv.logger, srv.redis)
	uc := recordUC.New(srv.logger, repo, signal)
	h := recordHTTP.New(srv.logger, uc)

	api := srv.gin.Group(Api)
	h.MapRoutes(api.Group("/records"))

	return nil
}
