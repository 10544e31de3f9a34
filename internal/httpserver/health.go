package httpserver

import (
	"records-srv/pkg/errors"
	"records-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the service and its backends are healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.postgresDB.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewServiceUnavailableHTTPError("PostgreSQL connection failed"))
		return
	}

	if err := srv.redis.Ping(ctx); err != nil {
		response.HttpError(c, errors.NewServiceUnavailableHTTPError("Redis connection failed"))
		return
	}

	response.OK(c, gin.H{
		"status":   "healthy",
		"service":  "records-srv",
		"postgres": "connected",
		"redis":    "connected",
	})
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check if the service is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is ready"
// @Failure 503 {object} map[string]interface{} "Service is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.postgresDB.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewServiceUnavailableHTTPError("PostgreSQL connection not available"))
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": "records-srv",
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the service is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": "records-srv",
	})
}
