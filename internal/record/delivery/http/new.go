package http

import (
	"records-srv/internal/record"
	pkgLog "records-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type handler struct {
	l  pkgLog.Logger
	uc record.UseCase
}

func New(l pkgLog.Logger, uc record.UseCase) handler {
	return handler{
		l:  l,
		uc: uc,
	}
}

// MapRoutes registers the record endpoints on the given router group.
func (h handler) MapRoutes(r *gin.RouterGroup) {
	r.GET("", h.List)
	r.DELETE("/:id", h.Delete)
}
