package http

import (
	"strconv"

	"records-srv/internal/record"
	"records-srv/pkg/errors"
	"records-srv/pkg/paginator"

	"github.com/gin-gonic/gin"
)

// Query parameter names for the listing boundary.
const (
	paramSearch = "q"
	paramOffset = "offset"
)

// processListRequest decodes the listing query parameters. An absent offset
// parameter means the first page; it is never the terminal nil state, which
// exists only in-process once a page comes back short.
func (h handler) processListRequest(c *gin.Context) (record.ListInput, error) {
	ip := record.ListInput{
		SearchTerm: c.Query(paramSearch),
	}

	raw, ok := c.GetQuery(paramOffset)
	if !ok {
		ip.Offset = paginator.At(0)
		return ip, nil
	}

	offset, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return record.ListInput{}, errors.NewValidationError(400, paramOffset, "must be an integer")
	}
	if offset < 0 {
		return record.ListInput{}, errors.NewValidationError(400, paramOffset, "must not be negative")
	}

	ip.Offset = paginator.At(offset)
	return ip, nil
}

func (h handler) processDeleteRequest(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errors.NewValidationError(400, "id", "must be an integer")
	}

	return id, nil
}
