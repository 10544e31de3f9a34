package http

import (
	"net/http"

	"records-srv/internal/record"
	"records-srv/pkg/errors"
	"records-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

var errorMapping = response.ErrorMapping{
	record.ErrRecordNotFound: errors.NewNotFoundHTTPError("Record not found"),
	record.ErrInvalidOffset:  errors.NewHTTPError(400, "Offset must be a non-negative integer", http.StatusBadRequest),
}

// List handles the listing endpoint
// @Summary List records
// @Description Search records by name or read one page of the collection
// @Tags Records
// @Produce json
// @Param q query string false "Case-insensitive substring to match against record names"
// @Param offset query int false "Page offset; omit for the first page"
// @Success 200 {object} response.Resp
// @Router /api/v1/records [get]
func (h handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	ip, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, ip)
	if err != nil {
		h.l.Errorf(ctx, "internal.record.delivery.http.List: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newListResp(out))
}

// Delete handles the deletion endpoint
// @Summary Delete a record
// @Description Delete a record by id and mark cached listings stale
// @Tags Records
// @Produce json
// @Param id path int true "Record id"
// @Success 200 {object} response.Resp
// @Router /api/v1/records/{id} [delete]
func (h handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processDeleteRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "internal.record.delivery.http.Delete: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, nil)
}
