package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/denizbarcak/planvia-partner-ui/internal/service"
	"github.com/denizbarcak/planvia-partner-ui/pkg/response"
)

// ExportHandler serves the anchor month as a downloadable file.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// Excel downloads the anchor month as an xlsx workbook.
// GET /api/v1/export/excel
func (h *ExportHandler) Excel(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportExcel(c.Request.Context(), sess, calendarStateOf(sess))
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// ICS downloads the anchor month as an iCalendar file.
// GET /api/v1/export/ics
func (h *ExportHandler) ICS(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportICS(c.Request.Context(), sess, calendarStateOf(sess))
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrExportEmpty) {
		response.NotFound(c, 16101, "no reservations in the selected month")
		return
	}
	handleUpstreamError(c, err)
}
