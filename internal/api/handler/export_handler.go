package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"schoolgrid/backend/internal/dto"
	"schoolgrid/backend/internal/service"
	"schoolgrid/backend/pkg/response"
)

// ExportHandler serves timetable downloads.
type ExportHandler struct {
	svc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(svc service.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// TimetableXLSX handles GET /api/v1/exports/timetable.xlsx.
func (h *ExportHandler) TimetableXLSX(c *gin.Context) {
	var req dto.ScheduleListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 40000, "invalid query parameters")
		return
	}

	data, err := h.svc.TimetableXLSX(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("emploi-du-temps-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// TimetableICS handles GET /api/v1/exports/timetable.ics.
func (h *ExportHandler) TimetableICS(c *gin.Context) {
	var req dto.ScheduleListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 40000, "invalid query parameters")
		return
	}

	feed, err := h.svc.TimetableICS(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="emploi-du-temps.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}
