package handler

import (
	"github.com/gin-gonic/gin"

	"schoolgrid/backend/internal/dto"
	"schoolgrid/backend/internal/service"
	"schoolgrid/backend/pkg/response"
)

// ScheduleHandler serves schedule endpoints: CRUD, conflict detection,
// advisory validation, the weekly grid, statistics and catalogs.
type ScheduleHandler struct {
	svc service.ScheduleService
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(svc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

// Create handles POST /api/v1/schedules.
func (h *ScheduleHandler) Create(c *gin.Context) {
	var payload dto.SchedulePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, 40000, "invalid request body")
		return
	}

	schedule, err := h.svc.Create(c.Request.Context(), &payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Created(c, schedule)
}

// List handles GET /api/v1/schedules.
func (h *ScheduleHandler) List(c *gin.Context) {
	var req dto.ScheduleListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 40000, "invalid query parameters")
		return
	}

	schedules, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.OK(c, schedules)
}

// Get handles GET /api/v1/schedules/:id.
func (h *ScheduleHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.BadRequest(c, 40000, "invalid id")
		return
	}

	schedule, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.OK(c, schedule)
}

// ListByClass handles GET /api/v1/classes/:id/schedules.
func (h *ScheduleHandler) ListByClass(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.BadRequest(c, 40000, "invalid id")
		return
	}

	schedules, err := h.svc.ListByClass(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.OK(c, schedules)
}

// ListByTeacher handles GET /api/v1/teachers/:id/schedules.
func (h *ScheduleHandler) ListByTeacher(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.BadRequest(c, 40000, "invalid id")
		return
	}

	schedules, err := h.svc.ListByTeacher(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.OK(c, schedules)
}

// Update handles PUT /api/v1/schedules/:id. The body is a partial
// payload; absent fields keep their stored values.
func (h *ScheduleHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.BadRequest(c, 40000, "invalid id")
		return
	}

	var payload dto.SchedulePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, 40000, "invalid request body")
		return
	}

	schedule, err := h.svc.Update(c.Request.Context(), id, &payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.OK(c, schedule)
}

// Delete handles DELETE /api/v1/schedules/:id.
func (h *ScheduleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.BadRequest(c, 40000, "invalid id")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	response.OK(c, nil)
}

// Validate handles POST /api/v1/schedules/validate. Always 200; the
// verdict is in the body.
func (h *ScheduleHandler) Validate(c *gin.Context) {
	var payload dto.SchedulePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, 40000, "invalid request body")
		return
	}

	response.OK(c, h.svc.Validate(&payload))
}

// CheckConflicts handles POST /api/v1/schedules/check-conflicts. An empty
// list means the slot is free.
func (h *ScheduleHandler) CheckConflicts(c *gin.Context) {
	var req dto.CheckConflictsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "invalid request body")
		return
	}

	conflicts, err := h.svc.CheckConflicts(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.OK(c, conflicts)
}

// WeeklyGrid handles GET /api/v1/schedules/grid.
func (h *ScheduleHandler) WeeklyGrid(c *gin.Context) {
	var req dto.ScheduleListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 40000, "invalid query parameters")
		return
	}

	grid, err := h.svc.WeeklyGrid(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.OK(c, grid)
}

// Stats handles GET /api/v1/schedules/stats.
func (h *ScheduleHandler) Stats(c *gin.Context) {
	var req dto.ScheduleListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 40000, "invalid query parameters")
		return
	}

	stats, err := h.svc.Stats(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.OK(c, stats)
}

// Catalogs handles GET /api/v1/schedules/catalogs.
func (h *ScheduleHandler) Catalogs(c *gin.Context) {
	response.OK(c, h.svc.Catalogs())
}
