package handler

import (
	"github.com/gin-gonic/gin"

	"schoolgrid/backend/internal/dto"
	"schoolgrid/backend/internal/service"
	"schoolgrid/backend/pkg/response"
)

// ClassHandler serves class CRUD endpoints.
type ClassHandler struct {
	svc service.ClassService
}

// NewClassHandler creates a ClassHandler.
func NewClassHandler(svc service.ClassService) *ClassHandler {
	return &ClassHandler{svc: svc}
}

// Create handles POST /api/v1/classes.
func (h *ClassHandler) Create(c *gin.Context) {
	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "invalid request body")
		return
	}

	class, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Created(c, class)
}

// List handles GET /api/v1/classes.
func (h *ClassHandler) List(c *gin.Context) {
	var req dto.ClassListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 40000, "invalid query parameters")
		return
	}

	classes, total, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.OKPage(c, classes, total, req.GetPage(), req.GetPageSize())
}

// Get handles GET /api/v1/classes/:id.
func (h *ClassHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.BadRequest(c, 40000, "invalid id")
		return
	}

	class, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.OK(c, class)
}

// Update handles PUT /api/v1/classes/:id.
func (h *ClassHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.BadRequest(c, 40000, "invalid id")
		return
	}

	var req dto.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "invalid request body")
		return
	}

	class, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.OK(c, class)
}

// Delete handles DELETE /api/v1/classes/:id.
func (h *ClassHandler) Delete(c *gin.Context) {
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
