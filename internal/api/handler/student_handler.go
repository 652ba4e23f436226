package handler

import (
	"github.com/gin-gonic/gin"

	"schoolgrid/backend/internal/dto"
	"schoolgrid/backend/internal/service"
	"schoolgrid/backend/pkg/response"
)

// StudentHandler serves student CRUD endpoints.
type StudentHandler struct {
	svc service.StudentService
}

// NewStudentHandler creates a StudentHandler.
func NewStudentHandler(svc service.StudentService) *StudentHandler {
	return &StudentHandler{svc: svc}
}

// Create handles POST /api/v1/students.
func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "invalid request body")
		return
	}

	student, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Created(c, student)
}

// List handles GET /api/v1/students.
func (h *StudentHandler) List(c *gin.Context) {
	var req dto.StudentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 40000, "invalid query parameters")
		return
	}

	students, total, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.OKPage(c, students, total, req.GetPage(), req.GetPageSize())
}

// Get handles GET /api/v1/students/:id.
func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.BadRequest(c, 40000, "invalid id")
		return
	}

	student, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.OK(c, student)
}

// Update handles PUT /api/v1/students/:id.
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.BadRequest(c, 40000, "invalid id")
		return
	}

	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "invalid request body")
		return
	}

	student, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.OK(c, student)
}

// Delete handles DELETE /api/v1/students/:id.
func (h *StudentHandler) Delete(c *gin.Context) {
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
