package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"schoolgrid/backend/internal/service"
	"schoolgrid/backend/pkg/response"
)

// Handler aggregates all HTTP handlers.
type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Teacher  *TeacherHandler
	Student  *StudentHandler
	Class    *ClassHandler
	Subject  *SubjectHandler
	Schedule *ScheduleHandler
	Export   *ExportHandler
}

// NewHandler wires handlers over the service layer.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(svc.Auth),
		User:     NewUserHandler(svc.User),
		Teacher:  NewTeacherHandler(svc.Teacher),
		Student:  NewStudentHandler(svc.Student),
		Class:    NewClassHandler(svc.Class),
		Subject:  NewSubjectHandler(svc.Subject),
		Schedule: NewScheduleHandler(svc.Schedule),
		Export:   NewExportHandler(svc.Export),
	}
}

// respondServiceError maps service errors onto the response envelope.
func respondServiceError(c *gin.Context, err error) {
	var verr *service.ValidationError
	var cerr *service.ConflictError

	switch {
	case errors.As(err, &verr):
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, 42201, "validation échouée", verr.Errors)
	case errors.As(err, &cerr):
		response.Conflict(c, 40901, "conflit d'emploi du temps", cerr.Conflicts)
	case errors.Is(err, service.ErrScheduleNotFound),
		errors.Is(err, service.ErrTeacherNotFound),
		errors.Is(err, service.ErrStudentNotFound),
		errors.Is(err, service.ErrClassNotFound),
		errors.Is(err, service.ErrSubjectNotFound),
		errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 40401, err.Error())
	case errors.Is(err, service.ErrTeacherInUse),
		errors.Is(err, service.ErrClassInUse),
		errors.Is(err, service.ErrSubjectInUse),
		errors.Is(err, service.ErrEmailTaken):
		response.Conflict(c, 40902, err.Error(), nil)
	case errors.Is(err, service.ErrSelfDeletion),
		errors.Is(err, service.ErrWrongPassword):
		response.BadRequest(c, 40001, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidRefresh):
		response.Unauthorized(c, 40110, err.Error())
	default:
		response.InternalError(c)
	}
}
