package service

import (
	"go.uber.org/zap"

	"schoolgrid/backend/config"
	"schoolgrid/backend/internal/repository"
	"schoolgrid/backend/pkg/jwt"
	"schoolgrid/backend/pkg/redis"
)

// Service aggregates all business services.
type Service struct {
	Auth     AuthService
	User     UserService
	Teacher  TeacherService
	Student  StudentService
	Class    ClassService
	Subject  SubjectService
	Schedule ScheduleService
	Export   ExportService
}

// NewService wires the dependency graph: Repository → Service.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:     NewUserService(repo, logger),
		Teacher:  NewTeacherService(repo, logger),
		Student:  NewStudentService(repo, logger),
		Class:    NewClassService(repo, logger),
		Subject:  NewSubjectService(repo, logger),
		Schedule: NewScheduleService(repo, logger),
		Export:   NewExportService(repo, logger),
	}
}
