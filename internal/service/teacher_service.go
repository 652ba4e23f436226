package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"schoolgrid/backend/internal/dto"
	"schoolgrid/backend/internal/model"
	"schoolgrid/backend/internal/repository"
)

var (
	ErrTeacherNotFound = errors.New("enseignant introuvable")
	ErrTeacherInUse    = errors.New("l'enseignant a des cours planifiés")
)

// TeacherService is the teacher business interface.
type TeacherService interface {
	Create(ctx context.Context, req *dto.CreateTeacherRequest) (*dto.TeacherResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.TeacherResponse, error)
	List(ctx context.Context, req *dto.TeacherListRequest) ([]dto.TeacherResponse, int64, error)
	Update(ctx context.Context, id uint, req *dto.UpdateTeacherRequest) (*dto.TeacherResponse, error)
	Delete(ctx context.Context, id uint) error
}

type teacherService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTeacherService creates a TeacherService.
func NewTeacherService(repo *repository.Repository, logger *zap.Logger) TeacherService {
	return &teacherService{repo: repo, logger: logger}
}

func (s *teacherService) Create(ctx context.Context, req *dto.CreateTeacherRequest) (*dto.TeacherResponse, error) {
	teacher := &model.Teacher{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	if err := s.repo.Teacher.Create(ctx, teacher); err != nil {
		s.logger.Error("creating teacher failed", zap.Error(err))
		return nil, err
	}

	return toTeacherResponse(teacher), nil
}

func (s *teacherService) GetByID(ctx context.Context, id uint) (*dto.TeacherResponse, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		s.logger.Error("fetching teacher failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return toTeacherResponse(teacher), nil
}

func (s *teacherService) List(ctx context.Context, req *dto.TeacherListRequest) ([]dto.TeacherResponse, int64, error) {
	teachers, total, err := s.repo.Teacher.List(ctx, req.Search, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("listing teachers failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.TeacherResponse, 0, len(teachers))
	for i := range teachers {
		result = append(result, *toTeacherResponse(&teachers[i]))
	}

	return result, total, nil
}

func (s *teacherService) Update(ctx context.Context, id uint, req *dto.UpdateTeacherRequest) (*dto.TeacherResponse, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		s.logger.Error("fetching teacher failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if req.FirstName != nil {
		teacher.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		teacher.LastName = *req.LastName
	}
	if req.Email != nil {
		teacher.Email = *req.Email
	}
	if req.Phone != nil {
		teacher.Phone = *req.Phone
	}

	if err := s.repo.Teacher.Update(ctx, teacher); err != nil {
		s.logger.Error("updating teacher failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return toTeacherResponse(teacher), nil
}

func (s *teacherService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Teacher.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeacherNotFound
		}
		s.logger.Error("fetching teacher failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	// Refuse deletion while schedule records still reference the teacher.
	schedules, err := s.repo.Schedule.ListByTeacher(ctx, id)
	if err != nil {
		s.logger.Error("checking teacher schedules failed", zap.Uint("id", id), zap.Error(err))
		return err
	}
	if len(schedules) > 0 {
		return ErrTeacherInUse
	}

	if err := s.repo.Teacher.Delete(ctx, id); err != nil {
		s.logger.Error("deleting teacher failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	return nil
}

func toTeacherResponse(t *model.Teacher) *dto.TeacherResponse {
	return &dto.TeacherResponse{
		ID:        t.ID,
		FirstName: t.FirstName,
		LastName:  t.LastName,
		Email:     t.Email,
		Phone:     t.Phone,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
}
