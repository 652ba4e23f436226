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
	ErrClassNotFound = errors.New("classe introuvable")
	ErrClassInUse    = errors.New("la classe a des élèves ou des cours planifiés")
)

// ClassService is the class business interface.
type ClassService interface {
	Create(ctx context.Context, req *dto.CreateClassRequest) (*dto.ClassResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ClassResponse, error)
	List(ctx context.Context, req *dto.ClassListRequest) ([]dto.ClassResponse, int64, error)
	Update(ctx context.Context, id uint, req *dto.UpdateClassRequest) (*dto.ClassResponse, error)
	Delete(ctx context.Context, id uint) error
}

type classService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewClassService creates a ClassService.
func NewClassService(repo *repository.Repository, logger *zap.Logger) ClassService {
	return &classService{repo: repo, logger: logger}
}

func (s *classService) Create(ctx context.Context, req *dto.CreateClassRequest) (*dto.ClassResponse, error) {
	class := &model.Class{
		Name:  req.Name,
		Level: req.Level,
	}

	if err := s.repo.Class.Create(ctx, class); err != nil {
		s.logger.Error("creating class failed", zap.Error(err))
		return nil, err
	}

	return s.toClassResponse(ctx, class), nil
}

func (s *classService) GetByID(ctx context.Context, id uint) (*dto.ClassResponse, error) {
	class, err := s.repo.Class.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		s.logger.Error("fetching class failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return s.toClassResponse(ctx, class), nil
}

func (s *classService) List(ctx context.Context, req *dto.ClassListRequest) ([]dto.ClassResponse, int64, error) {
	classes, total, err := s.repo.Class.List(ctx, req.Level, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("listing classes failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.ClassResponse, 0, len(classes))
	for i := range classes {
		result = append(result, *s.toClassResponse(ctx, &classes[i]))
	}

	return result, total, nil
}

func (s *classService) Update(ctx context.Context, id uint, req *dto.UpdateClassRequest) (*dto.ClassResponse, error) {
	class, err := s.repo.Class.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		s.logger.Error("fetching class failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		class.Name = *req.Name
	}
	if req.Level != nil {
		class.Level = *req.Level
	}

	if err := s.repo.Class.Update(ctx, class); err != nil {
		s.logger.Error("updating class failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return s.toClassResponse(ctx, class), nil
}

func (s *classService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Class.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClassNotFound
		}
		s.logger.Error("fetching class failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	students, err := s.repo.Class.CountStudents(ctx, id)
	if err != nil {
		s.logger.Error("counting class students failed", zap.Uint("id", id), zap.Error(err))
		return err
	}
	schedules, err := s.repo.Schedule.ListByClass(ctx, id)
	if err != nil {
		s.logger.Error("checking class schedules failed", zap.Uint("id", id), zap.Error(err))
		return err
	}
	if students > 0 || len(schedules) > 0 {
		return ErrClassInUse
	}

	if err := s.repo.Class.Delete(ctx, id); err != nil {
		s.logger.Error("deleting class failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	return nil
}

func (s *classService) toClassResponse(ctx context.Context, c *model.Class) *dto.ClassResponse {
	count, err := s.repo.Class.CountStudents(ctx, c.ID)
	if err != nil {
		// The count is decorative; keep the response usable.
		count = 0
	}
	return &dto.ClassResponse{
		ID:           c.ID,
		Name:         c.Name,
		Level:        c.Level,
		StudentCount: int(count),
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    c.UpdatedAt.Format(time.RFC3339),
	}
}
