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
	ErrSubjectNotFound = errors.New("matière introuvable")
	ErrSubjectInUse    = errors.New("la matière a des cours planifiés")
)

// SubjectService is the subject business interface.
type SubjectService interface {
	Create(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.SubjectResponse, error)
	List(ctx context.Context, req *dto.SubjectListRequest) ([]dto.SubjectResponse, int64, error)
	Update(ctx context.Context, id uint, req *dto.UpdateSubjectRequest) (*dto.SubjectResponse, error)
	Delete(ctx context.Context, id uint) error
}

type subjectService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSubjectService creates a SubjectService.
func NewSubjectService(repo *repository.Repository, logger *zap.Logger) SubjectService {
	return &subjectService{repo: repo, logger: logger}
}

func (s *subjectService) Create(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error) {
	coeff := req.Coefficient
	if coeff <= 0 {
		coeff = 1
	}

	subject := &model.Subject{
		Name:        req.Name,
		Code:        req.Code,
		Coefficient: coeff,
	}

	if err := s.repo.Subject.Create(ctx, subject); err != nil {
		s.logger.Error("creating subject failed", zap.Error(err))
		return nil, err
	}

	return toSubjectResponse(subject), nil
}

func (s *subjectService) GetByID(ctx context.Context, id uint) (*dto.SubjectResponse, error) {
	subject, err := s.repo.Subject.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		s.logger.Error("fetching subject failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return toSubjectResponse(subject), nil
}

func (s *subjectService) List(ctx context.Context, req *dto.SubjectListRequest) ([]dto.SubjectResponse, int64, error) {
	subjects, total, err := s.repo.Subject.List(ctx, req.Search, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("listing subjects failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.SubjectResponse, 0, len(subjects))
	for i := range subjects {
		result = append(result, *toSubjectResponse(&subjects[i]))
	}

	return result, total, nil
}

func (s *subjectService) Update(ctx context.Context, id uint, req *dto.UpdateSubjectRequest) (*dto.SubjectResponse, error) {
	subject, err := s.repo.Subject.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		s.logger.Error("fetching subject failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		subject.Name = *req.Name
	}
	if req.Code != nil {
		subject.Code = *req.Code
	}
	if req.Coefficient != nil {
		subject.Coefficient = *req.Coefficient
	}

	if err := s.repo.Subject.Update(ctx, subject); err != nil {
		s.logger.Error("updating subject failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return toSubjectResponse(subject), nil
}

func (s *subjectService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Subject.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubjectNotFound
		}
		s.logger.Error("fetching subject failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	schedules, err := s.repo.Schedule.List(ctx, repository.ScheduleFilter{})
	if err != nil {
		s.logger.Error("checking subject schedules failed", zap.Uint("id", id), zap.Error(err))
		return err
	}
	for i := range schedules {
		if schedules[i].SubjectID == id {
			return ErrSubjectInUse
		}
	}

	if err := s.repo.Subject.Delete(ctx, id); err != nil {
		s.logger.Error("deleting subject failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	return nil
}

func toSubjectResponse(sub *model.Subject) *dto.SubjectResponse {
	return &dto.SubjectResponse{
		ID:          sub.ID,
		Name:        sub.Name,
		Code:        sub.Code,
		Coefficient: sub.Coefficient,
		CreatedAt:   sub.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   sub.UpdatedAt.Format(time.RFC3339),
	}
}
