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

var ErrStudentNotFound = errors.New("élève introuvable")

// StudentService is the student business interface.
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.StudentResponse, error)
	List(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentResponse, int64, error)
	Update(ctx context.Context, id uint, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	Delete(ctx context.Context, id uint) error
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService creates a StudentService.
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	if req.ClassID != nil {
		if _, err := s.repo.Class.GetByID(ctx, *req.ClassID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrClassNotFound
			}
			return nil, err
		}
	}

	student := &model.Student{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		ClassID:   req.ClassID,
	}
	if req.BirthDate != nil {
		t, err := time.Parse("2006-01-02", *req.BirthDate)
		if err == nil {
			student.BirthDate = &t
		}
	}

	if err := s.repo.Student.Create(ctx, student); err != nil {
		s.logger.Error("creating student failed", zap.Error(err))
		return nil, err
	}

	// Reload to pick up the class association.
	created, err := s.repo.Student.GetByID(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	return toStudentResponse(created), nil
}

func (s *studentService) GetByID(ctx context.Context, id uint) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("fetching student failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return toStudentResponse(student), nil
}

func (s *studentService) List(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentResponse, int64, error) {
	students, total, err := s.repo.Student.List(ctx, req.ClassID, req.Search, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("listing students failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		result = append(result, *toStudentResponse(&students[i]))
	}

	return result, total, nil
}

func (s *studentService) Update(ctx context.Context, id uint, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("fetching student failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if req.FirstName != nil {
		student.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		student.LastName = *req.LastName
	}
	if req.BirthDate != nil {
		t, err := time.Parse("2006-01-02", *req.BirthDate)
		if err == nil {
			student.BirthDate = &t
		}
	}
	if req.ClassID != nil {
		if _, err := s.repo.Class.GetByID(ctx, *req.ClassID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrClassNotFound
			}
			return nil, err
		}
		student.ClassID = req.ClassID
	}

	if err := s.repo.Student.Update(ctx, student); err != nil {
		s.logger.Error("updating student failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	updated, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toStudentResponse(updated), nil
}

func (s *studentService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Student.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error("fetching student failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Student.Delete(ctx, id); err != nil {
		s.logger.Error("deleting student failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	return nil
}

func toStudentResponse(st *model.Student) *dto.StudentResponse {
	resp := &dto.StudentResponse{
		ID:        st.ID,
		FirstName: st.FirstName,
		LastName:  st.LastName,
		CreatedAt: st.CreatedAt.Format(time.RFC3339),
		UpdatedAt: st.UpdatedAt.Format(time.RFC3339),
	}
	if st.BirthDate != nil {
		resp.BirthDate = st.BirthDate.Format("2006-01-02")
	}
	if st.Class != nil {
		resp.Class = &dto.ClassBrief{ID: st.Class.ID, Name: st.Class.Name}
	}
	return resp
}
