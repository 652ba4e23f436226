package repository

import (
	"context"

	"gorm.io/gorm"

	"schoolgrid/backend/internal/model"
)

// ClassRepository is the class data access interface.
type ClassRepository interface {
	Create(ctx context.Context, class *model.Class) error
	GetByID(ctx context.Context, id uint) (*model.Class, error)
	List(ctx context.Context, level string, offset, limit int) ([]model.Class, int64, error)
	CountStudents(ctx context.Context, classID uint) (int64, error)
	Update(ctx context.Context, class *model.Class) error
	Delete(ctx context.Context, id uint) error
}

type classRepo struct {
	db *gorm.DB
}

// NewClassRepo creates a ClassRepository.
func NewClassRepo(db *gorm.DB) ClassRepository {
	return &classRepo{db: db}
}

func (r *classRepo) Create(ctx context.Context, class *model.Class) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *classRepo) GetByID(ctx context.Context, id uint) (*model.Class, error) {
	var class model.Class
	err := r.db.WithContext(ctx).First(&class, id).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepo) List(ctx context.Context, level string, offset, limit int) ([]model.Class, int64, error) {
	var classes []model.Class
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Class{})
	if level != "" {
		db = db.Where("level = ?", level)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Order("name ASC").Offset(offset).Limit(limit).Find(&classes).Error
	return classes, total, err
}

func (r *classRepo) CountStudents(ctx context.Context, classID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Student{}).
		Where("class_id = ?", classID).
		Count(&n).Error
	return n, err
}

func (r *classRepo) Update(ctx context.Context, class *model.Class) error {
	return r.db.WithContext(ctx).Save(class).Error
}

func (r *classRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Class{}, id).Error
}
