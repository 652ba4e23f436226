package repository

import (
	"context"

	"gorm.io/gorm"

	"schoolgrid/backend/internal/model"
)

// ScheduleFilter narrows schedule queries. Zero values mean "no filter".
type ScheduleFilter struct {
	ClassID      *uint
	TeacherID    *uint
	AcademicYear string
	Semester     string
}

// OverlapQuery describes a candidate slot for conflict detection.
// ExcludeID, when non-nil, removes the record being edited from the scan.
type OverlapQuery struct {
	DayOfWeek    string
	StartTime    string
	EndTime      string
	AcademicYear string
	Semester     string
	ExcludeID    *uint
}

// ScheduleRepository is the schedule data access interface.
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *model.Schedule) error
	GetByID(ctx context.Context, id uint) (*model.Schedule, error)
	List(ctx context.Context, filter ScheduleFilter) ([]model.Schedule, error)
	ListByClass(ctx context.Context, classID uint) ([]model.Schedule, error)
	ListByTeacher(ctx context.Context, teacherID uint) ([]model.Schedule, error)
	FindOverlapping(ctx context.Context, q OverlapQuery) ([]model.Schedule, error)
	Update(ctx context.Context, schedule *model.Schedule) error
	Delete(ctx context.Context, id uint) error
}

type scheduleRepo struct {
	db *gorm.DB
}

// NewScheduleRepo creates a ScheduleRepository.
func NewScheduleRepo(db *gorm.DB) ScheduleRepository {
	return &scheduleRepo{db: db}
}

func (r *scheduleRepo) preload(db *gorm.DB) *gorm.DB {
	return db.Preload("Class").Preload("Teacher").Preload("Subject")
}

func (r *scheduleRepo) Create(ctx context.Context, schedule *model.Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *scheduleRepo) GetByID(ctx context.Context, id uint) (*model.Schedule, error) {
	var schedule model.Schedule
	err := r.preload(r.db.WithContext(ctx)).First(&schedule, id).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepo) List(ctx context.Context, filter ScheduleFilter) ([]model.Schedule, error) {
	var schedules []model.Schedule

	db := r.db.WithContext(ctx)
	if filter.ClassID != nil {
		db = db.Where("class_id = ?", *filter.ClassID)
	}
	if filter.TeacherID != nil {
		db = db.Where("teacher_id = ?", *filter.TeacherID)
	}
	if filter.AcademicYear != "" {
		db = db.Where("academic_year = ?", filter.AcademicYear)
	}
	if filter.Semester != "" {
		db = db.Where("semester = ?", filter.Semester)
	}

	err := r.preload(db).Order("id ASC").Find(&schedules).Error
	return schedules, err
}

func (r *scheduleRepo) ListByClass(ctx context.Context, classID uint) ([]model.Schedule, error) {
	return r.List(ctx, ScheduleFilter{ClassID: &classID})
}

func (r *scheduleRepo) ListByTeacher(ctx context.Context, teacherID uint) ([]model.Schedule, error) {
	return r.List(ctx, ScheduleFilter{TeacherID: &teacherID})
}

// FindOverlapping returns every record of the same year, semester and day
// whose [start, end) interval intersects the candidate's. The caller
// classifies the result into teacher, class and room conflicts.
func (r *scheduleRepo) FindOverlapping(ctx context.Context, q OverlapQuery) ([]model.Schedule, error) {
	var schedules []model.Schedule

	db := r.db.WithContext(ctx).
		Where("academic_year = ?", q.AcademicYear).
		Where("semester = ?", q.Semester).
		Where("day_of_week = ?", q.DayOfWeek).
		Where("start_time < ? AND end_time > ?", q.EndTime, q.StartTime)

	if q.ExcludeID != nil {
		db = db.Where("id <> ?", *q.ExcludeID)
	}

	err := r.preload(db).Order("id ASC").Find(&schedules).Error
	return schedules, err
}

func (r *scheduleRepo) Update(ctx context.Context, schedule *model.Schedule) error {
	return r.db.WithContext(ctx).Save(schedule).Error
}

func (r *scheduleRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Schedule{}, id).Error
}
