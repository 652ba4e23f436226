package repository

import "gorm.io/gorm"

// Repository aggregates all data-access interfaces.
type Repository struct {
	User     UserRepository
	Teacher  TeacherRepository
	Student  StudentRepository
	Class    ClassRepository
	Subject  SubjectRepository
	Schedule ScheduleRepository
}

// NewRepository builds the aggregate over one gorm connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:     NewUserRepo(db),
		Teacher:  NewTeacherRepo(db),
		Student:  NewStudentRepo(db),
		Class:    NewClassRepo(db),
		Subject:  NewSubjectRepo(db),
		Schedule: NewScheduleRepo(db),
	}
}
