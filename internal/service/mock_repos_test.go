package service

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"

	"schoolgrid/backend/internal/model"
	"schoolgrid/backend/internal/repository"
)

// In-memory repository mocks. Each stores rows in a map keyed by id and
// hands out copies so tests cannot mutate the store through a response.
// Setting err makes every call fail with it.

func newMockRepository() (*repository.Repository, *mockStore) {
	store := &mockStore{
		users:     &mockUserRepo{rows: map[uint]model.User{}},
		teachers:  &mockTeacherRepo{rows: map[uint]model.Teacher{}},
		students:  &mockStudentRepo{rows: map[uint]model.Student{}},
		classes:   &mockClassRepo{rows: map[uint]model.Class{}},
		subjects:  &mockSubjectRepo{rows: map[uint]model.Subject{}},
		schedules: &mockScheduleRepo{rows: map[uint]model.Schedule{}},
	}
	store.classes.students = store.students
	return &repository.Repository{
		User:     store.users,
		Teacher:  store.teachers,
		Student:  store.students,
		Class:    store.classes,
		Subject:  store.subjects,
		Schedule: store.schedules,
	}, store
}

type mockStore struct {
	users     *mockUserRepo
	teachers  *mockTeacherRepo
	students  *mockStudentRepo
	classes   *mockClassRepo
	subjects  *mockSubjectRepo
	schedules *mockScheduleRepo
}

func sortedIDs[T any](rows map[uint]T) []uint {
	ids := make([]uint, 0, len(rows))
	for id := range rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ── users ──

type mockUserRepo struct {
	rows   map[uint]model.User
	nextID uint
	err    error
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	user.ID = m.nextID
	m.rows[user.ID] = *user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	row, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, id := range sortedIDs(m.rows) {
		if m.rows[id].Email == email {
			row := m.rows[id]
			return &row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context, search string, offset, limit int) ([]model.User, int64, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	var users []model.User
	for _, id := range sortedIDs(m.rows) {
		row := m.rows[id]
		if search != "" && !strings.Contains(row.Name, search) && !strings.Contains(row.Email, search) {
			continue
		}
		users = append(users, row)
	}
	return page(users, offset, limit), int64(len(users)), nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.rows[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.rows[user.ID] = *user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id uint) error {
	if m.err != nil {
		return m.err
	}
	delete(m.rows, id)
	return nil
}

// ── teachers ──

type mockTeacherRepo struct {
	rows   map[uint]model.Teacher
	nextID uint
	err    error
}

func (m *mockTeacherRepo) Create(_ context.Context, teacher *model.Teacher) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	teacher.ID = m.nextID
	m.rows[teacher.ID] = *teacher
	return nil
}

func (m *mockTeacherRepo) GetByID(_ context.Context, id uint) (*model.Teacher, error) {
	if m.err != nil {
		return nil, m.err
	}
	row, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (m *mockTeacherRepo) List(_ context.Context, search string, offset, limit int) ([]model.Teacher, int64, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	var teachers []model.Teacher
	for _, id := range sortedIDs(m.rows) {
		row := m.rows[id]
		if search != "" && !strings.Contains(row.FirstName, search) && !strings.Contains(row.LastName, search) {
			continue
		}
		teachers = append(teachers, row)
	}
	return page(teachers, offset, limit), int64(len(teachers)), nil
}

func (m *mockTeacherRepo) Update(_ context.Context, teacher *model.Teacher) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.rows[teacher.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.rows[teacher.ID] = *teacher
	return nil
}

func (m *mockTeacherRepo) Delete(_ context.Context, id uint) error {
	if m.err != nil {
		return m.err
	}
	delete(m.rows, id)
	return nil
}

// ── students ──

type mockStudentRepo struct {
	rows   map[uint]model.Student
	nextID uint
	err    error
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	student.ID = m.nextID
	m.rows[student.ID] = *student
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id uint) (*model.Student, error) {
	if m.err != nil {
		return nil, m.err
	}
	row, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (m *mockStudentRepo) List(_ context.Context, classID *uint, search string, offset, limit int) ([]model.Student, int64, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	var students []model.Student
	for _, id := range sortedIDs(m.rows) {
		row := m.rows[id]
		if classID != nil && (row.ClassID == nil || *row.ClassID != *classID) {
			continue
		}
		if search != "" && !strings.Contains(row.FirstName, search) && !strings.Contains(row.LastName, search) {
			continue
		}
		students = append(students, row)
	}
	return page(students, offset, limit), int64(len(students)), nil
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.rows[student.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.rows[student.ID] = *student
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id uint) error {
	if m.err != nil {
		return m.err
	}
	delete(m.rows, id)
	return nil
}

// ── classes ──

type mockClassRepo struct {
	rows     map[uint]model.Class
	nextID   uint
	err      error
	students *mockStudentRepo
}

func (m *mockClassRepo) Create(_ context.Context, class *model.Class) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	class.ID = m.nextID
	m.rows[class.ID] = *class
	return nil
}

func (m *mockClassRepo) GetByID(_ context.Context, id uint) (*model.Class, error) {
	if m.err != nil {
		return nil, m.err
	}
	row, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (m *mockClassRepo) List(_ context.Context, level string, offset, limit int) ([]model.Class, int64, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	var classes []model.Class
	for _, id := range sortedIDs(m.rows) {
		row := m.rows[id]
		if level != "" && row.Level != level {
			continue
		}
		classes = append(classes, row)
	}
	return page(classes, offset, limit), int64(len(classes)), nil
}

func (m *mockClassRepo) CountStudents(_ context.Context, classID uint) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var n int64
	for _, row := range m.students.rows {
		if row.ClassID != nil && *row.ClassID == classID {
			n++
		}
	}
	return n, nil
}

func (m *mockClassRepo) Update(_ context.Context, class *model.Class) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.rows[class.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.rows[class.ID] = *class
	return nil
}

func (m *mockClassRepo) Delete(_ context.Context, id uint) error {
	if m.err != nil {
		return m.err
	}
	delete(m.rows, id)
	return nil
}

// ── subjects ──

type mockSubjectRepo struct {
	rows   map[uint]model.Subject
	nextID uint
	err    error
}

func (m *mockSubjectRepo) Create(_ context.Context, subject *model.Subject) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	subject.ID = m.nextID
	m.rows[subject.ID] = *subject
	return nil
}

func (m *mockSubjectRepo) GetByID(_ context.Context, id uint) (*model.Subject, error) {
	if m.err != nil {
		return nil, m.err
	}
	row, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (m *mockSubjectRepo) List(_ context.Context, search string, offset, limit int) ([]model.Subject, int64, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	var subjects []model.Subject
	for _, id := range sortedIDs(m.rows) {
		row := m.rows[id]
		if search != "" && !strings.Contains(row.Name, search) && !strings.Contains(row.Code, search) {
			continue
		}
		subjects = append(subjects, row)
	}
	return page(subjects, offset, limit), int64(len(subjects)), nil
}

func (m *mockSubjectRepo) Update(_ context.Context, subject *model.Subject) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.rows[subject.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.rows[subject.ID] = *subject
	return nil
}

func (m *mockSubjectRepo) Delete(_ context.Context, id uint) error {
	if m.err != nil {
		return m.err
	}
	delete(m.rows, id)
	return nil
}

// ── schedules ──

type mockScheduleRepo struct {
	rows   map[uint]model.Schedule
	nextID uint
	err    error
}

func (m *mockScheduleRepo) Create(_ context.Context, schedule *model.Schedule) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	schedule.ID = m.nextID
	m.rows[schedule.ID] = *schedule
	return nil
}

func (m *mockScheduleRepo) GetByID(_ context.Context, id uint) (*model.Schedule, error) {
	if m.err != nil {
		return nil, m.err
	}
	row, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (m *mockScheduleRepo) List(_ context.Context, filter repository.ScheduleFilter) ([]model.Schedule, error) {
	if m.err != nil {
		return nil, m.err
	}
	var schedules []model.Schedule
	for _, id := range sortedIDs(m.rows) {
		row := m.rows[id]
		if filter.ClassID != nil && row.ClassID != *filter.ClassID {
			continue
		}
		if filter.TeacherID != nil && row.TeacherID != *filter.TeacherID {
			continue
		}
		if filter.AcademicYear != "" && row.AcademicYear != filter.AcademicYear {
			continue
		}
		if filter.Semester != "" && row.Semester != filter.Semester {
			continue
		}
		schedules = append(schedules, row)
	}
	return schedules, nil
}

func (m *mockScheduleRepo) ListByClass(ctx context.Context, classID uint) ([]model.Schedule, error) {
	return m.List(ctx, repository.ScheduleFilter{ClassID: &classID})
}

func (m *mockScheduleRepo) ListByTeacher(ctx context.Context, teacherID uint) ([]model.Schedule, error) {
	return m.List(ctx, repository.ScheduleFilter{TeacherID: &teacherID})
}

func (m *mockScheduleRepo) FindOverlapping(_ context.Context, q repository.OverlapQuery) ([]model.Schedule, error) {
	if m.err != nil {
		return nil, m.err
	}
	var schedules []model.Schedule
	for _, id := range sortedIDs(m.rows) {
		row := m.rows[id]
		if q.ExcludeID != nil && row.ID == *q.ExcludeID {
			continue
		}
		if row.AcademicYear != q.AcademicYear || row.Semester != q.Semester || row.DayOfWeek != q.DayOfWeek {
			continue
		}
		if row.StartTime < q.EndTime && row.EndTime > q.StartTime {
			schedules = append(schedules, row)
		}
	}
	return schedules, nil
}

func (m *mockScheduleRepo) Update(_ context.Context, schedule *model.Schedule) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.rows[schedule.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.rows[schedule.ID] = *schedule
	return nil
}

func (m *mockScheduleRepo) Delete(_ context.Context, id uint) error {
	if m.err != nil {
		return m.err
	}
	delete(m.rows, id)
	return nil
}

func page[T any](rows []T, offset, limit int) []T {
	if offset >= len(rows) {
		return []T{}
	}
	end := offset + limit
	if limit <= 0 || end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}
