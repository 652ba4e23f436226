package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"schoolgrid/backend/internal/dto"
	"schoolgrid/backend/internal/model"
	"schoolgrid/backend/internal/repository"
	"schoolgrid/backend/internal/timetable"
)

var ErrScheduleNotFound = errors.New("cours introuvable")

// ValidationError carries the ordered field-rule violations of a
// rejected submission.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation: " + strings.Join(e.Errors, "; ")
}

// ConflictError carries the double-booking descriptors that blocked a
// create or update.
type ConflictError struct {
	Conflicts []dto.ConflictResponse
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("schedule conflicts: %d", len(e.Conflicts))
}

// ScheduleService is the schedule business interface. Grid and statistics
// are derived fresh from the record list on every call; nothing is cached.
type ScheduleService interface {
	Create(ctx context.Context, payload *dto.SchedulePayload) (*dto.ScheduleResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ScheduleResponse, error)
	List(ctx context.Context, req *dto.ScheduleListRequest) ([]dto.ScheduleResponse, error)
	ListByClass(ctx context.Context, classID uint) ([]dto.ScheduleResponse, error)
	ListByTeacher(ctx context.Context, teacherID uint) ([]dto.ScheduleResponse, error)
	Update(ctx context.Context, id uint, payload *dto.SchedulePayload) (*dto.ScheduleResponse, error)
	Delete(ctx context.Context, id uint) error
	Validate(payload *dto.SchedulePayload) *dto.ValidationResponse
	CheckConflicts(ctx context.Context, req *dto.CheckConflictsRequest) ([]dto.ConflictResponse, error)
	WeeklyGrid(ctx context.Context, req *dto.ScheduleListRequest) (dto.WeeklyGridResponse, error)
	Stats(ctx context.Context, req *dto.ScheduleListRequest) (*dto.ScheduleStatsResponse, error)
	Catalogs() *dto.CatalogResponse
}

type scheduleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScheduleService creates a ScheduleService.
func NewScheduleService(repo *repository.Repository, logger *zap.Logger) ScheduleService {
	return &scheduleService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *scheduleService) Create(ctx context.Context, payload *dto.SchedulePayload) (*dto.ScheduleResponse, error) {
	core := payload.Core()

	// Missing required fields and field-rule violations are collected
	// together, in rule order, before anything touches the database.
	errs := timetable.RequireAll(core)
	res := timetable.Validate(core)
	errs = append(errs, res.Errors...)
	if len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	if err := s.checkReferences(ctx, payload); err != nil {
		return nil, err
	}

	conflicts, err := s.findConflicts(ctx, payload, nil)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, &ConflictError{Conflicts: conflicts}
	}

	schedule := &model.Schedule{
		ClassID:      uint(*payload.ClassID),
		TeacherID:    uint(*payload.TeacherID),
		SubjectID:    uint(*payload.SubjectID),
		DayOfWeek:    *payload.DayOfWeek,
		StartTime:    *payload.StartTime,
		EndTime:      *payload.EndTime,
		AcademicYear: *payload.AcademicYear,
		Semester:     *payload.Semester,
	}
	if payload.Room != nil {
		schedule.Room = *payload.Room
	}

	if err := s.repo.Schedule.Create(ctx, schedule); err != nil {
		s.logger.Error("creating schedule failed", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Schedule.GetByID(ctx, schedule.ID)
	if err != nil {
		return nil, err
	}

	return toScheduleResponse(created), nil
}

// ────────────────────── Reads ──────────────────────

func (s *scheduleService) GetByID(ctx context.Context, id uint) (*dto.ScheduleResponse, error) {
	schedule, err := s.repo.Schedule.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("fetching schedule failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return toScheduleResponse(schedule), nil
}

func (s *scheduleService) List(ctx context.Context, req *dto.ScheduleListRequest) ([]dto.ScheduleResponse, error) {
	schedules, err := s.repo.Schedule.List(ctx, listFilter(req))
	if err != nil {
		s.logger.Error("listing schedules failed", zap.Error(err))
		return nil, err
	}
	return toScheduleResponses(schedules), nil
}

func (s *scheduleService) ListByClass(ctx context.Context, classID uint) ([]dto.ScheduleResponse, error) {
	schedules, err := s.repo.Schedule.ListByClass(ctx, classID)
	if err != nil {
		s.logger.Error("listing class schedules failed", zap.Uint("class_id", classID), zap.Error(err))
		return nil, err
	}
	return toScheduleResponses(schedules), nil
}

func (s *scheduleService) ListByTeacher(ctx context.Context, teacherID uint) ([]dto.ScheduleResponse, error) {
	schedules, err := s.repo.Schedule.ListByTeacher(ctx, teacherID)
	if err != nil {
		s.logger.Error("listing teacher schedules failed", zap.Uint("teacher_id", teacherID), zap.Error(err))
		return nil, err
	}
	return toScheduleResponses(schedules), nil
}

// ────────────────────── Update ──────────────────────

func (s *scheduleService) Update(ctx context.Context, id uint, payload *dto.SchedulePayload) (*dto.ScheduleResponse, error) {
	schedule, err := s.repo.Schedule.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("fetching schedule failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	// Partial submission: only present fields are checked and applied.
	if res := timetable.Validate(payload.Core()); !res.Valid {
		return nil, &ValidationError{Errors: res.Errors}
	}
	if err := s.checkReferences(ctx, payload); err != nil {
		return nil, err
	}

	merged := mergePayload(schedule, payload)
	// The merged slot must still be internally consistent, e.g. moving
	// only start_time past the existing end_time.
	if res := timetable.Validate(merged.Core()); !res.Valid {
		return nil, &ValidationError{Errors: res.Errors}
	}

	conflicts, err := s.findConflicts(ctx, &merged, &id)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, &ConflictError{Conflicts: conflicts}
	}

	applyPayload(schedule, payload)

	if err := s.repo.Schedule.Update(ctx, schedule); err != nil {
		s.logger.Error("updating schedule failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	updated, err := s.repo.Schedule.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toScheduleResponse(updated), nil
}

// ────────────────────── Delete ──────────────────────

func (s *scheduleService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Schedule.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScheduleNotFound
		}
		s.logger.Error("fetching schedule failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Schedule.Delete(ctx, id); err != nil {
		s.logger.Error("deleting schedule failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ────────────────────── Advisory validation ──────────────────────

// Validate runs the pre-submission field checks without touching the
// database. It never detects conflicts; that is CheckConflicts' job.
func (s *scheduleService) Validate(payload *dto.SchedulePayload) *dto.ValidationResponse {
	res := timetable.Validate(payload.Core())
	errs := res.Errors
	if errs == nil {
		errs = []string{}
	}
	return &dto.ValidationResponse{IsValid: res.Valid, Errors: errs}
}

// ────────────────────── Conflict detection ──────────────────────

func (s *scheduleService) CheckConflicts(ctx context.Context, req *dto.CheckConflictsRequest) ([]dto.ConflictResponse, error) {
	payload := req.Payload

	// When editing, absent fields fall back to the stored record so the
	// candidate slot is fully specified.
	if req.ExcludeID != nil {
		existing, err := s.repo.Schedule.GetByID(ctx, *req.ExcludeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrScheduleNotFound
			}
			return nil, err
		}
		payload = mergePayload(existing, &payload)
	}

	if res := timetable.Validate(payload.Core()); !res.Valid {
		return nil, &ValidationError{Errors: res.Errors}
	}
	if missing := timetable.RequireAll(payload.Core()); len(missing) > 0 {
		return nil, &ValidationError{Errors: missing}
	}

	return s.findConflicts(ctx, &payload, req.ExcludeID)
}

// findConflicts scans same-slot records and classifies the overlaps.
// The payload must be fully specified when this is called.
func (s *scheduleService) findConflicts(ctx context.Context, payload *dto.SchedulePayload, excludeID *uint) ([]dto.ConflictResponse, error) {
	overlapping, err := s.repo.Schedule.FindOverlapping(ctx, repository.OverlapQuery{
		DayOfWeek:    *payload.DayOfWeek,
		StartTime:    *payload.StartTime,
		EndTime:      *payload.EndTime,
		AcademicYear: *payload.AcademicYear,
		Semester:     *payload.Semester,
		ExcludeID:    excludeID,
	})
	if err != nil {
		s.logger.Error("conflict scan failed", zap.Error(err))
		return nil, err
	}

	dayLabel := timetable.WeekdayLabel(timetable.Weekday(*payload.DayOfWeek))
	conflicts := make([]dto.ConflictResponse, 0)

	for i := range overlapping {
		rec := &overlapping[i]
		resp := toScheduleResponse(rec)

		if rec.TeacherID == uint(*payload.TeacherID) {
			conflicts = append(conflicts, dto.ConflictResponse{
				Type: "teacher",
				Message: fmt.Sprintf("%s a déjà un cours le %s de %s à %s",
					resp.TeacherName, dayLabel, rec.StartTime, rec.EndTime),
				ConflictingRecord: resp,
			})
		}
		if rec.ClassID == uint(*payload.ClassID) {
			conflicts = append(conflicts, dto.ConflictResponse{
				Type: "class",
				Message: fmt.Sprintf("La classe %s a déjà un cours le %s de %s à %s",
					resp.ClassName, dayLabel, rec.StartTime, rec.EndTime),
				ConflictingRecord: resp,
			})
		}
		if payload.Room != nil && *payload.Room != "" && rec.Room == *payload.Room {
			conflicts = append(conflicts, dto.ConflictResponse{
				Type: "room",
				Message: fmt.Sprintf("La salle %s est déjà occupée le %s de %s à %s",
					rec.Room, dayLabel, rec.StartTime, rec.EndTime),
				ConflictingRecord: resp,
			})
		}
	}

	return conflicts, nil
}

// ────────────────────── Grid and statistics ──────────────────────

func (s *scheduleService) WeeklyGrid(ctx context.Context, req *dto.ScheduleListRequest) (dto.WeeklyGridResponse, error) {
	schedules, err := s.repo.Schedule.List(ctx, listFilter(req))
	if err != nil {
		s.logger.Error("listing schedules failed", zap.Error(err))
		return nil, err
	}

	grid := timetable.BuildWeeklyGrid(toRecords(schedules))

	// Index responses by record id to translate grid cells.
	byID := make(map[int]*dto.ScheduleResponse, len(schedules))
	for i := range schedules {
		byID[int(schedules[i].ID)] = toScheduleResponse(&schedules[i])
	}

	out := make(dto.WeeklyGridResponse, len(grid))
	for day, cells := range grid {
		row := make(map[string]*dto.ScheduleResponse, len(cells))
		for start, rec := range cells {
			if rec == nil {
				row[start] = nil
				continue
			}
			row[start] = byID[rec.ID]
		}
		out[string(day)] = row
	}

	return out, nil
}

func (s *scheduleService) Stats(ctx context.Context, req *dto.ScheduleListRequest) (*dto.ScheduleStatsResponse, error) {
	schedules, err := s.repo.Schedule.List(ctx, listFilter(req))
	if err != nil {
		s.logger.Error("listing schedules failed", zap.Error(err))
		return nil, err
	}

	stats := timetable.ComputeStats(toRecords(schedules))

	byDay := make(map[string]int, len(stats.ByDay))
	for day, n := range stats.ByDay {
		byDay[string(day)] = n
	}

	return &dto.ScheduleStatsResponse{
		Total:           stats.Total,
		ByDay:           byDay,
		TeacherWorkload: stats.TeacherWorkload,
		ClassCoverage:   stats.ClassCoverage,
	}, nil
}

func (s *scheduleService) Catalogs() *dto.CatalogResponse {
	return &dto.CatalogResponse{
		Weekdays:  timetable.Weekdays(),
		TimeSlots: timetable.Slots(),
	}
}

// ────────────────────── Helpers ──────────────────────

// checkReferences verifies that present entity references exist.
func (s *scheduleService) checkReferences(ctx context.Context, payload *dto.SchedulePayload) error {
	if payload.ClassID != nil {
		if _, err := s.repo.Class.GetByID(ctx, uint(*payload.ClassID)); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClassNotFound
			}
			return err
		}
	}
	if payload.TeacherID != nil {
		if _, err := s.repo.Teacher.GetByID(ctx, uint(*payload.TeacherID)); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTeacherNotFound
			}
			return err
		}
	}
	if payload.SubjectID != nil {
		if _, err := s.repo.Subject.GetByID(ctx, uint(*payload.SubjectID)); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSubjectNotFound
			}
			return err
		}
	}
	return nil
}

// mergePayload overlays the present payload fields on a stored record and
// returns the fully specified result.
func mergePayload(schedule *model.Schedule, payload *dto.SchedulePayload) dto.SchedulePayload {
	classID := int(schedule.ClassID)
	teacherID := int(schedule.TeacherID)
	subjectID := int(schedule.SubjectID)
	merged := dto.SchedulePayload{
		ClassID:      &classID,
		TeacherID:    &teacherID,
		SubjectID:    &subjectID,
		DayOfWeek:    &schedule.DayOfWeek,
		StartTime:    &schedule.StartTime,
		EndTime:      &schedule.EndTime,
		AcademicYear: &schedule.AcademicYear,
		Semester:     &schedule.Semester,
		Room:         &schedule.Room,
	}

	if payload.ClassID != nil {
		merged.ClassID = payload.ClassID
	}
	if payload.TeacherID != nil {
		merged.TeacherID = payload.TeacherID
	}
	if payload.SubjectID != nil {
		merged.SubjectID = payload.SubjectID
	}
	if payload.DayOfWeek != nil {
		merged.DayOfWeek = payload.DayOfWeek
	}
	if payload.StartTime != nil {
		merged.StartTime = payload.StartTime
	}
	if payload.EndTime != nil {
		merged.EndTime = payload.EndTime
	}
	if payload.AcademicYear != nil {
		merged.AcademicYear = payload.AcademicYear
	}
	if payload.Semester != nil {
		merged.Semester = payload.Semester
	}
	if payload.Room != nil {
		merged.Room = payload.Room
	}

	return merged
}

// applyPayload writes the present payload fields onto the model.
func applyPayload(schedule *model.Schedule, payload *dto.SchedulePayload) {
	if payload.ClassID != nil {
		schedule.ClassID = uint(*payload.ClassID)
	}
	if payload.TeacherID != nil {
		schedule.TeacherID = uint(*payload.TeacherID)
	}
	if payload.SubjectID != nil {
		schedule.SubjectID = uint(*payload.SubjectID)
	}
	if payload.DayOfWeek != nil {
		schedule.DayOfWeek = *payload.DayOfWeek
	}
	if payload.StartTime != nil {
		schedule.StartTime = *payload.StartTime
	}
	if payload.EndTime != nil {
		schedule.EndTime = *payload.EndTime
	}
	if payload.AcademicYear != nil {
		schedule.AcademicYear = *payload.AcademicYear
	}
	if payload.Semester != nil {
		schedule.Semester = *payload.Semester
	}
	if payload.Room != nil {
		schedule.Room = *payload.Room
	}
}

// toRecord projects a model row into the timetable core's shape.
func toRecord(sch *model.Schedule) timetable.Record {
	rec := timetable.Record{
		ID:           int(sch.ID),
		ClassID:      int(sch.ClassID),
		TeacherID:    int(sch.TeacherID),
		SubjectID:    int(sch.SubjectID),
		Day:          timetable.Weekday(sch.DayOfWeek),
		StartTime:    sch.StartTime,
		EndTime:      sch.EndTime,
		AcademicYear: sch.AcademicYear,
		Semester:     sch.Semester,
	}
	if sch.Class != nil {
		rec.ClassName = sch.Class.Name
	}
	if sch.Teacher != nil {
		rec.TeacherName = sch.Teacher.FullName()
	}
	if sch.Subject != nil {
		rec.SubjectName = sch.Subject.Name
	}
	return rec
}

func toRecords(schedules []model.Schedule) []timetable.Record {
	records := make([]timetable.Record, 0, len(schedules))
	for i := range schedules {
		records = append(records, toRecord(&schedules[i]))
	}
	return records
}

func toScheduleResponse(sch *model.Schedule) *dto.ScheduleResponse {
	resp := &dto.ScheduleResponse{
		ID:           sch.ID,
		ClassID:      sch.ClassID,
		TeacherID:    sch.TeacherID,
		SubjectID:    sch.SubjectID,
		DayOfWeek:    sch.DayOfWeek,
		StartTime:    sch.StartTime,
		EndTime:      sch.EndTime,
		AcademicYear: sch.AcademicYear,
		Semester:     sch.Semester,
		Room:         sch.Room,
		CreatedAt:    sch.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    sch.UpdatedAt.Format(time.RFC3339),
	}
	if sch.Class != nil {
		resp.ClassName = sch.Class.Name
	}
	if sch.Teacher != nil {
		resp.TeacherName = sch.Teacher.FullName()
	}
	if sch.Subject != nil {
		resp.SubjectName = sch.Subject.Name
	}
	return resp
}

func toScheduleResponses(schedules []model.Schedule) []dto.ScheduleResponse {
	result := make([]dto.ScheduleResponse, 0, len(schedules))
	for i := range schedules {
		result = append(result, *toScheduleResponse(&schedules[i]))
	}
	return result
}

func listFilter(req *dto.ScheduleListRequest) repository.ScheduleFilter {
	return repository.ScheduleFilter{
		ClassID:      req.ClassID,
		TeacherID:    req.TeacherID,
		AcademicYear: req.AcademicYear,
		Semester:     req.Semester,
	}
}
