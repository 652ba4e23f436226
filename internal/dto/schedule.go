package dto

import "schoolgrid/backend/internal/timetable"

// ── Schedule module DTOs ──

// SchedulePayload is the structurally optional schedule submission used
// by create, update, validate and check-conflicts. Field-rule validation
// happens in the timetable core, not through binding tags, so that all
// violations are collected in rule order instead of failing on the first.
type SchedulePayload struct {
	ClassID      *int    `json:"class_id"`
	TeacherID    *int    `json:"teacher_id"`
	SubjectID    *int    `json:"subject_id"`
	DayOfWeek    *string `json:"day_of_week"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	AcademicYear *string `json:"academic_year"`
	Semester     *string `json:"semester"`
	Room         *string `json:"room"`
}

// Core converts the payload to the timetable core's shape.
func (p *SchedulePayload) Core() timetable.Payload {
	return timetable.Payload{
		ClassID:      p.ClassID,
		TeacherID:    p.TeacherID,
		SubjectID:    p.SubjectID,
		Day:          p.DayOfWeek,
		StartTime:    p.StartTime,
		EndTime:      p.EndTime,
		AcademicYear: p.AcademicYear,
		Semester:     p.Semester,
	}
}

// ScheduleListRequest filters the schedule list.
type ScheduleListRequest struct {
	ClassID      *uint  `form:"class_id"      binding:"omitempty,min=1"`
	TeacherID    *uint  `form:"teacher_id"    binding:"omitempty,min=1"`
	AcademicYear string `form:"academic_year"`
	Semester     string `form:"semester"      binding:"omitempty,oneof=S1 S2"`
}

// CheckConflictsRequest asks for conflict detection on a payload,
// optionally excluding an existing record (the one being edited).
type CheckConflictsRequest struct {
	Payload   SchedulePayload `json:"payload"`
	ExcludeID *uint           `json:"exclude_id"`
}

// ScheduleResponse is the schedule record view.
type ScheduleResponse struct {
	ID           uint   `json:"id"`
	ClassID      uint   `json:"class_id"`
	ClassName    string `json:"class_name"`
	TeacherID    uint   `json:"teacher_id"`
	TeacherName  string `json:"teacher_name"`
	SubjectID    uint   `json:"subject_id"`
	SubjectName  string `json:"subject_name"`
	DayOfWeek    string `json:"day_of_week"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	AcademicYear string `json:"academic_year"`
	Semester     string `json:"semester"`
	Room         string `json:"room,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// ConflictResponse is one double-booking descriptor.
type ConflictResponse struct {
	Type              string            `json:"type"` // teacher | class | room
	Message           string            `json:"message"`
	ConflictingRecord *ScheduleResponse `json:"conflicting_record,omitempty"`
}

// ValidationResponse is the advisory pre-submission validation result.
type ValidationResponse struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// WeeklyGridResponse is the day × slot matrix keyed by weekday then by
// slot start time; empty cells are null.
type WeeklyGridResponse map[string]map[string]*ScheduleResponse

// ScheduleStatsResponse aggregates the schedule list.
type ScheduleStatsResponse struct {
	Total           int                  `json:"total"`
	ByDay           map[string]int       `json:"by_day"`
	TeacherWorkload []timetable.Workload `json:"teacher_workload"`
	ClassCoverage   []timetable.Workload `json:"class_coverage"`
}

// CatalogResponse exposes the fixed weekday and time-slot catalogs.
type CatalogResponse struct {
	Weekdays  []timetable.WeekdayOption `json:"weekdays"`
	TimeSlots []timetable.Slot          `json:"time_slots"`
}
