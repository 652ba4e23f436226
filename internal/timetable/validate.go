package timetable

import "regexp"

var academicYearPattern = regexp.MustCompile(`^\d{4}-\d{4}$`)

// Payload is a structurally optional schedule submission: every field is
// independently present (non-nil) or absent. A create sends all required
// fields; an update sends only the changed ones.
type Payload struct {
	ClassID      *int    `json:"class_id,omitempty"`
	TeacherID    *int    `json:"teacher_id,omitempty"`
	SubjectID    *int    `json:"subject_id,omitempty"`
	Day          *string `json:"day_of_week,omitempty"`
	StartTime    *string `json:"start_time,omitempty"`
	EndTime      *string `json:"end_time,omitempty"`
	AcademicYear *string `json:"academic_year,omitempty"`
	Semester     *string `json:"semester,omitempty"`
}

// Result is the advisory validation outcome: a validity flag plus the
// ordered list of human-readable rule violations.
type Result struct {
	Valid  bool     `json:"is_valid"`
	Errors []string `json:"errors"`
}

// Validate checks each present field against its rule. Rules are
// independent and all violations are collected in declaration order;
// nothing short-circuits. This is pre-submission advice only — the server
// remains the authority, and conflict detection is a separate concern.
func Validate(p Payload) Result {
	var errs []string

	if p.ClassID != nil && *p.ClassID <= 0 {
		errs = append(errs, "La classe est requise")
	}
	if p.TeacherID != nil && *p.TeacherID <= 0 {
		errs = append(errs, "L'enseignant est requis")
	}
	if p.SubjectID != nil && *p.SubjectID <= 0 {
		errs = append(errs, "La matière est requise")
	}
	if p.Day != nil && !IsWeekday(Weekday(*p.Day)) {
		errs = append(errs, "Le jour de la semaine est invalide")
	}
	// Zero-padded HH:MM strings sort lexicographically like times of day,
	// so plain string comparison is correct for same-day slots.
	if p.StartTime != nil && p.EndTime != nil && *p.StartTime >= *p.EndTime {
		errs = append(errs, "L'heure de début doit être antérieure à l'heure de fin")
	}
	if p.AcademicYear != nil && !academicYearPattern.MatchString(*p.AcademicYear) {
		errs = append(errs, "L'année scolaire doit être au format AAAA-AAAA")
	}
	if p.Semester != nil && *p.Semester != "S1" && *p.Semester != "S2" {
		errs = append(errs, "Le semestre doit être S1 ou S2")
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

// RequireAll reports the required fields missing from a full submission.
// Create paths call this before Validate so that an absent field is an
// error rather than silently skipped.
func RequireAll(p Payload) []string {
	var errs []string
	if p.ClassID == nil {
		errs = append(errs, "La classe est requise")
	}
	if p.TeacherID == nil {
		errs = append(errs, "L'enseignant est requis")
	}
	if p.SubjectID == nil {
		errs = append(errs, "La matière est requise")
	}
	if p.Day == nil {
		errs = append(errs, "Le jour de la semaine est requis")
	}
	if p.StartTime == nil || p.EndTime == nil {
		errs = append(errs, "Les heures de début et de fin sont requises")
	}
	if p.AcademicYear == nil {
		errs = append(errs, "L'année scolaire est requise")
	}
	if p.Semester == nil {
		errs = append(errs, "Le semestre est requis")
	}
	return errs
}
