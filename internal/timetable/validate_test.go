package timetable

import (
	"strings"
	"testing"
)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func TestValidate_EmptyPayloadIsValid(t *testing.T) {
	res := Validate(Payload{})
	if !res.Valid {
		t.Errorf("absent fields must not be checked: %v", res.Errors)
	}
}

func TestValidate_ZeroClassIDIsRejected(t *testing.T) {
	res := Validate(Payload{ClassID: intPtr(0)})
	if res.Valid {
		t.Fatal("class_id=0 should be invalid")
	}
	if len(res.Errors) != 1 || !strings.Contains(res.Errors[0], "classe") {
		t.Errorf("expected a class-related error, got %v", res.Errors)
	}
}

func TestValidate_PositiveClassIDPasses(t *testing.T) {
	res := Validate(Payload{ClassID: intPtr(5)})
	if !res.Valid {
		t.Errorf("class_id=5 should pass, got %v", res.Errors)
	}
}

func TestValidate_TimeOrdering(t *testing.T) {
	res := Validate(Payload{StartTime: strPtr("10:00"), EndTime: strPtr("09:00")})
	if res.Valid {
		t.Error("start after end should be invalid")
	}

	res = Validate(Payload{StartTime: strPtr("09:00"), EndTime: strPtr("10:00")})
	if !res.Valid {
		t.Errorf("start before end should pass, got %v", res.Errors)
	}

	res = Validate(Payload{StartTime: strPtr("09:00"), EndTime: strPtr("09:00")})
	if res.Valid {
		t.Error("equal start and end should be invalid")
	}
}

func TestValidate_TimeOrderingNeedsBothFields(t *testing.T) {
	res := Validate(Payload{StartTime: strPtr("10:00")})
	if !res.Valid {
		t.Errorf("lone start_time must not trigger the ordering rule: %v", res.Errors)
	}
}

func TestValidate_DayOfWeek(t *testing.T) {
	res := Validate(Payload{Day: strPtr("SUNDAY")})
	if res.Valid {
		t.Error("SUNDAY is not a teaching day")
	}

	res = Validate(Payload{Day: strPtr("SATURDAY")})
	if !res.Valid {
		t.Errorf("SATURDAY should pass, got %v", res.Errors)
	}
}

func TestValidate_AcademicYearPattern(t *testing.T) {
	for _, bad := range []string{"2025", "2025-26", "25-2026", "2025/2026"} {
		res := Validate(Payload{AcademicYear: strPtr(bad)})
		if res.Valid {
			t.Errorf("academic_year %q should be invalid", bad)
		}
	}

	res := Validate(Payload{AcademicYear: strPtr("2025-2026")})
	if !res.Valid {
		t.Errorf("2025-2026 should pass, got %v", res.Errors)
	}
}

func TestValidate_Semester(t *testing.T) {
	res := Validate(Payload{Semester: strPtr("S3")})
	if res.Valid {
		t.Error("S3 is not a valid semester")
	}

	for _, good := range []string{"S1", "S2"} {
		res := Validate(Payload{Semester: strPtr(good)})
		if !res.Valid {
			t.Errorf("%s should pass, got %v", good, res.Errors)
		}
	}
}

func TestValidate_CollectsAllErrorsInRuleOrder(t *testing.T) {
	res := Validate(Payload{
		ClassID:      intPtr(0),
		TeacherID:    intPtr(-1),
		Day:          strPtr("FUNDAY"),
		StartTime:    strPtr("12:00"),
		EndTime:      strPtr("08:00"),
		AcademicYear: strPtr("nope"),
		Semester:     strPtr("S9"),
	})

	if res.Valid {
		t.Fatal("payload should be invalid")
	}
	if len(res.Errors) != 6 {
		t.Fatalf("expected 6 collected errors, got %d: %v", len(res.Errors), res.Errors)
	}

	// Declaration order: class, teacher, day, time, year, semester.
	wantFragments := []string{"classe", "enseignant", "jour", "début", "scolaire", "semestre"}
	for i, frag := range wantFragments {
		if !strings.Contains(strings.ToLower(res.Errors[i]), frag) {
			t.Errorf("error %d: expected fragment %q, got %q", i, frag, res.Errors[i])
		}
	}
}

func TestRequireAll_ReportsMissingFields(t *testing.T) {
	errs := RequireAll(Payload{ClassID: intPtr(5)})
	if len(errs) != 6 {
		t.Errorf("expected 6 missing-field errors, got %d: %v", len(errs), errs)
	}

	full := Payload{
		ClassID:      intPtr(1),
		TeacherID:    intPtr(2),
		SubjectID:    intPtr(3),
		Day:          strPtr("MONDAY"),
		StartTime:    strPtr("08:00"),
		EndTime:      strPtr("10:00"),
		AcademicYear: strPtr("2025-2026"),
		Semester:     strPtr("S1"),
	}
	if errs := RequireAll(full); len(errs) != 0 {
		t.Errorf("full payload should have no missing fields: %v", errs)
	}
}
