package timetable

import (
	"reflect"
	"testing"
)

func TestHours(t *testing.T) {
	cases := []struct {
		start, end string
		want       float64
	}{
		{"10:15", "12:15", 2.0},
		{"08:00", "10:00", 2.0},
		{"08:00", "08:30", 0.5},
		{"14:00", "16:45", 2.75},
	}
	for _, c := range cases {
		if got := Hours(c.start, c.end); got != c.want {
			t.Errorf("Hours(%q, %q) = %v, want %v", c.start, c.end, got, c.want)
		}
	}
}

func TestHours_UnparsableInputYieldsZero(t *testing.T) {
	for _, c := range [][2]string{{"abc", "10:00"}, {"08:00", ""}, {"25:00", "26:00"}, {"08:61", "09:00"}} {
		if got := Hours(c[0], c[1]); got != 0 {
			t.Errorf("Hours(%q, %q) = %v, want 0", c[0], c[1], got)
		}
	}
}

func TestComputeStats_EmptyInput(t *testing.T) {
	stats := ComputeStats(nil)

	if stats.Total != 0 {
		t.Errorf("expected total 0, got %d", stats.Total)
	}
	if len(stats.ByDay) != 6 {
		t.Fatalf("every catalog weekday must be present, got %d", len(stats.ByDay))
	}
	for day, n := range stats.ByDay {
		if n != 0 {
			t.Errorf("day %s: expected 0, got %d", day, n)
		}
	}
	if len(stats.TeacherWorkload) != 0 || len(stats.ClassCoverage) != 0 {
		t.Error("expected empty workload lists")
	}
}

func TestComputeStats_AggregatesTeacherHours(t *testing.T) {
	records := []Record{
		{ID: 1, TeacherID: 7, TeacherName: "Dupont", ClassID: 1, ClassName: "6ème A",
			Day: Monday, StartTime: "08:00", EndTime: "10:00"},
		{ID: 2, TeacherID: 7, TeacherName: "Dupont", ClassID: 2, ClassName: "5ème B",
			Day: Tuesday, StartTime: "10:15", EndTime: "11:15"},
	}

	stats := ComputeStats(records)

	if stats.Total != 2 {
		t.Errorf("expected total 2, got %d", stats.Total)
	}
	if len(stats.TeacherWorkload) != 1 {
		t.Fatalf("expected one teacher entry, got %d", len(stats.TeacherWorkload))
	}
	entry := stats.TeacherWorkload[0]
	if entry.Name != "Dupont" || entry.Hours != 3.0 {
		t.Errorf("expected {Dupont 3.0}, got {%s %v}", entry.Name, entry.Hours)
	}
	if stats.ByDay[Monday] != 1 || stats.ByDay[Tuesday] != 1 {
		t.Errorf("unexpected by-day counts: %v", stats.ByDay)
	}
}

func TestComputeStats_FirstAppearanceOrderAndNaming(t *testing.T) {
	records := []Record{
		{ID: 1, TeacherID: 9, TeacherName: "Martin", ClassID: 3, ClassName: "4ème C",
			Day: Monday, StartTime: "08:00", EndTime: "10:00"},
		{ID: 2, TeacherID: 7, TeacherName: "Dupont", ClassID: 1, ClassName: "6ème A",
			Day: Monday, StartTime: "10:15", EndTime: "12:15"},
		// Same teacher id, different display name: the first one sticks.
		{ID: 3, TeacherID: 9, TeacherName: "Martin J.", ClassID: 3, ClassName: "4ème C",
			Day: Friday, StartTime: "14:00", EndTime: "16:00"},
	}

	stats := ComputeStats(records)

	if len(stats.TeacherWorkload) != 2 {
		t.Fatalf("expected two teacher entries, got %d", len(stats.TeacherWorkload))
	}
	if stats.TeacherWorkload[0].Name != "Martin" {
		t.Errorf("first-appearance order broken: got %s first", stats.TeacherWorkload[0].Name)
	}
	if stats.TeacherWorkload[1].Name != "Dupont" {
		t.Errorf("expected Dupont second, got %s", stats.TeacherWorkload[1].Name)
	}
	if stats.TeacherWorkload[0].Hours != 4.0 {
		t.Errorf("expected Martin at 4.0h, got %v", stats.TeacherWorkload[0].Hours)
	}
}

func TestComputeStats_Idempotent(t *testing.T) {
	records := []Record{
		{ID: 1, TeacherID: 7, TeacherName: "Dupont", ClassID: 1, ClassName: "6ème A",
			Day: Monday, StartTime: "08:00", EndTime: "10:00"},
		{ID: 2, TeacherID: 8, TeacherName: "Durand", ClassID: 2, ClassName: "5ème B",
			Day: Wednesday, StartTime: "14:00", EndTime: "16:00"},
	}

	first := ComputeStats(records)
	second := ComputeStats(records)

	if !reflect.DeepEqual(first, second) {
		t.Error("two aggregations over the same input should be value-equal")
	}
}
