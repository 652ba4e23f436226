package timetable

// Record is the read-only schedule projection the pure core operates on.
// It is built from repository rows and never mutated here; a change means
// replacing the row upstream and re-deriving grid and statistics.
type Record struct {
	ID           int     `json:"id"`
	ClassID      int     `json:"class_id"`
	ClassName    string  `json:"class_name"`
	TeacherID    int     `json:"teacher_id"`
	TeacherName  string  `json:"teacher_name"`
	SubjectID    int     `json:"subject_id"`
	SubjectName  string  `json:"subject_name"`
	Day          Weekday `json:"day_of_week"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	AcademicYear string  `json:"academic_year"`
	Semester     string  `json:"semester"`
}

// Grid maps weekday → slot start time → assigned record. A nil cell is an
// empty period. Cells never hold more than one record.
type Grid map[Weekday]map[string]*Record

// BuildWeeklyGrid projects records onto the day × slot matrix.
//
// Every catalog weekday and slot start is present in the result, empty
// cells included. A record lands in a cell only when its day is a catalog
// weekday and its start time equals a catalog slot start; anything else is
// dropped silently — the grid is a display aid, not an integrity check.
// When two records target the same cell the later one in input order wins.
func BuildWeeklyGrid(records []Record) Grid {
	grid := make(Grid, len(weekdays))
	for _, day := range weekdays {
		cells := make(map[string]*Record, len(slots))
		for _, slot := range slots {
			cells[slot.StartTime] = nil
		}
		grid[day.Value] = cells
	}

	for i := range records {
		rec := records[i]
		cells, ok := grid[rec.Day]
		if !ok {
			continue
		}
		if _, ok := cells[rec.StartTime]; !ok {
			continue
		}
		cells[rec.StartTime] = &rec
	}

	return grid
}
