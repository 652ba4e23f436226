package timetable

// Workload is the weekly hour total attributed to one teacher or class.
type Workload struct {
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
}

// Stats aggregates a flat schedule list: total record count, per-weekday
// counts and per-teacher/per-class weekly hours.
type Stats struct {
	Total           int             `json:"total"`
	ByDay           map[Weekday]int `json:"by_day"`
	TeacherWorkload []Workload      `json:"teacher_workload"`
	ClassCoverage   []Workload      `json:"class_coverage"`
}

// ComputeStats derives schedule statistics from records.
//
// ByDay contains every catalog weekday, zero when unused. Workload lists
// hold one entry per distinct id in first-appearance order, named after
// the first record seen for that id; callers wanting a different order
// sort explicitly.
func ComputeStats(records []Record) Stats {
	byDay := make(map[Weekday]int, len(weekdays))
	for _, day := range weekdays {
		byDay[day.Value] = 0
	}

	teacherIdx := make(map[int]int)
	classIdx := make(map[int]int)
	var teacherLoad, classLoad []Workload

	for _, rec := range records {
		if _, ok := byDay[rec.Day]; ok {
			byDay[rec.Day]++
		}

		hours := Hours(rec.StartTime, rec.EndTime)

		if i, ok := teacherIdx[rec.TeacherID]; ok {
			teacherLoad[i].Hours += hours
		} else {
			teacherIdx[rec.TeacherID] = len(teacherLoad)
			teacherLoad = append(teacherLoad, Workload{Name: rec.TeacherName, Hours: hours})
		}

		if i, ok := classIdx[rec.ClassID]; ok {
			classLoad[i].Hours += hours
		} else {
			classIdx[rec.ClassID] = len(classLoad)
			classLoad = append(classLoad, Workload{Name: rec.ClassName, Hours: hours})
		}
	}

	return Stats{
		Total:           len(records),
		ByDay:           byDay,
		TeacherWorkload: teacherLoad,
		ClassCoverage:   classLoad,
	}
}
