// Package timetable holds the pure schedule-domain logic: the fixed
// weekday and time-slot catalogs, the weekly grid builder, the
// pre-submission field validator and the workload statistics aggregator.
// Every function here is a deterministic computation over its inputs;
// nothing touches the database, the clock or shared state.
package timetable

// Weekday is one of the six recognized teaching days.
type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
)

// WeekdayOption pairs a weekday value with its display label.
type WeekdayOption struct {
	Value Weekday `json:"value"`
	Label string  `json:"label"`
}

// Slot is one fixed daily teaching period.
type Slot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Label     string `json:"label"`
}

// weekdays is the ordered teaching-day catalog. Order matters: it drives
// grid iteration and the by-day statistics.
var weekdays = []WeekdayOption{
	{Value: Monday, Label: "Lundi"},
	{Value: Tuesday, Label: "Mardi"},
	{Value: Wednesday, Label: "Mercredi"},
	{Value: Thursday, Label: "Jeudi"},
	{Value: Friday, Label: "Vendredi"},
	{Value: Saturday, Label: "Samedi"},
}

// slots is the ordered daily period catalog. Fixed by policy, never
// derived from schedule data.
var slots = []Slot{
	{StartTime: "08:00", EndTime: "10:00", Label: "08h00 - 10h00"},
	{StartTime: "10:15", EndTime: "12:15", Label: "10h15 - 12h15"},
	{StartTime: "14:00", EndTime: "16:00", Label: "14h00 - 16h00"},
	{StartTime: "16:15", EndTime: "18:15", Label: "16h15 - 18h15"},
}

// Weekdays returns a copy of the weekday catalog.
func Weekdays() []WeekdayOption {
	out := make([]WeekdayOption, len(weekdays))
	copy(out, weekdays)
	return out
}

// Slots returns a copy of the time-slot catalog.
func Slots() []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots)
	return out
}

// IsWeekday reports whether d belongs to the catalog.
func IsWeekday(d Weekday) bool {
	for _, w := range weekdays {
		if w.Value == d {
			return true
		}
	}
	return false
}

// WeekdayLabel returns the display label for d, or its raw value when d
// is not in the catalog.
func WeekdayLabel(d Weekday) string {
	for _, w := range weekdays {
		if w.Value == d {
			return w.Label
		}
	}
	return string(d)
}
