package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"schoolgrid/backend/internal/dto"
	"schoolgrid/backend/internal/repository"
	"schoolgrid/backend/internal/timetable"
)

// ExportService renders the filtered schedule list as downloadable
// documents. Both formats are derived from the same weekly grid the API
// serves, so exports always match what the screen shows.
type ExportService interface {
	TimetableXLSX(ctx context.Context, req *dto.ScheduleListRequest) ([]byte, error)
	TimetableICS(ctx context.Context, req *dto.ScheduleListRequest) (string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

const xlsxSheet = "Emploi du temps"

// TimetableXLSX renders the weekly grid as a spreadsheet, slots as rows
// and weekdays as columns.
func (s *exportService) TimetableXLSX(ctx context.Context, req *dto.ScheduleListRequest) ([]byte, error) {
	schedules, err := s.repo.Schedule.List(ctx, listFilter(req))
	if err != nil {
		s.logger.Error("listing schedules failed", zap.Error(err))
		return nil, err
	}

	grid := timetable.BuildWeeklyGrid(toRecords(schedules))
	days := timetable.Weekdays()
	slots := timetable.Slots()

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(xlsxSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	cellStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return nil, err
	}

	f.SetCellValue(xlsxSheet, "A1", "Horaire")
	f.SetCellStyle(xlsxSheet, "A1", "A1", headerStyle)
	f.SetColWidth(xlsxSheet, "A", "A", 16)

	for i, day := range days {
		col, err := excelize.ColumnNumberToName(i + 2)
		if err != nil {
			return nil, err
		}
		cell := col + "1"
		f.SetCellValue(xlsxSheet, cell, day.Label)
		f.SetCellStyle(xlsxSheet, cell, cell, headerStyle)
		f.SetColWidth(xlsxSheet, col, col, 28)
	}

	for r, slot := range slots {
		row := strconv.Itoa(r + 2)
		f.SetCellValue(xlsxSheet, "A"+row, slot.Label)
		f.SetCellStyle(xlsxSheet, "A"+row, "A"+row, headerStyle)
		f.SetRowHeight(xlsxSheet, r+2, 48)

		for c, day := range days {
			col, err := excelize.ColumnNumberToName(c + 2)
			if err != nil {
				return nil, err
			}
			cell := col + row

			rec := grid[day.Value][slot.StartTime]
			if rec != nil {
				f.SetCellValue(xlsxSheet, cell, xlsxCellText(rec))
			}
			f.SetCellStyle(xlsxSheet, cell, cell, cellStyle)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("writing workbook failed", zap.Error(err))
		return nil, err
	}

	return buf.Bytes(), nil
}

func xlsxCellText(rec *timetable.Record) string {
	lines := make([]string, 0, 3)
	if rec.SubjectName != "" {
		lines = append(lines, rec.SubjectName)
	}
	if rec.TeacherName != "" {
		lines = append(lines, rec.TeacherName)
	}
	if rec.ClassName != "" {
		lines = append(lines, rec.ClassName)
	}
	if len(lines) == 0 {
		lines = append(lines, fmt.Sprintf("Cours #%d", rec.ID))
	}
	return strings.Join(lines, "\n")
}

// TimetableICS renders the filtered schedules as a weekly recurring
// iCalendar feed anchored on the semester start.
func (s *exportService) TimetableICS(ctx context.Context, req *dto.ScheduleListRequest) (string, error) {
	schedules, err := s.repo.Schedule.List(ctx, listFilter(req))
	if err != nil {
		s.logger.Error("listing schedules failed", zap.Error(err))
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//schoolgrid//timetable//FR")

	now := time.Now().UTC()

	for i := range schedules {
		sch := &schedules[i]

		day, ok := icalWeekday(sch.DayOfWeek)
		if !ok {
			continue
		}
		start, okStart := slotTime(semesterStart(sch.AcademicYear, sch.Semester), day, sch.StartTime)
		end, okEnd := slotTime(semesterStart(sch.AcademicYear, sch.Semester), day, sch.EndTime)
		if !okStart || !okEnd {
			continue
		}

		rec := toRecord(sch)

		event := cal.AddEvent(uuid.NewString() + "@schoolgrid")
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(icalSummary(&rec))
		if sch.Room != "" {
			event.SetLocation(sch.Room)
		}
		if rec.ClassName != "" {
			event.SetDescription(fmt.Sprintf("Classe %s, %s %s", rec.ClassName, sch.AcademicYear, sch.Semester))
		}
		event.AddRrule("FREQ=WEEKLY;BYDAY=" + icalByDay(sch.DayOfWeek) + ";COUNT=16")
	}

	return cal.Serialize(), nil
}

func icalSummary(rec *timetable.Record) string {
	switch {
	case rec.SubjectName != "" && rec.TeacherName != "":
		return rec.SubjectName + " - " + rec.TeacherName
	case rec.SubjectName != "":
		return rec.SubjectName
	default:
		return fmt.Sprintf("Cours #%d", rec.ID)
	}
}

func icalWeekday(day string) (time.Weekday, bool) {
	switch timetable.Weekday(day) {
	case timetable.Monday:
		return time.Monday, true
	case timetable.Tuesday:
		return time.Tuesday, true
	case timetable.Wednesday:
		return time.Wednesday, true
	case timetable.Thursday:
		return time.Thursday, true
	case timetable.Friday:
		return time.Friday, true
	case timetable.Saturday:
		return time.Saturday, true
	}
	return 0, false
}

func icalByDay(day string) string {
	switch timetable.Weekday(day) {
	case timetable.Monday:
		return "MO"
	case timetable.Tuesday:
		return "TU"
	case timetable.Wednesday:
		return "WE"
	case timetable.Thursday:
		return "TH"
	case timetable.Friday:
		return "FR"
	default:
		return "SA"
	}
}

// semesterStart anchors recurrences: September 1st of the first year for
// S1, February 1st of the second year for S2. Falls back to today when
// the year string is malformed.
func semesterStart(academicYear, semester string) time.Time {
	parts := strings.SplitN(academicYear, "-", 2)
	if len(parts) != 2 {
		return time.Now()
	}
	first, err1 := strconv.Atoi(parts[0])
	second, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return time.Now()
	}

	if semester == "S2" {
		return time.Date(second, time.February, 1, 0, 0, 0, 0, time.Local)
	}
	return time.Date(first, time.September, 1, 0, 0, 0, 0, time.Local)
}

// slotTime finds the first occurrence of the weekday on or after the
// anchor and applies the "HH:MM" clock time.
func slotTime(anchor time.Time, day time.Weekday, clock string) (time.Time, bool) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return time.Time{}, false
	}
	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return time.Time{}, false
	}

	date := anchor
	for date.Weekday() != day {
		date = date.AddDate(0, 0, 1)
	}

	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.Local), true
}
