package model

// Schedule is one weekly teaching slot assignment — maps to schedules.
// Times are zero-padded "HH:MM" strings; same-day slots only.
type Schedule struct {
	ID           uint   `gorm:"primaryKey"                 json:"id"`
	ClassID      uint   `gorm:"not null"                   json:"class_id"`
	TeacherID    uint   `gorm:"not null"                   json:"teacher_id"`
	SubjectID    uint   `gorm:"not null"                   json:"subject_id"`
	DayOfWeek    string `gorm:"type:varchar(10);not null"  json:"day_of_week"` // MONDAY..SATURDAY
	StartTime    string `gorm:"type:varchar(5);not null"   json:"start_time"`
	EndTime      string `gorm:"type:varchar(5);not null"   json:"end_time"`
	AcademicYear string `gorm:"type:varchar(9);not null"   json:"academic_year"` // "2025-2026"
	Semester     string `gorm:"type:varchar(2);not null"   json:"semester"`      // S1 | S2
	Room         string `gorm:"type:varchar(50)"           json:"room,omitempty"`
	SoftDeleteModel

	Class   *Class   `gorm:"foreignKey:ClassID"   json:"class,omitempty"`
	Teacher *Teacher `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
	Subject *Subject `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
}

// TableName sets the table name.
func (Schedule) TableName() string { return "schedules" }
