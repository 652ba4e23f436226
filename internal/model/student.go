package model

import "time"

// Student maps to students.
type Student struct {
	ID        uint       `gorm:"primaryKey"                 json:"id"`
	FirstName string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string     `gorm:"type:varchar(100);not null" json:"last_name"`
	BirthDate *time.Time `gorm:"type:date"                  json:"birth_date,omitempty"`
	ClassID   *uint      `json:"class_id,omitempty"`
	SoftDeleteModel

	Class *Class `gorm:"foreignKey:ClassID" json:"class,omitempty"`
}

// TableName sets the table name.
func (Student) TableName() string { return "students" }
