package model

// Subject is a taught discipline — maps to subjects.
type Subject struct {
	ID          uint   `gorm:"primaryKey"                        json:"id"`
	Name        string `gorm:"type:varchar(100);not null"        json:"name"`
	Code        string `gorm:"type:varchar(20);not null;unique"  json:"code"`
	Coefficient int    `gorm:"not null;default:1"                json:"coefficient"`
	SoftDeleteModel
}

// TableName sets the table name.
func (Subject) TableName() string { return "subjects" }
