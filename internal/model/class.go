package model

// Class is a student group — maps to classes.
type Class struct {
	ID    uint   `gorm:"primaryKey"                        json:"id"`
	Name  string `gorm:"type:varchar(50);not null;unique"  json:"name"`
	Level string `gorm:"type:varchar(50);not null"         json:"level"`
	SoftDeleteModel

	Students []Student `gorm:"foreignKey:ClassID" json:"students,omitempty"`
}

// TableName sets the table name.
func (Class) TableName() string { return "classes" }
