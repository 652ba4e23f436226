package model

// Teacher maps to teachers.
type Teacher struct {
	ID        uint   `gorm:"primaryKey"                        json:"id"`
	FirstName string `gorm:"type:varchar(100);not null"        json:"first_name"`
	LastName  string `gorm:"type:varchar(100);not null"        json:"last_name"`
	Email     string `gorm:"type:varchar(255);not null;unique" json:"email"`
	Phone     string `gorm:"type:varchar(30)"                  json:"phone,omitempty"`
	SoftDeleteModel
}

// TableName sets the table name.
func (Teacher) TableName() string { return "teachers" }

// FullName returns the display name used in schedule projections.
func (t *Teacher) FullName() string {
	return t.FirstName + " " + t.LastName
}
