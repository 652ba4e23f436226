package model

// User is an administrator account — maps to users.
type User struct {
	ID           uint   `gorm:"primaryKey"                          json:"id"`
	Name         string `gorm:"type:varchar(100);not null"          json:"name"`
	Email        string `gorm:"type:varchar(255);not null;unique"   json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"          json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'admin'" json:"role"` // admin | super_admin
	SoftDeleteModel
}

// TableName sets the table name.
func (User) TableName() string { return "users" }
