package dto

// CreateStudentRequest creates a student.
type CreateStudentRequest struct {
	FirstName string  `json:"first_name" binding:"required,min=2,max=100"`
	LastName  string  `json:"last_name"  binding:"required,min=2,max=100"`
	BirthDate *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	ClassID   *uint   `json:"class_id"   binding:"omitempty,min=1"`
}

// UpdateStudentRequest updates a student; only present fields change.
type UpdateStudentRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,min=2,max=100"`
	LastName  *string `json:"last_name"  binding:"omitempty,min=2,max=100"`
	BirthDate *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	ClassID   *uint   `json:"class_id"   binding:"omitempty,min=1"`
}

// StudentListRequest lists students.
type StudentListRequest struct {
	PaginationRequest
	ClassID *uint  `form:"class_id" binding:"omitempty,min=1"`
	Search  string `form:"search"`
}

// StudentResponse is the student view.
type StudentResponse struct {
	ID        uint        `json:"id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	BirthDate string      `json:"birth_date,omitempty"`
	Class     *ClassBrief `json:"class,omitempty"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
}
