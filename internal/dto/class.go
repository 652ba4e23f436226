package dto

// CreateClassRequest creates a class.
type CreateClassRequest struct {
	Name  string `json:"name"  binding:"required,min=2,max=50"`
	Level string `json:"level" binding:"required,min=2,max=50"`
}

// UpdateClassRequest updates a class; only present fields change.
type UpdateClassRequest struct {
	Name  *string `json:"name"  binding:"omitempty,min=2,max=50"`
	Level *string `json:"level" binding:"omitempty,min=2,max=50"`
}

// ClassListRequest lists classes.
type ClassListRequest struct {
	PaginationRequest
	Level string `form:"level"`
}

// ClassResponse is the class view.
type ClassResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Level        string `json:"level"`
	StudentCount int    `json:"student_count"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}
