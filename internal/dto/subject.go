package dto

// CreateSubjectRequest creates a subject.
type CreateSubjectRequest struct {
	Name        string `json:"name"        binding:"required,min=2,max=100"`
	Code        string `json:"code"        binding:"required,min=2,max=20"`
	Coefficient int    `json:"coefficient" binding:"omitempty,min=1,max=10"`
}

// UpdateSubjectRequest updates a subject; only present fields change.
type UpdateSubjectRequest struct {
	Name        *string `json:"name"        binding:"omitempty,min=2,max=100"`
	Code        *string `json:"code"        binding:"omitempty,min=2,max=20"`
	Coefficient *int    `json:"coefficient" binding:"omitempty,min=1,max=10"`
}

// SubjectListRequest lists subjects.
type SubjectListRequest struct {
	PaginationRequest
	Search string `form:"search"`
}

// SubjectResponse is the subject view.
type SubjectResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Coefficient int    `json:"coefficient"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
