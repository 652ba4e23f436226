package dto

// ── Admin account DTOs ──

// CreateUserRequest creates an admin account.
type CreateUserRequest struct {
	Name     string `json:"name"     binding:"required,min=2,max=100"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"     binding:"omitempty,oneof=admin super_admin"`
}

// UpdateUserRequest updates an admin account; only present fields change.
type UpdateUserRequest struct {
	Name  *string `json:"name"  binding:"omitempty,min=2,max=100"`
	Email *string `json:"email" binding:"omitempty,email"`
	Role  *string `json:"role"  binding:"omitempty,oneof=admin super_admin"`
}

// UserListRequest lists admin accounts.
type UserListRequest struct {
	PaginationRequest
	Search string `form:"search"`
}

// UserResponse is the sanitized account view.
type UserResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}
