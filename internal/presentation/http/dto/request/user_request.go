package request

// CreateUserRequest represents an admin create-user request
type CreateUserRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	IsAdmin  bool   `json:"isAdmin"`
}

// SetBlockedRequest represents a block/unblock request
type SetBlockedRequest struct {
	Blocked *bool `json:"blocked" binding:"required"`
}

// SetAdminRequest represents an admin grant/revoke request
type SetAdminRequest struct {
	IsAdmin *bool `json:"isAdmin" binding:"required"`
}

// ListUsersQuery represents user listing query parameters
type ListUsersQuery struct {
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
	Search     string `form:"search"`
	AdminsOnly bool   `form:"admins_only"`
}
