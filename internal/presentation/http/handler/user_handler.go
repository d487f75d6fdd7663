package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/trendora/trendora-api/internal/application/service"
	"github.com/trendora/trendora-api/internal/presentation/http/dto/request"
	"github.com/trendora/trendora-api/internal/presentation/http/dto/response"
	"github.com/trendora/trendora-api/pkg/pagination"
)

// UserHandler handles back-office user administration requests
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles listing accounts
func (h *UserHandler) List(c *gin.Context) {
	var query request.ListUsersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.userService.ListUsers(c.Request.Context(), &service.ListUsersInput{
		Pagination: &pagination.Params{Page: query.Page, PerPage: query.PerPage},
		Search:     query.Search,
		AdminsOnly: query.AdminsOnly,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Users retrieved successfully", result)
}

// Get handles fetching a single account
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User retrieved successfully", gin.H{
		"user": user,
	})
}

// Create handles creating an account from the back office
func (h *UserHandler) Create(c *gin.Context) {
	var req request.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), &service.CreateUserInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "User created successfully", gin.H{
		"user": user,
	})
}

// SetBlocked handles blocking or unblocking an account
func (h *UserHandler) SetBlocked(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req request.SetBlockedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.SetBlocked(c.Request.Context(), id, *req.Blocked)
	if err != nil {
		response.Error(c, err)
		return
	}

	message := "User unblocked successfully"
	if *req.Blocked {
		message = "User blocked successfully"
	}
	response.OK(c, message, gin.H{
		"user": user,
	})
}

// SetAdmin handles granting or revoking back-office access
func (h *UserHandler) SetAdmin(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req request.SetAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.SetAdmin(c.Request.Context(), id, *req.IsAdmin)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User role updated successfully", gin.H{
		"user": user,
	})
}

// Delete handles removing an account
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User deleted successfully", nil)
}
