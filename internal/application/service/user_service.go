package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/trendora/trendora-api/internal/domain/entity"
	"github.com/trendora/trendora-api/internal/domain/repository"
	"github.com/trendora/trendora-api/pkg/apperror"
	"github.com/trendora/trendora-api/pkg/auth"
	"github.com/trendora/trendora-api/pkg/pagination"
)

// UserService handles back-office user administration
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsersInput represents user listing filters
type ListUsersInput struct {
	Pagination *pagination.Params
	Search     string
	AdminsOnly bool
}

// ListUsers returns a page of accounts
func (s *UserService) ListUsers(ctx context.Context, input *ListUsersInput) (*pagination.Result[entity.User], error) {
	params := input.Pagination
	if params == nil {
		params = pagination.Default()
	}
	params.Validate()

	users, total, err := s.userRepo.List(ctx, &repository.UserFilterParams{
		Pagination: params,
		Search:     input.Search,
		AdminsOnly: input.AdminsOnly,
	})
	if err != nil {
		return nil, err
	}

	return pagination.NewResult(users, pagination.NewPage(params.Page, params.PerPage, total)), nil
}

// GetUser returns a single account by ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// CreateUserInput represents the admin create-user input
type CreateUserInput struct {
	FullName string
	Email    string
	Password string
	Phone    string
	IsAdmin  bool
}

// CreateUser creates an account from the back office. An empty password
// falls back to a default the user is expected to change.
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	if strings.TrimSpace(input.FullName) == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "fullName", Message: "Full name is required"},
		})
	}
	if !emailPattern.MatchString(input.Email) {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "email", Message: "A valid email is required"},
		})
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	password := input.Password
	if password == "" {
		password = "trendora123"
	}
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FullName: strings.TrimSpace(input.FullName),
		Email:    email,
		Password: hashedPassword,
		Phone:    strings.TrimSpace(input.Phone),
		IsAdmin:  input.IsAdmin,
		Provider: "local",
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetBlocked blocks or unblocks an account. Admin accounts cannot be
// blocked.
func (s *UserService) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) (*entity.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.IsAdmin && blocked {
		return nil, apperror.NewBadRequestError("Admin accounts cannot be blocked")
	}

	user.Blocked = blocked
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetAdmin grants or revokes back-office access for an account
func (s *UserService) SetAdmin(ctx context.Context, id uuid.UUID, isAdmin bool) (*entity.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.IsAdmin = isAdmin
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an account. Admin accounts cannot be deleted.
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if user.IsAdmin {
		return apperror.NewBadRequestError("Admin accounts cannot be deleted")
	}
	return s.userRepo.Delete(ctx, id)
}
