package service

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/trendora/trendora-api/internal/domain/entity"
	"github.com/trendora/trendora-api/internal/domain/enum"
	"github.com/trendora/trendora-api/internal/domain/repository"
	"github.com/trendora/trendora-api/pkg/apperror"
	"github.com/trendora/trendora-api/pkg/pagination"
	"gorm.io/datatypes"
)

var (
	phonePattern   = regexp.MustCompile(`^\d{10}$`)
	pincodePattern = regexp.MustCompile(`^\d{6}$`)
)

// OrderService handles checkout and order management
type OrderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	userRepo  repository.UserRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	userRepo repository.UserRepository,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		userRepo:  userRepo,
	}
}

// CheckoutInput represents the checkout form
type CheckoutInput struct {
	UserID        uuid.UUID
	Name          string
	Phone         string
	Address       string
	State         string
	Pincode       string
	Lat           *float64
	Lng           *float64
	PaymentMethod string
}

func (i *CheckoutInput) validate() []apperror.FieldError {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(i.Name) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if !phonePattern.MatchString(i.Phone) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "phone", Message: "Phone must be a 10-digit number"})
	}
	if strings.TrimSpace(i.Address) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "address", Message: "Address is required"})
	}
	if strings.TrimSpace(i.State) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "state", Message: "State is required"})
	}
	if !pincodePattern.MatchString(i.Pincode) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "pincode", Message: "Pincode must be a 6-digit number"})
	}
	if !enum.PaymentMethod(i.PaymentMethod).Valid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "paymentMethod", Message: "Payment method must be Online or COD"})
	}
	return fieldErrors
}

// orderLine is the snapshot shape written into the order's Items column.
// Field names match what the storefront has always stored.
type orderLine struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image,omitempty"`
}

// Checkout turns the user's cart into an order and clears the cart. The
// cart lines are snapshotted into the order so later catalog edits do
// not rewrite order history.
func (s *OrderService) Checkout(ctx context.Context, input *CheckoutInput) (*entity.Order, error) {
	if fieldErrors := input.validate(); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}

	cartItems, err := s.cartRepo.ListByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, apperror.NewBadRequestError("Cart is empty")
	}

	lines := make([]orderLine, 0, len(cartItems))
	var amount float64
	for i := range cartItems {
		lines = append(lines, orderLine{
			ID:       cartItems[i].ProductID.String(),
			Name:     cartItems[i].Name,
			Price:    cartItems[i].Price,
			Quantity: cartItems[i].Quantity,
			Image:    cartItems[i].Image,
		})
		amount += cartItems[i].LineTotal()
	}

	itemsJSON, err := json.Marshal(lines)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		UserID:          user.ID,
		UserEmail:       user.Email,
		CustomerName:    strings.TrimSpace(input.Name),
		Phone:           input.Phone,
		ShippingAddress: strings.TrimSpace(input.Address),
		State:           strings.TrimSpace(input.State),
		Pincode:         input.Pincode,
		Lat:             input.Lat,
		Lng:             input.Lng,
		PaymentMethod:   enum.PaymentMethod(input.PaymentMethod),
		Status:          enum.OrderStatusPending,
		Amount:          amount,
		Items:           datatypes.JSON(itemsJSON),
		OrderDate:       time.Now().UTC(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := s.cartRepo.Clear(ctx, input.UserID); err != nil {
		// The order exists; a stale cart is recoverable by the user.
		return order, nil
	}
	return order, nil
}

// GetOrder returns one order. Non-admin callers only see their own.
func (s *OrderService) GetOrder(ctx context.Context, id, callerID uuid.UUID, callerIsAdmin bool) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if !callerIsAdmin && order.UserID != callerID {
		return nil, apperror.ErrForbidden
	}
	return order, nil
}

// ListMyOrders returns the caller's orders, newest first
func (s *OrderService) ListMyOrders(ctx context.Context, userID uuid.UUID, params *pagination.Params) (*pagination.Result[entity.Order], error) {
	if params == nil {
		params = pagination.Default()
	}
	params.Validate()

	orders, total, err := s.orderRepo.List(ctx, &repository.OrderFilterParams{
		Pagination: params,
		UserID:     &userID,
	})
	if err != nil {
		return nil, err
	}

	return pagination.NewResult(orders, pagination.NewPage(params.Page, params.PerPage, total)), nil
}

// ListOrdersInput represents back-office order listing filters
type ListOrdersInput struct {
	Pagination *pagination.Params
	Status     string
	StartDate  *time.Time
	EndDate    *time.Time
	Search     string
}

// ListOrders returns a page of all orders for the back office
func (s *OrderService) ListOrders(ctx context.Context, input *ListOrdersInput) (*pagination.Result[entity.Order], error) {
	params := input.Pagination
	if params == nil {
		params = pagination.Default()
	}
	params.Validate()

	filter := &repository.OrderFilterParams{
		Pagination: params,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Search:     input.Search,
	}
	if input.Status != "" {
		status := enum.OrderStatus(input.Status)
		if !status.Valid() {
			return nil, apperror.NewBadRequestError("Unknown order status: " + input.Status)
		}
		filter.Status = &status
	}

	orders, total, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return pagination.NewResult(orders, pagination.NewPage(params.Page, params.PerPage, total)), nil
}

// UpdateStatus moves an order to a new fulfillment state. Completed and
// Cancelled orders never change again.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, statusStr string) (*entity.Order, error) {
	status := enum.OrderStatus(statusStr)
	if !status.Valid() {
		return nil, apperror.NewBadRequestError("Unknown order status: " + statusStr)
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, apperror.NewConflictError(
			"Cannot change status from " + order.Status.String() + " to " + status.String())
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}
