package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/trendora/trendora-api/internal/domain/entity"
	"github.com/trendora/trendora-api/internal/domain/enum"
	"github.com/trendora/trendora-api/internal/domain/repository"
	"github.com/trendora/trendora-api/pkg/apperror"
	"github.com/trendora/trendora-api/pkg/pagination"
)

// ProductService handles catalog operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ListProductsInput represents catalog listing filters
type ListProductsInput struct {
	Pagination *pagination.Params
	Gender     string
	Search     string
	SortBy     string
	SortOrder  string
}

// ListProducts returns a filtered, sorted page of the catalog
func (s *ProductService) ListProducts(ctx context.Context, input *ListProductsInput) (*pagination.Result[entity.Product], error) {
	params := input.Pagination
	if params == nil {
		params = pagination.Default()
	}
	params.Validate()

	filter := &repository.ProductFilterParams{
		Pagination: params,
		Search:     input.Search,
		SortBy:     input.SortBy,
		SortOrder:  input.SortOrder,
	}
	if input.Gender != "" {
		gender := enum.Gender(input.Gender)
		if !gender.Valid() {
			return nil, apperror.NewBadRequestError("Unknown catalog section: " + input.Gender)
		}
		filter.Gender = &gender
	}

	products, total, err := s.productRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return pagination.NewResult(products, pagination.NewPage(params.Page, params.PerPage, total)), nil
}

// GetProduct returns a single catalog entry
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ProductInput represents the create/update product input
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Gender      string
	Image       string
	Stock       int
}

func (i *ProductInput) validate() []apperror.FieldError {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(i.Name) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if i.Price <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "Price must be greater than zero"})
	}
	if !enum.Gender(i.Gender).Valid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "gender", Message: "Gender must be Men, Women or Unisex"})
	}
	if i.Stock < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "stock", Message: "Stock cannot be negative"})
	}
	return fieldErrors
}

// CreateProduct adds a new catalog entry
func (s *ProductService) CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error) {
	if fieldErrors := input.validate(); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	product := &entity.Product{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Gender:      enum.Gender(input.Gender),
		Image:       input.Image,
		Stock:       input.Stock,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct replaces the mutable fields of a catalog entry
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error) {
	if fieldErrors := input.validate(); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Description = input.Description
	product.Price = input.Price
	product.Gender = enum.Gender(input.Gender)
	product.Image = input.Image
	product.Stock = input.Stock

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a catalog entry
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}
