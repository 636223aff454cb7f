package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	"github.com/danuwijaya/tokopos-api/internal/domain/repository"
	"github.com/danuwijaya/tokopos-api/pkg/apperror"
	"github.com/danuwijaya/tokopos-api/pkg/utils"
)

// ProductService handles product-related operations
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	SKU         string
	Barcode     *string
	Name        string
	Description *string
	CategoryID  *uuid.UUID
	Unit        string
	Price       float64
	Cost        float64
	MinStock    int
	ImageURL    *string
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Price < 0 || input.Cost < 0 {
		return nil, apperror.NewBadRequestError("Price and cost cannot be negative")
	}

	// Auto-generate SKU if not provided
	sku := input.SKU
	if sku == "" {
		sku = utils.GenerateSKU("")
	}

	existingProduct, err := s.productRepo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if existingProduct != nil {
		return nil, apperror.NewConflictError("Product SKU already exists")
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
	}

	unit := input.Unit
	if unit == "" {
		unit = "pcs"
	}

	product := &entity.Product{
		SKU:         sku,
		Barcode:     input.Barcode,
		Name:        input.Name,
		Slug:        utils.Slugify(input.Name),
		Description: input.Description,
		CategoryID:  input.CategoryID,
		Unit:        unit,
		Price:       input.Price,
		Cost:        input.Cost,
		MinStock:    input.MinStock,
		ImageURL:    input.ImageURL,
		IsActive:    true,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, product.ID)
}

// GetProduct retrieves a product by ID
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

// GetProductByBarcode retrieves a product by barcode for POS scanning
func (s *ProductService) GetProductByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	product, err := s.productRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	Name        *string
	Barcode     *string
	Description *string
	CategoryID  *uuid.UUID
	Unit        *string
	Price       *float64
	Cost        *float64
	MinStock    *int
	ImageURL    *string
	IsActive    *bool
}

// UpdateProduct updates an existing product
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil && *input.Name != product.Name {
		product.Name = *input.Name
		product.Slug = utils.Slugify(*input.Name)
	}
	if input.Barcode != nil {
		product.Barcode = input.Barcode
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
		product.CategoryID = input.CategoryID
	}
	if input.Unit != nil {
		product.Unit = *input.Unit
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewBadRequestError("Price cannot be negative")
		}
		product.Price = *input.Price
	}
	if input.Cost != nil {
		if *input.Cost < 0 {
			return nil, apperror.NewBadRequestError("Cost cannot be negative")
		}
		product.Cost = *input.Cost
	}
	if input.MinStock != nil {
		product.MinStock = *input.MinStock
	}
	if input.ImageURL != nil {
		product.ImageURL = input.ImageURL
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, product.ID)
}

// DeleteProduct deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// ListProducts lists products with filtering and pagination
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	return s.productRepo.List(ctx, params)
}
