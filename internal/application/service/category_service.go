package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	"github.com/danuwijaya/tokopos-api/internal/domain/repository"
	"github.com/danuwijaya/tokopos-api/pkg/apperror"
	"github.com/danuwijaya/tokopos-api/pkg/pagination"
	"github.com/danuwijaya/tokopos-api/pkg/utils"
)

// CategoryService handles category-related operations
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CreateCategoryInput represents the create category input
type CreateCategoryInput struct {
	Name        string
	Description *string
}

// CreateCategory creates a new category
func (s *CategoryService) CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error) {
	slug := utils.Slugify(input.Name)

	existing, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Category already exists")
	}

	category := &entity.Category{
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// GetCategory retrieves a category by ID
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}
	return category, nil
}

// UpdateCategoryInput represents the update category input
type UpdateCategoryInput struct {
	Name        *string
	Description *string
}

// UpdateCategory updates an existing category
func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, input *UpdateCategoryInput) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	if input.Name != nil && *input.Name != category.Name {
		slug := utils.Slugify(*input.Name)
		existing, err := s.categoryRepo.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != category.ID {
			return nil, apperror.NewConflictError("Category already exists")
		}
		category.Name = *input.Name
		category.Slug = slug
	}
	if input.Description != nil {
		category.Description = input.Description
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory deletes a category
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}
	return s.categoryRepo.Delete(ctx, id)
}

// ListCategories lists categories with pagination
func (s *CategoryService) ListCategories(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Category, int64, error) {
	return s.categoryRepo.List(ctx, params, search)
}
