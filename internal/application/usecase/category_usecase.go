package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/inventorywise/api/internal/application/dto"
	"github.com/inventorywise/api/internal/domain"
	"github.com/inventorywise/api/internal/domain/entity"
	"github.com/inventorywise/api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías (con anidamiento por
// ParentCategoryID).
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. El nombre es obligatorio; el padre, si viene,
// debe existir.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.ParentCategoryID != nil {
		parent, err := uc.repo.GetByID(*in.ParentCategoryID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound
		}
	}
	description := in.Description
	if description == "" {
		description = "No description provided"
	}
	now := time.Now()
	category := &entity.Category{
		ID:               uuid.New().String(),
		Name:             in.Name,
		ParentCategoryID: in.ParentCategoryID,
		Description:      description,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID; nil si no existe.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// Update actualiza una categoría.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		category.Name = *in.Name
	}
	if in.ParentCategoryID != nil {
		if *in.ParentCategoryID == id {
			return nil, domain.ErrInvalidInput // una categoría no puede ser su propio padre
		}
		parent, err := uc.repo.GetByID(*in.ParentCategoryID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound
		}
		category.ParentCategoryID = in.ParentCategoryID
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List lista categorías con filtro por nombre y paginación.
func (uc *CategoryUseCase) List(name string, page dto.PageRequest) (*dto.CategoryListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(name, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Delete elimina una categoría por ID.
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// DeleteAll elimina todas las categorías.
func (uc *CategoryUseCase) DeleteAll() error {
	return uc.repo.DeleteAll()
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:               c.ID,
		Name:             c.Name,
		ParentCategoryID: c.ParentCategoryID,
		Description:      c.Description,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}
