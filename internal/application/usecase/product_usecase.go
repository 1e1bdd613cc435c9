package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/inventorywise/api/internal/application/dto"
	"github.com/inventorywise/api/internal/domain"
	"github.com/inventorywise/api/internal/domain/entity"
	"github.com/inventorywise/api/internal/domain/repository"
	"github.com/inventorywise/api/internal/domain/sku"
)

// ProductUseCase casos de uso CRUD para productos. El SKU se genera en el alta
// y cada producto mantiene su asiento en el libro de inventario.
type ProductUseCase struct {
	repo          repository.ProductRepository
	categoryRepo  repository.CategoryRepository
	inventoryRepo repository.InventoryRepository
	tx            TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	inventoryRepo repository.InventoryRepository,
	tx TxRunner,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, inventoryRepo: inventoryRepo, tx: tx}
}

// Create crea un producto: resuelve la categoría por nombre, genera el SKU y
// abre el asiento de inventario con el stock inicial.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Category == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.StockQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.MinStockThreshold < 0 || in.MaxStockThreshold < in.MinStockThreshold {
		return nil, domain.ErrInvalidInput
	}

	category, err := uc.categoryRepo.GetByName(in.Category)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		SKU:               sku.Generate(in.Name, category.Name, now),
		Name:              in.Name,
		Description:       in.Description,
		Price:             in.Price,
		StockQuantity:     in.StockQuantity,
		MinStockThreshold: in.MinStockThreshold,
		MaxStockThreshold: in.MaxStockThreshold,
		CategoryID:        category.ID,
		Barcode:           in.Barcode,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	// Asiento inicial del libro de inventario (equivale al alta automática).
	entry := &entity.InventoryEntry{
		ID:           uuid.New().String(),
		ProductID:    product.ID,
		StockIn:      in.StockQuantity,
		CurrentStock: in.StockQuantity,
		UpdatedAt:    now,
	}

	err = uc.tx.Run(context.Background(), func(
		products repository.ProductRepository,
		inventories repository.InventoryRepository,
	) error {
		if err := products.Create(product); err != nil {
			return err
		}
		return inventories.Create(entry)
	})
	if err != nil {
		return nil, err
	}

	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto (PUT parcial). El stock no se toca aquí: los
// ajustes de stock pasan por AdjustStock para mantener el libro consistente.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.MinStockThreshold != nil {
		if *in.MinStockThreshold < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinStockThreshold = *in.MinStockThreshold
	}
	if in.MaxStockThreshold != nil {
		if *in.MaxStockThreshold < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MaxStockThreshold = *in.MaxStockThreshold
	}
	if product.MaxStockThreshold < product.MinStockThreshold {
		return nil, domain.ErrInvalidInput
	}
	if in.Category != nil {
		category, err := uc.categoryRepo.GetByName(*in.Category)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = category.ID
	}
	if in.Barcode != nil {
		product.Barcode = *in.Barcode
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// AdjustStock suma la cantidad recibida al stock vigente (llegada de
// mercancía) y registra la entrada en el libro de inventario.
func (uc *ProductUseCase) AdjustStock(id string, in dto.AdjustStockRequest) (*dto.ProductResponse, error) {
	if in.StockQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	product.StockQuantity += in.StockQuantity
	product.UpdatedAt = time.Now()

	err = uc.tx.Run(context.Background(), func(
		products repository.ProductRepository,
		inventories repository.InventoryRepository,
	) error {
		if err := products.UpdateStock(product.ID, product.StockQuantity); err != nil {
			return err
		}
		entry, err := inventories.GetByProductID(product.ID)
		if err != nil {
			return err
		}
		if entry == nil {
			return nil
		}
		entry.ApplyStockIn(in.StockQuantity)
		entry.UpdatedAt = product.UpdatedAt
		return inventories.Update(entry)
	})
	if err != nil {
		return nil, err
	}

	return toProductResponse(product), nil
}

// List lista productos con filtros y paginación.
func (uc *ProductUseCase) List(filter dto.ProductFilterRequest, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	repoFilter := repository.ProductFilter{
		Name:     filter.Name,
		Category: filter.Category,
		MinPrice: filter.MinPrice,
		MaxPrice: filter.MaxPrice,
	}
	list, total, err := uc.repo.List(repoFilter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Delete elimina un producto y cierra su asiento de inventario (salida total).
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}

	return uc.tx.Run(context.Background(), func(
		products repository.ProductRepository,
		inventories repository.InventoryRepository,
	) error {
		entry, err := inventories.GetByProductID(id)
		if err != nil {
			return err
		}
		if entry != nil {
			entry.CloseOut()
			entry.UpdatedAt = time.Now()
			if err := inventories.Update(entry); err != nil {
				return err
			}
		}
		return products.Delete(id)
	})
}

// GetInventory devuelve el asiento de inventario de un producto.
func (uc *ProductUseCase) GetInventory(productID string) (*dto.InventoryEntryResponse, error) {
	product, err := uc.repo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	entry, err := uc.inventoryRepo.GetByProductID(productID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}
	return &dto.InventoryEntryResponse{
		ProductID:    entry.ProductID,
		StockIn:      entry.StockIn,
		StockOut:     entry.StockOut,
		CurrentStock: entry.CurrentStock,
		UpdatedAt:    entry.UpdatedAt,
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:                p.ID,
		SKU:               p.SKU,
		Name:              p.Name,
		Description:       p.Description,
		Price:             p.Price,
		StockQuantity:     p.StockQuantity,
		MinStockThreshold: p.MinStockThreshold,
		MaxStockThreshold: p.MaxStockThreshold,
		CategoryID:        p.CategoryID,
		Barcode:           p.Barcode,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
