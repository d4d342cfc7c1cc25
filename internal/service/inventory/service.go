package inventory

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/inventory"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/product"
)

type inventoryServiceImpl struct {
	inventoryRepo inventory.ItemRepository
	productRepo   product.ProductRepository
}

func NewInventoryService(inventoryRepo inventory.ItemRepository, productRepo product.ProductRepository) inventory.InventoryService {
	return &inventoryServiceImpl{
		inventoryRepo: inventoryRepo,
		productRepo:   productRepo,
	}
}

func (s *inventoryServiceImpl) CreateItem(ctx context.Context, req inventory.CreateItemRequest) (inventory.ItemResponse, error) {
	if err := req.Validate(); err != nil {
		return inventory.ItemResponse{}, err
	}

	created, err := s.inventoryRepo.Create(ctx, inventory.Item{
		Name:        req.Name,
		Company:     req.Company,
		Unit:        req.Unit,
		Quantity:    req.Quantity,
		CostPerUnit: req.CostPerUnit,
		MinQuantity: req.MinQuantity,
	})
	if err != nil {
		return inventory.ItemResponse{}, err
	}
	return toItemResponse(created), nil
}

func (s *inventoryServiceImpl) GetItem(ctx context.Context, id string) (inventory.ItemResponse, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return inventory.ItemResponse{}, err
	}
	return toItemResponse(item), nil
}

func (s *inventoryServiceImpl) ListItems(ctx context.Context, filter inventory.ItemFilter) ([]inventory.ItemResponse, error) {
	items, err := s.inventoryRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]inventory.ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toItemResponse(item))
	}
	return responses, nil
}

// UpdateItem persists the change and, when the unit cost moved, refreshes
// the stored cost of every product whose recipe uses the item.
func (s *inventoryServiceImpl) UpdateItem(ctx context.Context, req inventory.UpdateItemRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	before, err := s.inventoryRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if err := s.inventoryRepo.Update(ctx, req); err != nil {
		return err
	}

	costMoved := req.CostPerUnit != nil && !req.CostPerUnit.Equal(before.CostPerUnit)
	if !costMoved {
		return nil
	}
	return s.recomputeDependentCosts(ctx, req.ID)
}

func (s *inventoryServiceImpl) recomputeDependentCosts(ctx context.Context, inventoryID string) error {
	products, err := s.productRepo.ListByInventoryItem(ctx, inventoryID)
	if err != nil {
		return err
	}

	for _, p := range products {
		ids := make([]string, 0, len(p.Recipe))
		for _, line := range p.Recipe {
			ids = append(ids, line.InventoryID)
		}
		items, err := s.inventoryRepo.GetByIDs(ctx, ids)
		if err != nil {
			return err
		}

		costs := make(map[string]decimal.Decimal, len(items))
		for _, item := range items {
			costs[item.ID] = item.CostPerUnit
		}
		if err := s.productRepo.UpdateCost(ctx, p.ID, product.RecipeCost(p.Recipe, costs)); err != nil {
			return err
		}
	}

	if len(products) > 0 {
		slog.Info("product costs refreshed", "inventory_id", inventoryID, "products", len(products))
	}
	return nil
}

func toItemResponse(item inventory.Item) inventory.ItemResponse {
	return inventory.ItemResponse{
		ID:           item.ID,
		Name:         item.Name,
		Company:      item.Company,
		Unit:         item.Unit,
		Quantity:     item.Quantity,
		CostPerUnit:  item.CostPerUnit,
		MinQuantity:  item.MinQuantity,
		BelowMinimum: item.BelowMinimum(),
	}
}

func (s *inventoryServiceImpl) DeleteItem(ctx context.Context, id string) error {
	if _, err := s.inventoryRepo.GetByID(ctx, id); err != nil {
		return err
	}

	refs, err := s.inventoryRepo.CountRecipeReferences(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return inventory.ErrItemReferenced
	}

	if err := s.inventoryRepo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("inventory item deleted", "item_id", id)
	return nil
}
