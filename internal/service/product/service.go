package product

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/inventory"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/product"
)

type productServiceImpl struct {
	productRepo   product.ProductRepository
	inventoryRepo inventory.ItemRepository
}

func NewProductService(productRepo product.ProductRepository, inventoryRepo inventory.ItemRepository) product.ProductService {
	return &productServiceImpl{
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
	}
}

func (s *productServiceImpl) CreateProduct(ctx context.Context, req product.CreateProductRequest) (product.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return product.ProductResponse{}, err
	}

	recipe, cost, err := s.buildRecipe(ctx, req.Recipe)
	if err != nil {
		return product.ProductResponse{}, err
	}

	created, err := s.productRepo.Create(ctx, product.Product{
		Name:    req.Name,
		Company: req.Company,
		Type:    req.Type,
		Price:   req.Price,
		Cost:    cost,
		Recipe:  recipe,
	})
	if err != nil {
		return product.ProductResponse{}, err
	}
	return toProductResponse(created), nil
}

func (s *productServiceImpl) GetProduct(ctx context.Context, id string) (product.ProductResponse, error) {
	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return product.ProductResponse{}, err
	}
	return toProductResponse(p), nil
}

func (s *productServiceImpl) ListProducts(ctx context.Context, filter product.ProductFilter) ([]product.ProductResponse, error) {
	products, err := s.productRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]product.ProductResponse, 0, len(products))
	for _, p := range products {
		resp := toProductResponse(p)
		if filter.MarginAlert && !resp.MarginAlert {
			continue
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *productServiceImpl) UpdateProduct(ctx context.Context, req product.UpdateProductRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	p, err := s.productRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Type != nil {
		p.Type = *req.Type
	}
	if req.Price != nil {
		p.Price = *req.Price
	}

	replaceRecipe := req.Recipe != nil
	if replaceRecipe {
		recipe, cost, err := s.buildRecipe(ctx, *req.Recipe)
		if err != nil {
			return err
		}
		p.Recipe = recipe
		p.Cost = cost
	}

	return s.productRepo.Update(ctx, p, replaceRecipe)
}

func (s *productServiceImpl) DeleteProduct(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}

// buildRecipe resolves every referenced inventory item and prices the
// recipe at current unit costs.
func (s *productServiceImpl) buildRecipe(ctx context.Context, lines []product.RecipeLineRequest) ([]product.RecipeLine, decimal.Decimal, error) {
	if len(lines) == 0 {
		return nil, decimal.Zero, nil
	}

	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.InventoryID)
	}
	items, err := s.inventoryRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, decimal.Zero, err
	}
	costs := make(map[string]decimal.Decimal, len(items))
	for _, item := range items {
		costs[item.ID] = item.CostPerUnit
	}

	recipe := make([]product.RecipeLine, 0, len(lines))
	for _, line := range lines {
		if _, ok := costs[line.InventoryID]; !ok {
			return nil, decimal.Zero, product.ErrUnknownInventoryID
		}
		recipe = append(recipe, product.RecipeLine{
			InventoryID: line.InventoryID,
			Quantity:    line.Quantity,
		})
	}
	return recipe, product.RecipeCost(recipe, costs), nil
}

func toProductResponse(p product.Product) product.ProductResponse {
	resp := product.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Company:     p.Company,
		Type:        p.Type,
		Price:       p.Price,
		Cost:        p.Cost,
		Margin:      product.Margin(p.Price, p.Cost),
		MarginAlert: product.MarginBelowThreshold(p.Price, p.Cost),
		Recipe:      make([]product.RecipeLineResponse, 0, len(p.Recipe)),
	}
	for _, line := range p.Recipe {
		resp.Recipe = append(resp.Recipe, product.RecipeLineResponse{
			ID:          line.ID,
			InventoryID: line.InventoryID,
			ItemName:    line.ItemName,
			Quantity:    line.Quantity,
		})
	}
	return resp
}
