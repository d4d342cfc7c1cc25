package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/inventory"
	"github.com/grupo-genisa/erp-backend-go/internal/pkg/database"
)

type inventoryRepositoryImpl struct {
	db *database.DB
}

func NewInventoryRepository(db *database.DB) inventory.ItemRepository {
	return &inventoryRepositoryImpl{db: db}
}

const inventoryColumns = `id, name, company, unit, quantity, cost_per_unit, min_quantity, created_at, updated_at`

func scanInventoryItem(row pgx.Row) (inventory.Item, error) {
	var item inventory.Item
	err := row.Scan(
		&item.ID, &item.Name, &item.Company, &item.Unit, &item.Quantity,
		&item.CostPerUnit, &item.MinQuantity, &item.CreatedAt, &item.UpdatedAt,
	)
	return item, err
}

func (r *inventoryRepositoryImpl) GetByID(ctx context.Context, id string) (inventory.Item, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE id = $1`
	item, err := scanInventoryItem(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return inventory.Item{}, inventory.ErrItemNotFound
		}
		return inventory.Item{}, fmt.Errorf("get inventory item by id: %w", err)
	}
	return item, nil
}

func (r *inventoryRepositoryImpl) GetByIDs(ctx context.Context, ids []string) ([]inventory.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE id = ANY($1)`
	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get inventory items by ids: %w", err)
	}
	defer rows.Close()

	return collectInventoryItems(rows)
}

func (r *inventoryRepositoryImpl) List(ctx context.Context, filter inventory.ItemFilter) ([]inventory.Item, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE 1=1`
	var args []any

	if filter.Company != "" {
		args = append(args, filter.Company)
		query += fmt.Sprintf(" AND company = $%d", len(args))
	}
	if filter.BelowMinimum {
		query += " AND quantity < min_quantity"
	}
	if filter.Search != "" {
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
		query += fmt.Sprintf(" AND LOWER(name) LIKE $%d", len(args))
	}
	query += " ORDER BY name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()

	return collectInventoryItems(rows)
}

func collectInventoryItems(rows pgx.Rows) ([]inventory.Item, error) {
	var items []inventory.Item
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *inventoryRepositoryImpl) Create(ctx context.Context, item inventory.Item) (inventory.Item, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO inventory_items (name, company, unit, quantity, cost_per_unit, min_quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + inventoryColumns

	created, err := scanInventoryItem(q.QueryRow(ctx, query,
		item.Name, item.Company, item.Unit, item.Quantity, item.CostPerUnit, item.MinQuantity,
	))
	if err != nil {
		return inventory.Item{}, fmt.Errorf("create inventory item: %w", err)
	}
	return created, nil
}

func (r *inventoryRepositoryImpl) Update(ctx context.Context, req inventory.UpdateItemRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{"updated_at = NOW()"}
	var args []any

	addSet := func(column string, value any) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.Unit != nil {
		addSet("unit", *req.Unit)
	}
	if req.Quantity != nil {
		addSet("quantity", *req.Quantity)
	}
	if req.CostPerUnit != nil {
		addSet("cost_per_unit", *req.CostPerUnit)
	}
	if req.MinQuantity != nil {
		addSet("min_quantity", *req.MinQuantity)
	}

	args = append(args, req.ID)
	query := fmt.Sprintf("UPDATE inventory_items SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "), len(args))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return inventory.ErrItemNotFound
	}
	return nil
}

func (r *inventoryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return inventory.ErrItemNotFound
	}
	return nil
}

func (r *inventoryRepositoryImpl) CountRecipeReferences(ctx context.Context, id string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	query := `SELECT COUNT(*) FROM product_recipe_lines WHERE inventory_id = $1`
	if err := q.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("count recipe references: %w", err)
	}
	return count, nil
}
