package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/product"
	"github.com/grupo-genisa/erp-backend-go/internal/pkg/database"
)

type productRepositoryImpl struct {
	db *database.DB
}

func NewProductRepository(db *database.DB) product.ProductRepository {
	return &productRepositoryImpl{db: db}
}

const productColumns = `id, name, company, type, price, cost, created_at, updated_at`

func scanProduct(row pgx.Row) (product.Product, error) {
	var p product.Product
	err := row.Scan(&p.ID, &p.Name, &p.Company, &p.Type, &p.Price, &p.Cost, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *productRepositoryImpl) GetByID(ctx context.Context, id string) (product.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return product.Product{}, product.ErrProductNotFound
		}
		return product.Product{}, fmt.Errorf("get product by id: %w", err)
	}

	if err := r.loadRecipe(ctx, &p); err != nil {
		return product.Product{}, err
	}
	return p, nil
}

func (r *productRepositoryImpl) List(ctx context.Context, filter product.ProductFilter) ([]product.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	var args []any

	if filter.Company != "" {
		args = append(args, filter.Company)
		query += fmt.Sprintf(" AND company = $%d", len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
		query += fmt.Sprintf(" AND LOWER(name) LIKE $%d", len(args))
	}
	query += " ORDER BY name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []product.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range products {
		if err := r.loadRecipe(ctx, &products[i]); err != nil {
			return nil, err
		}
	}
	return products, nil
}

func (r *productRepositoryImpl) ListByInventoryItem(ctx context.Context, inventoryID string) ([]product.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id IN (SELECT product_id FROM product_recipe_lines WHERE inventory_id = $1)
	`

	rows, err := q.Query(ctx, query, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("list products by inventory item: %w", err)
	}
	defer rows.Close()

	var products []product.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range products {
		if err := r.loadRecipe(ctx, &products[i]); err != nil {
			return nil, err
		}
	}
	return products, nil
}

func (r *productRepositoryImpl) loadRecipe(ctx context.Context, p *product.Product) error {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.product_id, l.inventory_id, i.name, l.quantity
		FROM product_recipe_lines l
		JOIN inventory_items i ON i.id = l.inventory_id
		WHERE l.product_id = $1
		ORDER BY i.name
	`

	rows, err := q.Query(ctx, query, p.ID)
	if err != nil {
		return fmt.Errorf("load product recipe: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line product.RecipeLine
		if err := rows.Scan(&line.ID, &line.ProductID, &line.InventoryID, &line.ItemName, &line.Quantity); err != nil {
			return err
		}
		p.Recipe = append(p.Recipe, line)
	}
	return rows.Err()
}

func (r *productRepositoryImpl) Create(ctx context.Context, p product.Product) (product.Product, error) {
	var created product.Product

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		query := `
			INSERT INTO products (name, company, type, price, cost)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING ` + productColumns

		var err error
		created, err = scanProduct(q.QueryRow(txCtx, query, p.Name, p.Company, p.Type, p.Price, p.Cost))
		if err != nil {
			return fmt.Errorf("create product: %w", err)
		}

		return insertRecipeLines(txCtx, q, created.ID, p.Recipe)
	})
	if err != nil {
		return product.Product{}, err
	}

	return r.GetByID(ctx, created.ID)
}

func (r *productRepositoryImpl) Update(ctx context.Context, p product.Product, replaceRecipe bool) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		query := `
			UPDATE products
			SET name = $1, type = $2, price = $3, cost = $4, updated_at = NOW()
			WHERE id = $5
		`
		tag, err := q.Exec(txCtx, query, p.Name, p.Type, p.Price, p.Cost, p.ID)
		if err != nil {
			return fmt.Errorf("update product: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return product.ErrProductNotFound
		}

		if !replaceRecipe {
			return nil
		}

		if _, err := q.Exec(txCtx, `DELETE FROM product_recipe_lines WHERE product_id = $1`, p.ID); err != nil {
			return fmt.Errorf("clear product recipe: %w", err)
		}
		return insertRecipeLines(txCtx, q, p.ID, p.Recipe)
	})
}

func insertRecipeLines(ctx context.Context, q database.Querier, productID string, recipe []product.RecipeLine) error {
	for _, line := range recipe {
		query := `
			INSERT INTO product_recipe_lines (product_id, inventory_id, quantity)
			VALUES ($1, $2, $3)
		`
		if _, err := q.Exec(ctx, query, productID, line.InventoryID, line.Quantity); err != nil {
			return fmt.Errorf("insert recipe line: %w", err)
		}
	}
	return nil
}

func (r *productRepositoryImpl) UpdateCost(ctx context.Context, id string, cost decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE products SET cost = $1, updated_at = NOW() WHERE id = $2`, cost, id)
	if err != nil {
		return fmt.Errorf("update product cost: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}
	return nil
}

func (r *productRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	// Recipe lines cascade with the product.
	tag, err := q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}
	return nil
}
