package product

import "errors"

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrDuplicateRecipeItem = errors.New("recipe lists the same inventory item twice")
	ErrUnknownInventoryID  = errors.New("recipe references an unknown inventory item")
)
