package inventory

import "errors"

var (
	ErrItemNotFound   = errors.New("inventory item not found")
	ErrItemReferenced = errors.New("inventory item is used by a recipe")
)
