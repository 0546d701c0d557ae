package domain

import "errors"

var ErrEmailRequired = errors.New("email is required")

// CartItem is a single menu item placed in a user's cart. Quantity is
// implicit: adding the same item twice produces two rows. Items are owned
// exclusively by the email that added them.
type CartItem struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Image      string  `json:"image,omitempty"`
	Price      float64 `json:"price"`
}
