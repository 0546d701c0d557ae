package domain

import (
	"errors"
	"time"
)

var ErrInvalidPrice = errors.New("price must be a positive amount")
var ErrPaymentGateway = errors.New("payment gateway failure")
var ErrCartPurgeFailed = errors.New("cart purge failed after payment was recorded")
var ErrForbidden = errors.New("access forbidden")

// Payment records a settled checkout. It is created exactly once per confirm
// call and never mutated. CartIDs lists the cart rows the payment settled;
// after a successful confirm those rows no longer exist.
type Payment struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Price         float64   `json:"price"`
	TransactionID string    `json:"transaction_id"`
	Date          time.Time `json:"date"`
	CartIDs       []string  `json:"cart_ids"`
	MenuItemIDs   []string  `json:"menu_item_ids,omitempty"`
	Status        string    `json:"status,omitempty"`
}
