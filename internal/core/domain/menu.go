package domain

import "errors"

var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuItem is a dish on the restaurant's catalog. Cart items reference it by
// identifier only.
type MenuItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Recipe   string  `json:"recipe,omitempty"`
	Image    string  `json:"image,omitempty"`
}

// Review is a customer testimonial shown on the public site.
type Review struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Details string  `json:"details"`
	Rating  float64 `json:"rating"`
}
