package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/ordering-system/internal/core/domain"
	"github.com/bistroboss/ordering-system/internal/core/ports"
)

// CartHandler handles the per-user cart routes.
type CartHandler struct {
	carts ports.CartService
}

func NewCartHandler(carts ports.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

type deleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// List handles GET /carts?email=... The email query parameter is mandatory;
// no carts for an email is an empty list, not an error.
//
// @Summary      List a user's cart
// @Tags         carts
// @Produce      json
// @Param        email  query     string  true  "Owner email"
// @Success      200    {array}   domain.CartItem
// @Failure      400    {object}  map[string]string
// @Router       /carts [get]
func (h *CartHandler) List(c echo.Context) error {
	items, err := h.carts.ListByOwner(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Add handles POST /carts. No dedup check: adding the same item twice makes
// two rows.
//
// @Summary      Add an item to the cart
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        body  body      domain.CartItem  true  "Cart item"
// @Success      200   {object}  domain.CartItem
// @Failure      400   {object}  map[string]string
// @Router       /carts [post]
func (h *CartHandler) Add(c echo.Context) error {
	var item domain.CartItem
	if err := c.Bind(&item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.carts.Add(c.Request().Context(), &item)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, created)
}

// Remove handles DELETE /carts/:id. Removing an absent id reports zero
// deletions rather than an error.
//
// @Summary      Remove a cart item
// @Tags         carts
// @Produce      json
// @Param        id  path  string  true  "Cart item id"
// @Success      200  {object}  deleteResponse
// @Router       /carts/{id} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	removed, err := h.carts.Remove(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	resp := deleteResponse{}
	if removed {
		resp.DeletedCount = 1
	}
	return c.JSON(http.StatusOK, resp)
}
