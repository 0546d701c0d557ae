package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/ordering-system/internal/core/domain"
	"github.com/bistroboss/ordering-system/internal/core/ports"
)

// MenuHandler handles the public catalog and its admin mutations.
type MenuHandler struct {
	menu    ports.MenuService
	reviews ports.ReviewRepository
}

func NewMenuHandler(menu ports.MenuService, reviews ports.ReviewRepository) *MenuHandler {
	return &MenuHandler{menu: menu, reviews: reviews}
}

// List handles GET /menu.
//
// @Summary      List the menu catalog
// @Tags         menu
// @Produce      json
// @Success      200  {array}  domain.MenuItem
// @Router       /menu [get]
func (h *MenuHandler) List(c echo.Context) error {
	items, err := h.menu.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /menu/:id.
//
// @Summary      Get a menu item
// @Tags         menu
// @Produce      json
// @Param        id  path  string  true  "Menu item id"
// @Success      200  {object}  domain.MenuItem
// @Failure      404  {object}  map[string]string
// @Router       /menu/{id} [get]
func (h *MenuHandler) Get(c echo.Context) error {
	item, err := h.menu.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Create handles POST /menu (admin only).
//
// @Summary      Add a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.MenuItem  true  "Menu item"
// @Success      200   {object}  domain.MenuItem
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /menu [post]
func (h *MenuHandler) Create(c echo.Context) error {
	var item domain.MenuItem
	if err := c.Bind(&item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.menu.Create(c.Request().Context(), &item)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, created)
}

// Update handles PATCH /menu/:id.
//
// @Summary      Update a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Menu item id"
// @Param        body  body      domain.MenuItem  true  "New field values"
// @Success      200   {object}  map[string]bool
// @Failure      404   {object}  map[string]string
// @Router       /menu/{id} [patch]
func (h *MenuHandler) Update(c echo.Context) error {
	var item domain.MenuItem
	if err := c.Bind(&item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.menu.Update(c.Request().Context(), c.Param("id"), &item); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"modified": true})
}

// Delete handles DELETE /menu/:id (admin only).
//
// @Summary      Delete a menu item
// @Tags         menu
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Menu item id"
// @Success      200  {object}  map[string]bool
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /menu/{id} [delete]
func (h *MenuHandler) Delete(c echo.Context) error {
	if err := h.menu.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}

// Reviews handles GET /reviews.
//
// @Summary      List reviews
// @Tags         reviews
// @Produce      json
// @Success      200  {array}  domain.Review
// @Router       /reviews [get]
func (h *MenuHandler) Reviews(c echo.Context) error {
	reviews, err := h.reviews.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}
