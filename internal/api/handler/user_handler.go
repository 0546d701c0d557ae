package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/ordering-system/internal/core/domain"
	"github.com/bistroboss/ordering-system/internal/core/ports"
)

// UserHandler handles registration and the admin-facing user operations.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type adminStatusResponse struct {
	Admin bool `json:"admin"`
}

// Register handles POST /users. Registration is idempotent: registering an
// existing email returns insertedId null with an explanatory message.
//
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      domain.User  true  "User details"
// @Success      200   {object}  ports.RegisterResult
// @Failure      400   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var user domain.User
	if err := c.Bind(&user); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.users.Register(c.Request().Context(), &user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// List handles GET /users (admin only).
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// AdminStatus handles GET /users/admin/:email (self only). Unknown identities
// are reported as non-admin, not as missing.
//
// @Summary      Check whether an identity holds the admin role
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Identity email"
// @Success      200    {object}  adminStatusResponse
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Router       /users/admin/{email} [get]
func (h *UserHandler) AdminStatus(c echo.Context) error {
	isAdmin, err := h.users.IsAdmin(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminStatusResponse{Admin: isAdmin})
}

// Promote handles PATCH /users/admin/:id (admin only).
//
// @Summary      Promote a user to admin
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      200  {object}  map[string]bool
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/admin/{id} [patch]
func (h *UserHandler) Promote(c echo.Context) error {
	if err := h.users.PromoteToAdmin(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"modified": true})
}

// Delete handles DELETE /users/:id (admin only).
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      200  {object}  map[string]bool
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.users.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}
