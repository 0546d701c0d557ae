package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/ordering-system/internal/core/domain"
	"github.com/bistroboss/ordering-system/internal/core/ports"
)

// AuthHandler issues session tokens.
type AuthHandler struct {
	tokens ports.TokenService
	users  ports.UserService
}

func NewAuthHandler(tokens ports.TokenService, users ports.UserService) *AuthHandler {
	return &AuthHandler{tokens: tokens, users: users}
}

type tokenResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// IssueToken handles POST /jwt.
//
// The request body is embedded verbatim as token claims; nothing proves the
// caller owns the identity it names. Existing frontends depend on this
// behaviour. New integrations should use Login instead.
//
// @Summary      Issue a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]any  true  "Identity payload"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  map[string]string
// @Router       /jwt [post]
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var claims map[string]any
	if err := c.Bind(&claims); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(claims) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "payload is required")
	}

	token, err := h.tokens.Issue(claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// Login handles POST /auth/login, the hardened issuance path: the password
// check proves identity ownership before a token is minted.
//
// @Summary      Login with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tokenResponse{Token: token, User: user})
}
