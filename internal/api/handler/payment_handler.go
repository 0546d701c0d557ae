package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/ordering-system/internal/api/metrics"
	"github.com/bistroboss/ordering-system/internal/core/domain"
	"github.com/bistroboss/ordering-system/internal/core/ports"
)

// PaymentHandler drives the checkout protocol and payment history.
type PaymentHandler struct {
	checkout ports.CheckoutService
	payments ports.PaymentRepository
	stats    ports.StatsService
}

func NewPaymentHandler(checkout ports.CheckoutService, payments ports.PaymentRepository, stats ports.StatsService) *PaymentHandler {
	return &PaymentHandler{checkout: checkout, payments: payments, stats: stats}
}

type createIntentRequest struct {
	Price float64 `json:"price"`
}

type createIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type confirmPaymentRequest struct {
	Email         string    `json:"email"`
	Price         float64   `json:"price"`
	TransactionID string    `json:"transactionId"`
	Date          time.Time `json:"date"`
	CartIDs       []string  `json:"cartIds"`
	MenuItemIDs   []string  `json:"menuItemIds"`
	Status        string    `json:"status"`
}

type confirmPaymentResponse struct {
	PaymentResult *domain.Payment `json:"paymentResult"`
	DeleteResult  deleteResponse  `json:"deleteResult"`
}

// CreateIntent handles POST /create-payment-intent. Quote-and-authorize only:
// nothing is persisted here.
//
// @Summary      Create a payment intent
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      createIntentRequest  true  "Price in major units"
// @Success      200   {object}  createIntentResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req createIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	secret, err := h.checkout.CreateIntent(c.Request().Context(), req.Price)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentGateway) {
			metrics.GatewayErrorsTotal.Inc()
		}
		return err
	}

	metrics.IntentsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, createIntentResponse{ClientSecret: secret})
}

// Confirm handles POST /payments: records the payment and purges the settled
// cart rows, reporting both outcomes so the caller can verify each sub-step.
//
// @Summary      Confirm a completed payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      confirmPaymentRequest  true  "Completed payment"
// @Success      200   {object}  confirmPaymentResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /payments [post]
func (h *PaymentHandler) Confirm(c echo.Context) error {
	var req confirmPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.checkout.Confirm(c.Request().Context(), ports.ConfirmPaymentInput{
		Email:         req.Email,
		Price:         req.Price,
		TransactionID: req.TransactionID,
		Date:          req.Date,
		CartIDs:       req.CartIDs,
		MenuItemIDs:   req.MenuItemIDs,
		Status:        req.Status,
	})
	if err != nil {
		return err
	}

	metrics.PaymentsConfirmedTotal.Inc()
	metrics.CartItemsPurgedTotal.Add(float64(res.PurgedCount))
	metrics.PaymentAmount.Observe(req.Price)

	return c.JSON(http.StatusOK, confirmPaymentResponse{
		PaymentResult: res.Payment,
		DeleteResult:  deleteResponse{DeletedCount: res.PurgedCount},
	})
}

// History handles GET /payments/:email (self only).
//
// @Summary      List a user's payment history
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Owner email"
// @Success      200    {array}   domain.Payment
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Router       /payments/{email} [get]
func (h *PaymentHandler) History(c echo.Context) error {
	payments, err := h.payments.ListByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}

// AdminStats handles GET /admin-stats (admin only).
//
// @Summary      Dashboard rollup: counts and total revenue
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.AdminStats
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin-stats [get]
func (h *PaymentHandler) AdminStats(c echo.Context) error {
	stats, err := h.stats.AdminStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
