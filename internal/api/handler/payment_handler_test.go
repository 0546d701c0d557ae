package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/ordering-system/internal/core/domain"
	"github.com/bistroboss/ordering-system/internal/core/ports"
)

type stubCheckoutService struct {
	createIntentFn func(ctx context.Context, price float64) (string, error)
	confirmFn      func(ctx context.Context, in ports.ConfirmPaymentInput) (*ports.ConfirmResult, error)
}

func (s *stubCheckoutService) CreateIntent(ctx context.Context, price float64) (string, error) {
	return s.createIntentFn(ctx, price)
}

func (s *stubCheckoutService) Confirm(ctx context.Context, in ports.ConfirmPaymentInput) (*ports.ConfirmResult, error) {
	return s.confirmFn(ctx, in)
}

type stubPaymentStore struct {
	payments []domain.Payment
}

func (s *stubPaymentStore) Insert(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	s.payments = append(s.payments, *p)
	return p, nil
}

func (s *stubPaymentStore) ListByEmail(_ context.Context, email string) ([]domain.Payment, error) {
	out := []domain.Payment{}
	for _, p := range s.payments {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubPaymentStore) EstimatedCount(_ context.Context) (int64, error) {
	return int64(len(s.payments)), nil
}

func (s *stubPaymentStore) SumPrices(_ context.Context) (float64, error) {
	var sum float64
	for _, p := range s.payments {
		sum += p.Price
	}
	return sum, nil
}

type stubStatsService struct {
	stats ports.AdminStats
}

func (s *stubStatsService) AdminStats(_ context.Context) (*ports.AdminStats, error) {
	return &s.stats, nil
}

func TestPaymentHandler_CreateIntent_Success(t *testing.T) {
	e := echo.New()
	checkout := &stubCheckoutService{
		createIntentFn: func(_ context.Context, price float64) (string, error) {
			if price != 19.99 {
				t.Fatalf("unexpected price: %v", price)
			}
			return "pi_secret_abc", nil
		},
	}
	h := NewPaymentHandler(checkout, &stubPaymentStore{}, &stubStatsService{})

	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{"price":19.99}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateIntent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["clientSecret"] != "pi_secret_abc" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestPaymentHandler_CreateIntent_MissingPrice(t *testing.T) {
	e := echo.New()
	checkout := &stubCheckoutService{
		createIntentFn: func(_ context.Context, price float64) (string, error) {
			if price != 0 {
				t.Fatalf("expected zero price, got %v", price)
			}
			return "", domain.ErrInvalidPrice
		},
	}
	h := NewPaymentHandler(checkout, &stubPaymentStore{}, &stubStatsService{})

	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateIntent(c); !errors.Is(err, domain.ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
}

func TestPaymentHandler_CreateIntent_GatewayFailure(t *testing.T) {
	e := echo.New()
	checkout := &stubCheckoutService{
		createIntentFn: func(_ context.Context, _ float64) (string, error) {
			return "", domain.ErrPaymentGateway
		},
	}
	h := NewPaymentHandler(checkout, &stubPaymentStore{}, &stubStatsService{})

	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{"price":10}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateIntent(c); !errors.Is(err, domain.ErrPaymentGateway) {
		t.Fatalf("expected ErrPaymentGateway, got %v", err)
	}
}

func TestPaymentHandler_Confirm_ReturnsBothOutcomes(t *testing.T) {
	e := echo.New()
	checkout := &stubCheckoutService{
		confirmFn: func(_ context.Context, in ports.ConfirmPaymentInput) (*ports.ConfirmResult, error) {
			if in.Email != "alice@example.com" || len(in.CartIDs) != 2 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.ConfirmResult{
				Payment:     &domain.Payment{ID: "payment_1", Email: in.Email, Price: in.Price},
				PurgedCount: 2,
			}, nil
		},
	}
	h := NewPaymentHandler(checkout, &stubPaymentStore{}, &stubStatsService{})

	body := strings.NewReader(`{"email":"alice@example.com","price":19.5,"transactionId":"txn_1","cartIds":["a","b"]}`)
	req := httptest.NewRequest(http.MethodPost, "/payments", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Confirm(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		PaymentResult map[string]any `json:"paymentResult"`
		DeleteResult  struct {
			DeletedCount int64 `json:"deletedCount"`
		} `json:"deleteResult"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.PaymentResult["id"] != "payment_1" {
		t.Fatalf("expected payment in response, got %+v", resp.PaymentResult)
	}
	if resp.DeleteResult.DeletedCount != 2 {
		t.Fatalf("expected deletedCount 2, got %d", resp.DeleteResult.DeletedCount)
	}
}

func TestPaymentHandler_Confirm_PurgeFailureSurfaced(t *testing.T) {
	e := echo.New()
	checkout := &stubCheckoutService{
		confirmFn: func(_ context.Context, _ ports.ConfirmPaymentInput) (*ports.ConfirmResult, error) {
			return &ports.ConfirmResult{Payment: &domain.Payment{ID: "payment_1"}}, domain.ErrCartPurgeFailed
		},
	}
	h := NewPaymentHandler(checkout, &stubPaymentStore{}, &stubStatsService{})

	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(`{"email":"a@b.c","cartIds":["x"]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Confirm(c); !errors.Is(err, domain.ErrCartPurgeFailed) {
		t.Fatalf("expected ErrCartPurgeFailed, got %v", err)
	}
}

func TestPaymentHandler_History(t *testing.T) {
	e := echo.New()
	store := &stubPaymentStore{payments: []domain.Payment{
		{ID: "p1", Email: "alice@example.com", Price: 10},
		{ID: "p2", Email: "bob@example.com", Price: 20},
	}}
	h := NewPaymentHandler(&stubCheckoutService{}, store, &stubStatsService{})

	req := httptest.NewRequest(http.MethodGet, "/payments/alice@example.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("email")
	c.SetParamValues("alice@example.com")

	if err := h.History(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var payments []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payments); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(payments) != 1 || payments[0]["id"] != "p1" {
		t.Fatalf("unexpected history: %+v", payments)
	}
}

func TestPaymentHandler_AdminStats(t *testing.T) {
	e := echo.New()
	stats := &stubStatsService{stats: ports.AdminStats{Users: 3, MenuItems: 12, Orders: 5, Revenue: 123.45}}
	h := NewPaymentHandler(&stubCheckoutService{}, &stubPaymentStore{}, stats)

	req := httptest.NewRequest(http.MethodGet, "/admin-stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.AdminStats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["revenue"] != 123.45 || resp["orders"] != float64(5) {
		t.Fatalf("unexpected stats: %+v", resp)
	}
}
