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
)

type stubCartService struct {
	items []domain.CartItem
}

func (s *stubCartService) ListByOwner(_ context.Context, email string) ([]domain.CartItem, error) {
	if email == "" {
		return nil, domain.ErrEmailRequired
	}
	out := []domain.CartItem{}
	for _, it := range s.items {
		if it.Email == email {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *stubCartService) Add(_ context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	item.ID = "cart_1"
	s.items = append(s.items, *item)
	return item, nil
}

func (s *stubCartService) Remove(_ context.Context, id string) (bool, error) {
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func TestCartHandler_List_RequiresEmail(t *testing.T) {
	e := echo.New()
	h := NewCartHandler(&stubCartService{})

	req := httptest.NewRequest(http.MethodGet, "/carts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); !errors.Is(err, domain.ErrEmailRequired) {
		t.Fatalf("expected ErrEmailRequired, got %v", err)
	}
}

func TestCartHandler_List_UnknownEmailIsEmptyList(t *testing.T) {
	e := echo.New()
	h := NewCartHandler(&stubCartService{items: []domain.CartItem{
		{ID: "c1", Email: "alice@example.com", Name: "Pasta"},
	}})

	req := httptest.NewRequest(http.MethodGet, "/carts?email=nobody@example.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty list, got %s", body)
	}
}

func TestCartHandler_Add_DuplicatesAllowed(t *testing.T) {
	e := echo.New()
	svc := &stubCartService{}
	h := NewCartHandler(svc)

	body := `{"email":"alice@example.com","menuItemId":"m1","name":"Pasta","price":12.5}`
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/carts", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := h.Add(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	}

	if len(svc.items) != 2 {
		t.Fatalf("expected two rows for the same item, got %d", len(svc.items))
	}
}

func TestCartHandler_Remove_AbsentIDReportsZero(t *testing.T) {
	e := echo.New()
	h := NewCartHandler(&stubCartService{})

	req := httptest.NewRequest(http.MethodDelete, "/carts/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Remove(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp deleteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.DeletedCount != 0 {
		t.Fatalf("expected deletedCount 0, got %d", resp.DeletedCount)
	}
}
