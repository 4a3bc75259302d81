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

	"github.com/bloodconnect/donation-system/internal/core/domain"
	"github.com/bloodconnect/donation-system/internal/core/ports"
)

type stubDonorService struct {
	registerFn        func(ctx context.Context, input ports.RegisterDonorInput) (string, error)
	listAvailableFn   func(ctx context.Context) ([]*domain.Donor, error)
	searchFn          func(ctx context.Context, input ports.SearchDonorsInput) ([]*domain.Donor, error)
	listAllFn         func(ctx context.Context) ([]*domain.Donor, error)
	setAvailabilityFn func(ctx context.Context, id string, available bool) (*domain.Donor, error)
	deleteFn          func(ctx context.Context, id string) (*domain.Donor, error)
}

func (s *stubDonorService) Register(ctx context.Context, input ports.RegisterDonorInput) (string, error) {
	return s.registerFn(ctx, input)
}

func (s *stubDonorService) ListAvailable(ctx context.Context) ([]*domain.Donor, error) {
	return s.listAvailableFn(ctx)
}

func (s *stubDonorService) Search(ctx context.Context, input ports.SearchDonorsInput) ([]*domain.Donor, error) {
	return s.searchFn(ctx, input)
}

func (s *stubDonorService) ListAll(ctx context.Context) ([]*domain.Donor, error) {
	return s.listAllFn(ctx)
}

func (s *stubDonorService) SetAvailability(ctx context.Context, id string, available bool) (*domain.Donor, error) {
	return s.setAvailabilityFn(ctx, id, available)
}

func (s *stubDonorService) Delete(ctx context.Context, id string) (*domain.Donor, error) {
	return s.deleteFn(ctx, id)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestDonorHandler_Register_Success(t *testing.T) {
	stub := &stubDonorService{
		registerFn: func(ctx context.Context, input ports.RegisterDonorInput) (string, error) {
			if input.Name != "John Smith" || input.BloodGroup != "O+" || input.City != "Houston" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return "donor_1", nil
		},
	}
	handler := NewDonorHandler(stub)

	body := `{"name":"John Smith","age":34,"gender":"Male","blood_group":"O+","contact_phone":"555-0101","contact_email":"john@example.com","city":"Houston"}`
	c, rec := newTestContext(t, http.MethodPost, "/donors/register", body)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "donor_1" {
		t.Fatalf("expected donor id, got %v", resp["id"])
	}
	if resp["message"] != "Donor registered successfully!" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestDonorHandler_Register_InvalidBloodGroup(t *testing.T) {
	stub := &stubDonorService{
		registerFn: func(ctx context.Context, input ports.RegisterDonorInput) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	handler := NewDonorHandler(stub)

	body := `{"name":"John","age":34,"gender":"Male","blood_group":"Z+","contact_phone":"555-0101","contact_email":"john@example.com","city":"Houston"}`
	c, _ := newTestContext(t, http.MethodPost, "/donors/register", body)

	err := handler.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %v", err)
	}
}

func TestDonorHandler_Register_AgeOutOfRange(t *testing.T) {
	stub := &stubDonorService{
		registerFn: func(ctx context.Context, input ports.RegisterDonorInput) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	handler := NewDonorHandler(stub)

	body := `{"name":"John","age":17,"gender":"Male","blood_group":"O+","contact_phone":"555-0101","contact_email":"john@example.com","city":"Houston"}`
	c, _ := newTestContext(t, http.MethodPost, "/donors/register", body)

	err := handler.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %v", err)
	}
}

func TestDonorHandler_Register_DuplicateEmail(t *testing.T) {
	stub := &stubDonorService{
		registerFn: func(ctx context.Context, input ports.RegisterDonorInput) (string, error) {
			return "", domain.ErrDonorEmailExists
		},
	}
	handler := NewDonorHandler(stub)

	body := `{"name":"John","age":34,"gender":"Male","blood_group":"O+","contact_phone":"555-0101","contact_email":"john@example.com","city":"Houston"}`
	c, _ := newTestContext(t, http.MethodPost, "/donors/register", body)

	err := handler.Register(c)
	if !errors.Is(err, domain.ErrDonorEmailExists) {
		t.Fatalf("expected duplicate email error, got %v", err)
	}
}

func TestDonorHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubDonorService{
		registerFn: func(ctx context.Context, input ports.RegisterDonorInput) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	handler := NewDonorHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/donors/register", "not-json")

	err := handler.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %v", err)
	}
}

func TestDonorHandler_Search_PassesFilters(t *testing.T) {
	stub := &stubDonorService{
		searchFn: func(ctx context.Context, input ports.SearchDonorsInput) ([]*domain.Donor, error) {
			if input.BloodGroup != "A+" || input.City != "Austin" {
				t.Fatalf("unexpected filters: %+v", input)
			}
			return []*domain.Donor{{ID: "donor_1", Name: "Jane", BloodGroup: domain.BloodAPositive}}, nil
		},
	}
	handler := NewDonorHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/donors/search?blood_group=A%2B&city=Austin", "")

	if err := handler.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var donors []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &donors); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(donors) != 1 || donors[0]["name"] != "Jane" {
		t.Fatalf("unexpected payload: %+v", donors)
	}
}

func TestDonorHandler_UpdateAvailability_Success(t *testing.T) {
	stub := &stubDonorService{
		setAvailabilityFn: func(ctx context.Context, id string, available bool) (*domain.Donor, error) {
			if id != "donor_1" || available {
				t.Fatalf("unexpected args: %s %v", id, available)
			}
			return &domain.Donor{ID: id, Name: "John", IsAvailable: false}, nil
		},
	}
	handler := NewDonorHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/donors/donor_1/availability", `{"is_available":false}`)
	c.SetParamNames("id")
	c.SetParamValues("donor_1")

	if err := handler.UpdateAvailability(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Donor availability updated to Unavailable" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestDonorHandler_UpdateAvailability_MissingFlag(t *testing.T) {
	stub := &stubDonorService{
		setAvailabilityFn: func(ctx context.Context, id string, available bool) (*domain.Donor, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewDonorHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/donors/donor_1/availability", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("donor_1")

	err := handler.UpdateAvailability(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %v", err)
	}
}

func TestDonorHandler_Delete_NotFound(t *testing.T) {
	stub := &stubDonorService{
		deleteFn: func(ctx context.Context, id string) (*domain.Donor, error) {
			return nil, domain.ErrDonorNotFound
		},
	}
	handler := NewDonorHandler(stub)

	c, _ := newTestContext(t, http.MethodDelete, "/donors/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := handler.Delete(c)
	if !errors.Is(err, domain.ErrDonorNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}
