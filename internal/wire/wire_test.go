package wire

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ticket-booking/internal/data/entity"
	"ticket-booking/internal/data/memory"
	"ticket-booking/internal/data/repository"
	"ticket-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

func newTestApp(t *testing.T) (*App, *repository.Repository) {
	t.Helper()

	repo := memory.NewRepository(zap.NewNop())
	config := &utils.Config{
		App:     utils.AppConfig{Name: "ticket-booking-test", Port: "0"},
		Session: utils.SessionConfig{ExpiryHours: 24},
		OTP:     utils.OTPConfig{ExpiryMinutes: 10, Length: 6},
	}

	return Wiring(repo, config, zap.NewNop()), repo
}

func doJSON(t *testing.T, app *App, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") == "application/json" {
		_ = json.Unmarshal(rec.Body.Bytes(), &env)
	}

	return rec, env
}

func registerTestUser(t *testing.T, app *App, email string) string {
	t.Helper()

	rec, env := doJSON(t, app, http.MethodPost, "/api/register", "", map[string]string{
		"name":     "Test User",
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var auth struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &auth))
	require.NotEmpty(t, auth.Token)
	return auth.Token
}

func seedAdminUser(t *testing.T, app *App, repo *repository.Repository) string {
	t.Helper()

	hashed, err := utils.HashPassword("adminpass")
	require.NoError(t, err)

	now := time.Now()
	admin := &entity.User{
		Base:          entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Email:         "admin@example.com",
		Name:          "Administrator",
		PasswordHash:  hashed,
		Role:          entity.RoleAdmin,
		EmailVerified: true,
		IsActive:      true,
	}
	require.NoError(t, repo.User.Create(context.Background(), admin))

	rec, env := doJSON(t, app, http.MethodPost, "/api/login", "", map[string]string{
		"email":    "admin@example.com",
		"password": "adminpass",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var auth struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &auth))
	return auth.Token
}

func seedTestEvent(t *testing.T, repo *repository.Repository, price float64, capacity int) *entity.Event {
	t.Helper()

	now := time.Now()
	event := &entity.Event{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Title:    "Router Fest",
		Venue:    "Test Arena",
		StartsAt: now.Add(48 * time.Hour),
		Price:    price,
		Currency: "USD",
		Capacity: capacity,
	}
	require.NoError(t, repo.Event.Create(context.Background(), event))
	return event
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestOpenAPIEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])

	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/api/booking")
	assert.Contains(t, paths, "/api/admin/actions")
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app, _ := newTestApp(t)

	rec, _ := doJSON(t, app, http.MethodGet, "/api/user/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = doJSON(t, app, http.MethodGet, "/api/user/profile", uuid.New().String(), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutesForbiddenForUsers(t *testing.T) {
	app, _ := newTestApp(t)

	token := registerTestUser(t, app, "plain@example.com")

	rec, _ := doJSON(t, app, http.MethodGet, "/api/admin/users/", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestBookingFlowOverHTTP(t *testing.T) {
	app, repo := newTestApp(t)
	ctx := context.Background()

	token := registerTestUser(t, app, "flow@example.com")
	event := seedTestEvent(t, repo, 20, 10)

	method := &entity.PaymentMethod{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Code:       "credit_card",
		Name:       "Credit Card",
		IsActive:   true,
	}
	require.NoError(t, repo.PaymentMethod.Create(ctx, method))

	// Create a booking with an idempotency key.
	bookingReq := map[string]any{"event_id": event.ID.String(), "quantity": 2}
	req := httptest.NewRequest(http.MethodPost, "/api/booking", jsonBody(t, bookingReq))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Idempotency-Key", "flow-1")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var booking struct {
		ID         string  `json:"id"`
		TotalPrice float64 `json:"total_price"`
		Status     string  `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &booking))
	assert.Equal(t, float64(40), booking.TotalPrice)
	assert.Equal(t, "pending", booking.Status)

	// The same key replays with 200, not 201.
	req = httptest.NewRequest(http.MethodPost, "/api/booking", jsonBody(t, bookingReq))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Idempotency-Key", "flow-1")
	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var replayed struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &replayed))
	assert.Equal(t, booking.ID, replayed.ID)

	// Pay for it.
	rec2, env2 := doJSON(t, app, http.MethodPost, "/api/pay", token, map[string]any{
		"booking_id":     booking.ID,
		"payment_method": "credit_card",
		"amount":         40,
	})
	require.Equal(t, http.StatusCreated, rec2.Code, rec2.Body.String())

	var payment struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env2.Data, &payment))
	assert.Equal(t, "completed", payment.Status)

	// Booking is confirmed now.
	rec2, env2 = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/bookings/%s", booking.ID), token, nil)
	require.Equal(t, http.StatusOK, rec2.Code)
	var confirmed struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env2.Data, &confirmed))
	assert.Equal(t, "confirmed", confirmed.Status)

	// Notifications arrived for creation and payment.
	rec2, env2 = doJSON(t, app, http.MethodGet, "/api/user/notifications", token, nil)
	require.Equal(t, http.StatusOK, rec2.Code)
	var inbox struct {
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env2.Data, &inbox))
	assert.Equal(t, int64(2), inbox.Pagination.Total)
}

func TestAdminEventManagementOverHTTP(t *testing.T) {
	app, repo := newTestApp(t)

	adminToken := seedAdminUser(t, app, repo)

	// Create
	rec, env := doJSON(t, app, http.MethodPost, "/api/admin/events/", adminToken, map[string]any{
		"title":     "Late Show",
		"venue":     "Studio 5",
		"starts_at": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"price":     55.0,
		"currency":  "USD",
		"capacity":  30,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var event struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &event))

	// Publicly visible
	rec, _ = doJSON(t, app, http.MethodGet, "/api/events/"+event.ID, "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Delete
	rec, _ = doJSON(t, app, http.MethodDelete, "/api/admin/events/"+event.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, app, http.MethodGet, "/api/events/"+event.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Both mutations are in the audit trail.
	rec, env = doJSON(t, app, http.MethodGet, "/api/admin/actions/", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var trail struct {
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &trail))
	assert.Equal(t, int64(2), trail.Pagination.Total)
}

func jsonBody(t *testing.T, body any) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	return bytes.NewReader(data)
}
