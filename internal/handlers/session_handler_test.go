package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/models"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/services"
)

type stubSessionService struct {
	createResult *models.Session
	createErr    error
	listResult   []models.SessionWithDetails
	listErr      error
	getResult    *models.SessionWithDetails
	getErr       error
	lastCreate   services.CreateSessionInput
	lastGetID    string
}

func (s *stubSessionService) CreateSession(_ context.Context, input services.CreateSessionInput) (*models.Session, error) {
	s.lastCreate = input
	return s.createResult, s.createErr
}

func (s *stubSessionService) ListSessions(_ context.Context) ([]models.SessionWithDetails, error) {
	return s.listResult, s.listErr
}

func (s *stubSessionService) GetSession(_ context.Context, sessionID string) (*models.SessionWithDetails, error) {
	s.lastGetID = sessionID
	return s.getResult, s.getErr
}

func newSessionTestApp(handler *SessionHandler) *fiber.App {
	app := fiber.New()
	app.Get("/api/sessions", handler.ListSessions)
	app.Post("/api/sessions", handler.CreateSession)
	app.Get("/api/sessions/:id", handler.GetSession)
	return app
}

func TestCreateSessionReturnsCreated(t *testing.T) {
	service := &stubSessionService{
		createResult: &models.Session{
			ID:        "s1",
			Location:  "Riverside Courts",
			TotalCost: decimal.RequireFromString("400000"),
			PayerID:   "a",
			Status:    "pending",
		},
	}
	handler := &SessionHandler{service: service}
	app := newSessionTestApp(handler)

	req := httptest.NewRequest(http.MethodPost, "/api/sessions", strings.NewReader(`{
		"date": "2030-03-15T09:00:00Z",
		"location": "Riverside Courts",
		"total_cost": "400000",
		"payer_id": "a",
		"participant_ids": ["a", "b", "c", "d"]
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if !service.lastCreate.TotalCost.Equal(decimal.RequireFromString("400000")) {
		t.Fatalf("expected total cost 400000, got %s", service.lastCreate.TotalCost)
	}
	if len(service.lastCreate.ParticipantIDs) != 4 {
		t.Fatalf("expected 4 participants, got %d", len(service.lastCreate.ParticipantIDs))
	}
	if service.lastCreate.Date.UTC().Hour() != 9 {
		t.Fatalf("expected parsed date, got %v", service.lastCreate.Date)
	}
}

func TestCreateSessionRejectsBadDate(t *testing.T) {
	handler := &SessionHandler{service: &stubSessionService{}}
	app := newSessionTestApp(handler)

	req := httptest.NewRequest(http.MethodPost, "/api/sessions", strings.NewReader(`{
		"date": "yesterday",
		"location": "Riverside Courts",
		"total_cost": "400000",
		"payer_id": "a",
		"participant_ids": ["a"]
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestCreateSessionRejectsBadCost(t *testing.T) {
	handler := &SessionHandler{service: &stubSessionService{}}
	app := newSessionTestApp(handler)

	for _, cost := range []string{`"not-a-number"`, `"-5"`, `"0"`} {
		req := httptest.NewRequest(http.MethodPost, "/api/sessions", strings.NewReader(`{
			"date": "2030-03-15T09:00:00Z",
			"location": "Riverside Courts",
			"total_cost": `+cost+`,
			"payer_id": "a",
			"participant_ids": ["a"]
		}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("cost %s: expected 400, got %d", cost, resp.StatusCode)
		}
	}
}

func TestCreateSessionRejectsEmptyParticipants(t *testing.T) {
	handler := &SessionHandler{service: &stubSessionService{}}
	app := newSessionTestApp(handler)

	req := httptest.NewRequest(http.MethodPost, "/api/sessions", strings.NewReader(`{
		"date": "2030-03-15T09:00:00Z",
		"location": "Riverside Courts",
		"total_cost": "400000",
		"payer_id": "a",
		"participant_ids": []
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestListSessionsReturnsDetails(t *testing.T) {
	service := &stubSessionService{listResult: []models.SessionWithDetails{
		{
			Session:          models.Session{ID: "s1", Status: "pending"},
			Payer:            models.Member{ID: "a", Name: "You", Initials: "ME"},
			Participants:     []models.Member{{ID: "a"}, {ID: "b"}},
			ParticipantCount: 2,
		},
	}}
	handler := &SessionHandler{service: service}
	app := newSessionTestApp(handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/sessions", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var sessions []models.SessionWithDetails
	if err := json.NewDecoder(resp.Body).Decode(&sessions); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ParticipantCount != 2 {
		t.Fatalf("unexpected sessions: %+v", sessions)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	handler := &SessionHandler{service: &stubSessionService{getErr: pgx.ErrNoRows}}
	app := newSessionTestApp(handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/sessions/missing", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
