package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campus-safety/internal/auth"
	"campus-safety/internal/config"
	"campus-safety/internal/handlers"
	"campus-safety/internal/middleware"
	"campus-safety/internal/models"
	"campus-safety/internal/notify"
	"campus-safety/internal/repository"
	"campus-safety/internal/service"
	"campus-safety/internal/testutil"
)

// newSosMux wires the SOS routes the way main does, against a real store
func newSosMux(t *testing.T, containers *testutil.TestContainers) *http.ServeMux {
	t.Helper()

	sosRepo := repository.NewSosRepository(containers.DB)
	auditService := service.NewAuditService(repository.NewAuditRepository(containers.DB))
	sosService := service.NewSosService(sosRepo, notify.NopNotifier{}, auditService)

	authService := auth.NewService(&config.JWTConfig{
		Secret:     string(containers.JWTSecret),
		Expiration: time.Hour,
	})
	authMw := middleware.NewAuthMiddleware(authService)
	rbacMw := middleware.NewRBACMiddleware()
	sosHandler := handlers.NewSosHandler(sosService, nil)

	mux := http.NewServeMux()
	mux.Handle("POST /api/v1/sos",
		authMw.Authenticate(http.HandlerFunc(sosHandler.Create)),
	)
	mux.Handle("PUT /api/v1/sos/{id}/status",
		authMw.Authenticate(
			rbacMw.RequireAnyRole(middleware.RoleResponder, middleware.RoleReviewer)(
				http.HandlerFunc(sosHandler.Transition),
			),
		),
	)
	mux.Handle("GET /api/v1/sos/active",
		authMw.Authenticate(
			rbacMw.RequireAnyRole(middleware.RoleResponder, middleware.RoleReviewer)(
				http.HandlerFunc(sosHandler.ListActive),
			),
		),
	)
	return mux
}

func TestSosEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	mux := newSosMux(t, containers)
	authHelper := testutil.NewAuthHelper()

	// Unauthenticated trigger is rejected
	resp := testutil.NewTestResponse()
	mux.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/v1/sos", nil))
	resp.AssertStatusUnauthorized(t)

	// A student triggers an alert with coordinates
	body, _ := json.Marshal(map[string]any{"latitude": 12.9716, "longitude": 77.5946})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sos", bytes.NewReader(body))
	authHelper.AddAuthHeader(t, req, testutil.FixtureStudentRef, []string{middleware.RoleStudent})
	resp = testutil.NewTestResponse()
	mux.ServeHTTP(resp, req)
	resp.AssertStatusCreated(t)

	var alert models.SosAlert
	if err := json.Unmarshal(resp.Body.Bytes(), &alert); err != nil {
		t.Fatalf("Failed to decode alert: %v", err)
	}
	if alert.Status != models.SosActive {
		t.Errorf("Expected new alert to be ACTIVE, got %s", alert.Status)
	}

	// Students cannot drive the lifecycle
	body, _ = json.Marshal(map[string]any{"status": models.SosResponding})
	req = httptest.NewRequest(http.MethodPut, "/api/v1/sos/"+alert.ID+"/status", bytes.NewReader(body))
	authHelper.AddAuthHeader(t, req, testutil.FixtureStudentRef, []string{middleware.RoleStudent})
	resp = testutil.NewTestResponse()
	mux.ServeHTTP(resp, req)
	resp.AssertStatusForbidden(t)

	// A responder picks it up
	req = httptest.NewRequest(http.MethodPut, "/api/v1/sos/"+alert.ID+"/status", bytes.NewReader(body))
	authHelper.AddAuthHeader(t, req, testutil.FixtureResponderRef, []string{middleware.RoleResponder})
	resp = testutil.NewTestResponse()
	mux.ServeHTTP(resp, req)
	resp.AssertStatusOK(t)

	// Skipping backwards is a conflict carrying the legal next states
	body, _ = json.Marshal(map[string]any{"status": models.SosActive})
	req = httptest.NewRequest(http.MethodPut, "/api/v1/sos/"+alert.ID+"/status", bytes.NewReader(body))
	authHelper.AddAuthHeader(t, req, testutil.FixtureResponderRef, []string{middleware.RoleResponder})
	resp = testutil.NewTestResponse()
	mux.ServeHTTP(resp, req)
	resp.AssertStatus(t, http.StatusConflict)

	var conflict struct {
		CurrentStatus string   `json:"current_status"`
		Allowed       []string `json:"allowed"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &conflict); err != nil {
		t.Fatalf("Failed to decode conflict body: %v", err)
	}
	if conflict.CurrentStatus != string(models.SosResponding) {
		t.Errorf("Expected current_status RESPONDING, got %s", conflict.CurrentStatus)
	}
	if len(conflict.Allowed) == 0 {
		t.Error("Expected allowed next states in conflict response")
	}

	// The active view shows the alert until it is resolved
	req = authHelper.CreateAuthenticatedRequest(t, http.MethodGet, "/api/v1/sos/active",
		testutil.FixtureResponderRef, []string{middleware.RoleResponder})
	resp = testutil.NewTestResponse()
	mux.ServeHTTP(resp, req)
	resp.AssertStatusOK(t)

	var active []models.SosAlert
	if err := json.Unmarshal(resp.Body.Bytes(), &active); err != nil {
		t.Fatalf("Failed to decode active alerts: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("Expected 1 active alert, got %d", len(active))
	}

	body, _ = json.Marshal(map[string]any{"status": models.SosResolved, "note": "reached the student, all fine"})
	req = httptest.NewRequest(http.MethodPut, "/api/v1/sos/"+alert.ID+"/status", bytes.NewReader(body))
	authHelper.AddAuthHeader(t, req, testutil.FixtureResponderRef, []string{middleware.RoleResponder})
	resp = testutil.NewTestResponse()
	mux.ServeHTTP(resp, req)
	resp.AssertStatusOK(t)

	req = authHelper.CreateAuthenticatedRequest(t, http.MethodGet, "/api/v1/sos/active",
		testutil.FixtureResponderRef, []string{middleware.RoleResponder})
	resp = testutil.NewTestResponse()
	mux.ServeHTTP(resp, req)
	resp.AssertStatusOK(t)

	active = nil
	if err := json.Unmarshal(resp.Body.Bytes(), &active); err != nil {
		t.Fatalf("Failed to decode active alerts: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("Expected no active alerts after resolution, got %d", len(active))
	}
}
