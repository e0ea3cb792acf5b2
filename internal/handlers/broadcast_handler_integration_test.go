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
	"campus-safety/internal/directory"
	"campus-safety/internal/handlers"
	"campus-safety/internal/middleware"
	"campus-safety/internal/models"
	"campus-safety/internal/notify"
	"campus-safety/internal/repository"
	"campus-safety/internal/service"
	"campus-safety/internal/testutil"
)

// newBroadcastMux wires the broadcast routes the way main does
func newBroadcastMux(t *testing.T, containers *testutil.TestContainers) *http.ServeMux {
	t.Helper()

	broadcastRepo := repository.NewBroadcastRepository(containers.DB)
	dir := directory.New(config.DirectoryConfig{
		Departments:   []string{"CSE", "ECE"},
		FacultyPrefix: "F",
	})
	auditService := service.NewAuditService(repository.NewAuditRepository(containers.DB))
	broadcastService := service.NewBroadcastService(broadcastRepo, dir, notify.NopNotifier{}, auditService)

	authService := auth.NewService(&config.JWTConfig{
		Secret:     string(containers.JWTSecret),
		Expiration: time.Hour,
	})
	authMw := middleware.NewAuthMiddleware(authService)
	rbacMw := middleware.NewRBACMiddleware()
	broadcastHandler := handlers.NewBroadcastHandler(broadcastService)

	mux := http.NewServeMux()
	mux.Handle("POST /api/v1/broadcasts",
		authMw.Authenticate(
			rbacMw.RequireAnyRole(middleware.RoleReviewer, middleware.RoleAdmin)(
				http.HandlerFunc(broadcastHandler.Create),
			),
		),
	)
	mux.Handle("PUT /api/v1/broadcasts/{id}/deactivate",
		authMw.Authenticate(
			rbacMw.RequireAnyRole(middleware.RoleReviewer, middleware.RoleAdmin)(
				http.HandlerFunc(broadcastHandler.Deactivate),
			),
		),
	)
	mux.Handle("GET /api/v1/broadcasts/active",
		authMw.Authenticate(http.HandlerFunc(broadcastHandler.ListActive)),
	)
	return mux
}

func TestBroadcastAudienceFromTokenClaims(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	mux := newBroadcastMux(t, containers)
	authHelper := testutil.NewAuthHelper()

	// A reviewer publishes an alert scoped to one department
	body, _ := json.Marshal(map[string]any{
		"title":            "CSE block evacuation drill",
		"description":      "Assemble at the main quad by 10:00",
		"category":         "drill",
		"severity":         models.SeverityMedium,
		"target_audience":  models.AudienceDepartments,
		"department_scope": []string{"CSE"},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/broadcasts", bytes.NewReader(body))
	authHelper.AddAuthHeader(t, req, testutil.FixtureFacultyRef, []string{middleware.RoleReviewer})
	resp := testutil.NewTestResponse()
	mux.ServeHTTP(resp, req)
	resp.AssertStatusCreated(t)

	var alert models.BroadcastAlert
	if err := json.Unmarshal(resp.Body.Bytes(), &alert); err != nil {
		t.Fatalf("Failed to decode alert: %v", err)
	}

	// A student whose token carries the scoped department sees the alert
	req = httptest.NewRequest(http.MethodGet, "/api/v1/broadcasts/active", nil)
	authHelper.AddAuthHeaderWithDepartment(t, req, "S3001", "CSE", []string{middleware.RoleStudent})
	resp = testutil.NewTestResponse()
	mux.ServeHTTP(resp, req)
	resp.AssertStatusOK(t)

	var visible []models.BroadcastAlert
	if err := json.Unmarshal(resp.Body.Bytes(), &visible); err != nil {
		t.Fatalf("Failed to decode alerts: %v", err)
	}
	if len(visible) != 1 {
		t.Fatalf("Expected 1 alert for a CSE member, got %d", len(visible))
	}

	// Self-declaring a department in the query does not grant membership;
	// only the token claim counts
	req = httptest.NewRequest(http.MethodGet, "/api/v1/broadcasts/active?department=CSE", nil)
	authHelper.AddAuthHeader(t, req, "S4002", []string{middleware.RoleStudent})
	resp = testutil.NewTestResponse()
	mux.ServeHTTP(resp, req)
	resp.AssertStatusOK(t)

	visible = nil
	if err := json.Unmarshal(resp.Body.Bytes(), &visible); err != nil {
		t.Fatalf("Failed to decode alerts: %v", err)
	}
	if len(visible) != 0 {
		t.Errorf("Expected no alerts for a caller without the department claim, got %d", len(visible))
	}

	// A member of a different department is outside the scope too
	req = httptest.NewRequest(http.MethodGet, "/api/v1/broadcasts/active", nil)
	authHelper.AddAuthHeaderWithDepartment(t, req, "S5003", "ECE", []string{middleware.RoleStudent})
	resp = testutil.NewTestResponse()
	mux.ServeHTTP(resp, req)
	resp.AssertStatusOK(t)

	visible = nil
	if err := json.Unmarshal(resp.Body.Bytes(), &visible); err != nil {
		t.Fatalf("Failed to decode alerts: %v", err)
	}
	if len(visible) != 0 {
		t.Errorf("Expected no alerts for an ECE member, got %d", len(visible))
	}

	// Deactivation removes the alert from the member's view
	req = httptest.NewRequest(http.MethodPut, "/api/v1/broadcasts/"+alert.ID+"/deactivate", nil)
	authHelper.AddAuthHeader(t, req, testutil.FixtureFacultyRef, []string{middleware.RoleReviewer})
	resp = testutil.NewTestResponse()
	mux.ServeHTTP(resp, req)
	resp.AssertStatusOK(t)

	// Deactivating again is a validation failure
	req = httptest.NewRequest(http.MethodPut, "/api/v1/broadcasts/"+alert.ID+"/deactivate", nil)
	authHelper.AddAuthHeader(t, req, testutil.FixtureFacultyRef, []string{middleware.RoleReviewer})
	resp = testutil.NewTestResponse()
	mux.ServeHTTP(resp, req)
	resp.AssertStatusBadRequest(t)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/broadcasts/active", nil)
	authHelper.AddAuthHeaderWithDepartment(t, req, "S3001", "CSE", []string{middleware.RoleStudent})
	resp = testutil.NewTestResponse()
	mux.ServeHTTP(resp, req)
	resp.AssertStatusOK(t)

	visible = nil
	if err := json.Unmarshal(resp.Body.Bytes(), &visible); err != nil {
		t.Fatalf("Failed to decode alerts: %v", err)
	}
	if len(visible) != 0 {
		t.Errorf("Expected no alerts after deactivation, got %d", len(visible))
	}
}
