package http

import (
	"bytes"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/citizen-connect/grievance-service/internal/api/http/handlers"
	"github.com/citizen-connect/grievance-service/internal/events"
	"github.com/citizen-connect/grievance-service/internal/observability"
	"github.com/citizen-connect/grievance-service/internal/service"
	"github.com/citizen-connect/grievance-service/internal/store"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	grievanceService := service.NewGrievanceService(service.GrievanceDependencies{
		Store:      store.NewMemoryStore(),
		Dispatcher: events.NewInMemoryDispatcher(),
		Logger:     zap.NewNop(),
	})

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	RegisterRoutes(app, RouteConfig{
		Health:     handlers.NewHealthHandler("grievance-service", "test"),
		Grievances: handlers.NewGrievancesHandler(grievanceService),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*nethttp.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func createPayload() map[string]interface{} {
	return map[string]interface{}{
		"citizenName":  "Asha Verma",
		"citizenPhone": "9876543210",
		"description":  "No water supply in our colony for the last three days",
	}
}

func createGrievance(t *testing.T, app *fiber.App) map[string]interface{} {
	t.Helper()
	resp, body := doJSON(t, app, nethttp.MethodPost, "/grievances", createPayload())
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	return data
}

func TestCreateGrievanceEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, nethttp.MethodPost, "/grievances", createPayload())
	assert.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	assert.Equal(t, float64(201), body["statusCode"])

	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["id"])
	assert.Equal(t, "Pending", data["status"])
	assert.Equal(t, "Water Supply", data["category"])
	assert.Equal(t, "High", data["priority"])
	assert.Regexp(t, `^GR\d{8}$`, data["ticketNumber"])

	// CORS headers ride on every response.
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestCreateGrievanceValidationErrors(t *testing.T) {
	app := newTestApp(t)

	payload := createPayload()
	delete(payload, "citizenPhone")
	resp, body := doJSON(t, app, nethttp.MethodPost, "/grievances", payload)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, body["error"])

	payload = createPayload()
	payload["description"] = "too short"
	resp, body = doJSON(t, app, nethttp.MethodPost, "/grievances", payload)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, body["error"])
}

func TestListGrievancesEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, nethttp.MethodGet, "/grievances", nil)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Empty(t, body["data"])

	createGrievance(t, app)
	createGrievance(t, app)

	resp, body = doJSON(t, app, nethttp.MethodGet, "/grievances", nil)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	items, ok := body["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 2)
}

func TestGetGrievanceEndpoint(t *testing.T) {
	app := newTestApp(t)
	created := createGrievance(t, app)
	id := created["id"].(string)

	resp, body := doJSON(t, app, nethttp.MethodGet, "/grievances/"+id, nil)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, id, data["id"])

	resp, body = doJSON(t, app, nethttp.MethodGet, "/grievances/grv_absent", nil)
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Grievance not found", body["error"])
}

func TestUpdateGrievanceEndpoint(t *testing.T) {
	app := newTestApp(t)
	created := createGrievance(t, app)
	id := created["id"].(string)

	resp, body := doJSON(t, app, nethttp.MethodPut, "/grievances/"+id, map[string]interface{}{
		"status":       "In Progress",
		"adminRemarks": "team dispatched",
	})
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "In Progress", data["status"])
	assert.Equal(t, "team dispatched", data["adminRemarks"])

	// Missing status is a 400.
	resp, body = doJSON(t, app, nethttp.MethodPut, "/grievances/"+id, map[string]interface{}{
		"adminRemarks": "no status given",
	})
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, body["error"])

	// Unknown id is a 404.
	resp, _ = doJSON(t, app, nethttp.MethodPut, "/grievances/grv_absent", map[string]interface{}{
		"status": "Resolved",
	})
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
}

func TestDeleteGrievanceEndpoint(t *testing.T) {
	app := newTestApp(t)
	created := createGrievance(t, app)
	id := created["id"].(string)

	resp, body := doJSON(t, app, nethttp.MethodDelete, "/grievances/"+id, nil)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Grievance deleted successfully", data["message"])

	resp, _ = doJSON(t, app, nethttp.MethodGet, "/grievances/"+id, nil)
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, nethttp.MethodDelete, "/grievances/"+id, nil)
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)
	resp, body := doJSON(t, app, nethttp.MethodGet, "/health", nil)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestUnmatchedRoute(t *testing.T) {
	app := newTestApp(t)
	resp, body := doJSON(t, app, nethttp.MethodGet, "/nope", nil)
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Route not found", body["error"])
}

func TestPreflightShortCircuits(t *testing.T) {
	app := newTestApp(t)
	req := httptest.NewRequest(nethttp.MethodOptions, "/grievances", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "POST")
}
