package serve

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomui/loom/internal/registry"
)

func testServer() *Server {
	return New(registry.Default())
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := get(t, testServer().Handler(), "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestManifest(t *testing.T) {
	rec := get(t, testServer().Handler(), "/registry.json")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var manifest registry.Manifest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &manifest))
	assert.Equal(t, registry.CatalogVersion, manifest.Version)
	assert.Len(t, manifest.Components, len(registry.Default().Names()))
}

func TestComponentFile(t *testing.T) {
	rec := get(t, testServer().Handler(), "/components/button/button.go")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "func Button(")
	assert.Contains(t, rec.Body.String(), "package ui")
}

func TestComponentFile_UnknownComponent(t *testing.T) {
	rec := get(t, testServer().Handler(), "/components/ghost/ghost.go")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestComponentFile_FileNotInComponent(t *testing.T) {
	// dialog.go exists in the payload but belongs to dialog, not button.
	rec := get(t, testServer().Handler(), "/components/button/dialog.go")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	handler := testServer().Handler()

	// Generate some traffic first.
	get(t, handler, "/registry.json")
	get(t, handler, "/components/button/button.go")

	rec := get(t, handler, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "loom_registry_requests_total")
	assert.Contains(t, body, "loom_registry_request_duration_seconds")
	assert.True(t, strings.Contains(body, `loom_registry_component_downloads_total{component="button"} 1`),
		"button download should be counted:\n%s", body)
}

func TestMetrics_StatusLabels(t *testing.T) {
	handler := testServer().Handler()

	get(t, handler, "/components/ghost/ghost.go")

	rec := get(t, handler, "/metrics")
	assert.Contains(t, rec.Body.String(), `status="4xx"`)
}
