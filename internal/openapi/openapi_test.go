package openapi

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentCoversRoutes(t *testing.T) {
	doc := NewDocument("http://localhost:3001")

	require.NotNil(t, doc)
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	require.Len(t, doc.Servers, 1)
	assert.Equal(t, "http://localhost:3001", doc.Servers[0].URL)

	expectedPaths := []string{
		"/health",
		"/openapi.json",
		"/api/register",
		"/api/login",
		"/api/logout",
		"/api/send-otp",
		"/api/verify-email",
		"/api/user/profile",
		"/api/events",
		"/api/events/{id}",
		"/api/booking",
		"/api/user/bookings",
		"/api/bookings/{id}",
		"/api/bookings/{id}/cancel",
		"/api/pay",
		"/api/payments/{id}",
		"/api/payment-methods",
		"/api/user/notifications",
		"/api/user/notifications/{id}/read",
		"/api/user/notifications/read-all",
		"/api/admin/users",
		"/api/admin/users/{id}",
		"/api/admin/bookings",
		"/api/admin/bookings/{id}",
		"/api/admin/bookings/{id}/cancel",
		"/api/admin/events",
		"/api/admin/events/{id}",
		"/api/admin/actions",
	}
	for _, path := range expectedPaths {
		assert.Contains(t, doc.Paths, path)
	}

	// No server entry when the public URL is unknown.
	assert.Empty(t, NewDocument("").Servers)
}

func TestDocumentJSONRoundTrip(t *testing.T) {
	doc := NewDocument("")

	data, err := doc.JSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "paths")
	assert.Contains(t, decoded, "components")
}

func TestDocumentExportCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "interfaces", "openapi.json")

	doc := NewDocument("")
	require.NoError(t, doc.Export(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "3.0.3", decoded["openapi"])

	// Export is idempotent.
	require.NoError(t, doc.Export(path))
}

func TestBookingOperationDocumentsIdempotencyKey(t *testing.T) {
	doc := NewDocument("")

	item, ok := doc.Paths["/api/booking"]
	require.True(t, ok)
	require.NotNil(t, item.Post)

	var found bool
	for _, p := range item.Post.Parameters {
		if p.Name == "Idempotency-Key" && p.In == "header" {
			found = true
		}
	}
	assert.True(t, found, "Idempotency-Key header must be documented")
}
