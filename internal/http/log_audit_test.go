package handlers_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Catalog mutations leave an audit trail.
func TestAuditLogsSubmitAndDelete(t *testing.T) {
	app, _ := newApp(t, false)

	entries := captureLogs(t, func() {
		body, ct := multipartBody(t, map[string]string{
			"productName": "Kale", "category": "VEGETABLES", "quantity": "1", "wishedPrice": "2",
		}, filePart{name: "a.png", data: pngBytes})
		req := httptest.NewRequest("POST", "/api/v1/products", body)
		req.Header.Set("Content-Type", ct)
		_, _ = app.Test(req)
		_, _ = app.Test(httptest.NewRequest("DELETE", "/api/v1/products/1?confirm=true", nil))
	})

	e, ok := hasAction(entries, "product.submit")
	require.True(t, ok, "expected product.submit log")
	assert.Equal(t, "audit", e.Kind)
	assert.Equal(t, "1", e.Fields["product_id"])

	e, ok = hasAction(entries, "product.delete")
	require.True(t, ok, "expected product.delete log")
	assert.Equal(t, "audit", e.Kind)
}

func TestSecurityLogsRejectedFilter(t *testing.T) {
	app, _ := newApp(t, true)

	entries := captureLogs(t, func() {
		_, _ = app.Test(httptest.NewRequest("GET", "/api/v1/products?status=Nope", nil))
	})
	e, ok := hasAction(entries, "validation.fail")
	require.True(t, ok, "expected validation.fail log")
	assert.Equal(t, "security", e.Kind)
	assert.Equal(t, "warn", e.Level)
	assert.Equal(t, "status", e.Fields["field"])
}

func TestInvalidSubmissionLogged(t *testing.T) {
	app, _ := newApp(t, false)

	entries := captureLogs(t, func() {
		body, ct := multipartBody(t, map[string]string{"productName": "Kale"})
		req := httptest.NewRequest("POST", "/api/v1/products", body)
		req.Header.Set("Content-Type", ct)
		_, _ = app.Test(req)
	})
	e, ok := hasAction(entries, "product.submit.invalid")
	require.True(t, ok)
	fields, _ := e.Fields["fields"].(map[string]any)
	assert.Contains(t, fields, "images")
	assert.NotContains(t, fields, "productName")
}
