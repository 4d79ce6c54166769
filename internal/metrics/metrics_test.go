package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Submitted()
		m.Rejected("quantity", "NonPositiveValue")
		m.Deleted()
		m.Dropped(3)
	})
}

func TestRecorders(t *testing.T) {
	live := 7
	m := New(func() int { return live })

	m.Submitted()
	m.Submitted()
	m.Rejected("images", "MissingRequiredAsset")
	m.Dropped(2)
	m.Dropped(0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.submitted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejected.WithLabelValues("images", "MissingRequiredAsset")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.dropped))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.deleted))

	n, err := testutil.GatherAndCount(m.Gatherer(), "farmlink_intake_live_refs")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestHandlerServesText(t *testing.T) {
	m := New(nil)
	m.Deleted()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), "farmlink_products_deleted_total 1")
}
