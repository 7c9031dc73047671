package observability

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerPreviewRendered(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger("file-viewer", "info", &buf)
	log.WithRecord("rec-1").PreviewRendered("cbc.txt", "LAB", "lab_report", true)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "file-viewer", entry["service"])
	assert.Equal(t, "rec-1", entry["record_id"])
	assert.Equal(t, "lab_report", entry["preview_kind"])
	assert.Equal(t, true, entry["has_bill"])
	assert.Equal(t, "preview rendered", entry["message"])
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger("file-viewer", "warn", &buf)
	log.ModalClosed("a.pdf")
	log.Info("ignored")
	assert.Zero(t, buf.Len())

	log.Request("GET", "/missing", 404, time.Millisecond, "127.0.0.1")
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestLoggerUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger("file-viewer", "chatty", &buf)
	log.Debug("hidden")
	log.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestMetrics(t *testing.T) {
	m := NewMetrics(nil)
	m.PreviewsRendered.WithLabelValues("lab_report").Inc()
	m.DownloadRequests.WithLabelValues("download").Add(2)
	m.ModalCloses.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.PreviewsRendered.WithLabelValues("lab_report")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.DownloadRequests.WithLabelValues("download")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ModalCloses))

	// A second set of metrics must not collide with the first.
	assert.NotPanics(t, func() { NewMetrics(nil) })

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "file_viewer_modal_closes_total 1")
}
