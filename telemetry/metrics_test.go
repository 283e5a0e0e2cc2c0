package telemetry

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics(t *testing.T) {
	m := NewMetrics()

	m.Tick()
	m.Tick()
	if got := testutil.ToFloat64(m.ticks); got != 2 {
		t.Errorf("ticks = %v, want 2", got)
	}

	m.SetCensus(map[string]int{"beta": 3, "castle": 1})
	if got := testutil.ToFloat64(m.items.WithLabelValues("beta")); got != 3 {
		t.Errorf("beta gauge = %v, want 3", got)
	}
	m.SetCensus(map[string]int{"castle": 2})
	if got := testutil.CollectAndCount(m.items); got != 1 {
		t.Errorf("items series = %d, want 1 after reset", got)
	}

	m.Persist("save", nil)
	m.Persist("load", errors.New("boom"))
	if got := testutil.ToFloat64(m.persist.WithLabelValues("save", "ok")); got != 1 {
		t.Errorf("save ok = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.persist.WithLabelValues("load", "error")); got != 1 {
		t.Errorf("load error = %v, want 1", got)
	}
}

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics()
	m.Tick()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "aquarium_ticks_total 1") {
		t.Errorf("metrics output missing tick counter:\n%s", body)
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.Tick()
	m.SetCensus(map[string]int{"beta": 1})
	m.Persist("save", nil)
}
