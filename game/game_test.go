package game

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/telemetry"
)

func newTestGame(t *testing.T, outputDir string, metrics *telemetry.Metrics) *Game {
	t.Helper()
	cfg := config.Default()
	cfg.Telemetry.SummaryEvery = 4
	g, err := NewGameWithOptions(Options{
		Config:    cfg,
		Seed:      99,
		OutputDir: outputDir,
		Trace:     true,
		Metrics:   metrics,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("NewGameWithOptions: %v", err)
	}
	return g
}

func TestAddItems(t *testing.T) {
	g := newTestGame(t, "", nil)

	err := g.AddItems([]string{"beta", "whale", "castle"})
	if err == nil || !strings.Contains(err.Error(), "whale") {
		t.Errorf("expected error naming the unknown type, got %v", err)
	}
	if got := g.Aquarium().Len(); got != 2 {
		t.Errorf("got %d items, want 2", got)
	}
}

func TestHeadlessRunWritesOutputs(t *testing.T) {
	dir := t.TempDir()
	metrics := telemetry.NewMetrics()
	g := newTestGame(t, dir, metrics)

	if err := g.AddItems([]string{"beta", "sparty", "castle"}); err != nil {
		t.Fatalf("AddItems: %v", err)
	}
	for i := 0; i < 10; i++ {
		g.UpdateHeadless()
	}
	if g.Tick() != 10 {
		t.Errorf("tick = %d, want 10", g.Tick())
	}
	if err := g.Unload(); err != nil {
		t.Fatalf("Unload: %v", err)
	}

	// Windows end at 4 and 8, plus the partial window at 10
	if got := countLines(t, filepath.Join(dir, "summary.csv")); got != 4 {
		t.Errorf("summary.csv has %d lines, want header + 3", got)
	}
	if got := countLines(t, filepath.Join(dir, "trace.csv")); got != 31 {
		t.Errorf("trace.csv has %d lines, want header + 30", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config snapshot missing: %v", err)
	}

	body := scrape(t, metrics)
	if !strings.Contains(body, "aquarium_ticks_total 10") {
		t.Errorf("metrics missing tick count:\n%s", body)
	}
	if !strings.Contains(body, `aquarium_items{type="castle"} 1`) {
		t.Errorf("metrics missing castle gauge:\n%s", body)
	}
}

func TestSaveLoad(t *testing.T) {
	metrics := telemetry.NewMetrics()
	g := newTestGame(t, "", metrics)
	if err := g.AddItems([]string{"stinky", "castle"}); err != nil {
		t.Fatalf("AddItems: %v", err)
	}

	path := filepath.Join(t.TempDir(), "tank.aqua")
	if err := g.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	other := newTestGame(t, "", metrics)
	if err := other.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := other.Aquarium().Len(); got != 2 {
		t.Errorf("loaded %d items, want 2", got)
	}

	if err := other.Load(filepath.Join(t.TempDir(), "missing.aqua")); err == nil {
		t.Error("expected error loading a missing file")
	}
	if got := other.Aquarium().Len(); got != 2 {
		t.Errorf("failed load changed the aquarium to %d items", got)
	}

	body := scrape(t, metrics)
	for _, want := range []string{
		`aquarium_persist_total{op="save",result="ok"} 1`,
		`aquarium_persist_total{op="load",result="ok"} 1`,
		`aquarium_persist_total{op="load",result="error"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics missing %q:\n%s", want, body)
		}
	}
}

func countLines(t *testing.T, path string) int {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return len(strings.Split(strings.TrimRight(string(data), "\n"), "\n"))
}

func scrape(t *testing.T, m *telemetry.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	return rec.Body.String()
}
