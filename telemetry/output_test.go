package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/aquarium/config"
)

func TestNewOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("got (%v, %v), want (nil, nil)", om, err)
	}
	// A nil manager is a no-op
	if err := om.WriteSummary(SummaryRecord{}); err != nil {
		t.Errorf("WriteSummary on nil manager: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil manager: %v", err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}
	if om.RunID() == "" {
		t.Error("expected a run id")
	}

	for i := 1; i <= 2; i++ {
		if err := om.WriteSummary(SummaryRecord{WindowEndTick: i, Items: i}); err != nil {
			t.Fatalf("WriteSummary: %v", err)
		}
		if err := om.WriteTrace([]TraceRecord{{Tick: i, Type: "beta"}, {Tick: i, Type: "castle"}}); err != nil {
			t.Fatalf("WriteTrace: %v", err)
		}
	}
	if err := om.WriteConfig(config.Default()); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	summary := readLines(t, filepath.Join(dir, "summary.csv"))
	if len(summary) != 3 {
		t.Fatalf("summary.csv has %d lines, want header + 2", len(summary))
	}
	if !strings.HasPrefix(summary[0], "run_id,window_end,sim_time,items") {
		t.Errorf("unexpected summary header %q", summary[0])
	}
	if !strings.HasPrefix(summary[1], om.RunID()+",1,") {
		t.Errorf("summary row %q not stamped with run id", summary[1])
	}

	trace := readLines(t, filepath.Join(dir, "trace.csv"))
	if len(trace) != 5 {
		t.Fatalf("trace.csv has %d lines, want header + 4", len(trace))
	}
	if !strings.HasPrefix(trace[0], "tick,sim_time,index,entity,type") {
		t.Errorf("unexpected trace header %q", trace[0])
	}

	if _, err := config.Load(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("written config does not load: %v", err)
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}
