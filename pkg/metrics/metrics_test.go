package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordersAreNoOpsWhileDisabled(t *testing.T) {
	if Enabled() {
		t.Skip("metrics already enabled by another test")
	}

	// Must not panic with no collectors registered.
	RecordCacheLookup(TierLocal, true)
	RecordPoolGet(false)
	ObserveRender(0.001, 512)
	ObserveParse(0.001)
	RecordParseError()
}

func TestEnableAndRecord(t *testing.T) {
	registry := prometheus.NewRegistry()
	Enable(WithRegistry(registry), WithNamespace("test"))

	if !Enabled() {
		t.Fatal("Enabled() = false after Enable")
	}

	RecordCacheLookup(TierLocal, true)
	RecordCacheLookup(TierLocal, true)
	RecordCacheLookup(TierShared, false)
	RecordPoolGet(true)
	ObserveRender(0.002, 1024)
	ObserveParse(0.001)
	RecordParseError()

	hits := testutil.ToFloat64(global.cacheLookups.WithLabelValues(TierLocal, "hit"))
	if hits != 2 {
		t.Errorf("local hits = %v, want 2", hits)
	}
	misses := testutil.ToFloat64(global.cacheLookups.WithLabelValues(TierShared, "miss"))
	if misses != 1 {
		t.Errorf("shared misses = %v, want 1", misses)
	}
	if got := testutil.ToFloat64(global.poolGets.WithLabelValues("hit")); got != 1 {
		t.Errorf("pool hits = %v, want 1", got)
	}
	if got := testutil.ToFloat64(global.parseErrors); got != 1 {
		t.Errorf("parse errors = %v, want 1", got)
	}
}

func TestEnableIsOnce(t *testing.T) {
	registry := prometheus.NewRegistry()
	Enable(WithRegistry(registry))
	first := global

	// A second Enable must not re-register or replace collectors.
	Enable(WithRegistry(prometheus.NewRegistry()))
	if global != first {
		t.Error("second Enable replaced collectors")
	}
}

func TestOutcome(t *testing.T) {
	if outcome(true) != "hit" || outcome(false) != "miss" {
		t.Error("unexpected outcome labels")
	}
}
