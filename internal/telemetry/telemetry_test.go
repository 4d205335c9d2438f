package telemetry

import (
	"testing"
	"time"
)

func TestSeededSimulatorRepeats(t *testing.T) {
	a, b := NewSimulator(42), NewSimulator(42)
	for i := 0; i < 50; i++ {
		ra, rb := a.Next(), b.Next()
		ra.TakenAt, rb.TakenAt = time.Time{}, time.Time{}
		if ra != rb {
			t.Fatalf("step %d: %+v vs %+v", i, ra, rb)
		}
	}
}

func TestReadingsStayInBand(t *testing.T) {
	s := NewSimulator(7)
	prev := Reading{Battery: 100}
	for i := 0; i < 500; i++ {
		r := s.Next()
		if r.HeartRate < 58 || r.HeartRate > 96 {
			t.Fatalf("step %d: heart rate %d out of band", i, r.HeartRate)
		}
		if r.Steps < prev.Steps {
			t.Fatalf("step %d: steps went backwards (%d -> %d)", i, prev.Steps, r.Steps)
		}
		if r.Battery > prev.Battery {
			t.Fatalf("step %d: battery charged itself (%d -> %d)", i, prev.Battery, r.Battery)
		}
		if r.Battery < 1 || r.Battery > 100 {
			t.Fatalf("step %d: battery %d out of range", i, r.Battery)
		}
		prev = r
	}
}

func TestReadingUsesInjectedClock(t *testing.T) {
	s := NewSimulator(1)
	fixed := time.Date(2026, 6, 1, 9, 30, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	if got := s.Next().TakenAt; !got.Equal(fixed) {
		t.Errorf("expected %v, got %v", fixed, got)
	}
}

func TestZeroSeedStillRuns(t *testing.T) {
	s := NewSimulator(0)
	r := s.Next()
	if r.Battery == 0 {
		t.Error("expected a live battery on first reading")
	}
}
