// Package telemetry simulates the wellness-watch readings shown in the UI
// footer. Values are invented locally; nothing is measured and nothing
// leaves the process.
package telemetry

import (
	"math/rand"
	"time"
)

// DefaultPeriod is how often the UI asks for a fresh reading.
const DefaultPeriod = 5 * time.Second

// Reading is one simulated sample from the resident's watch.
type Reading struct {
	HeartRate int       `json:"heart_rate"`
	Steps     int       `json:"steps"`
	Battery   int       `json:"battery"`
	TakenAt   time.Time `json:"taken_at"`
}

// Simulator produces a plausible stream of readings: heart rate drifting in
// a resting band, steps accumulating, battery slowly draining. It holds no
// references to the rest of the app.
type Simulator struct {
	now     func() time.Time
	entropy *rand.Rand

	heartRate int
	steps     int
	battery   int
}

// NewSimulator seeds a simulator. A zero seed derives one from the clock.
func NewSimulator(seed int64) *Simulator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulator{
		now:       time.Now,
		entropy:   rand.New(rand.NewSource(seed)),
		heartRate: 72,
		battery:   100,
	}
}

// Next advances the simulation one step and returns the new reading.
func (s *Simulator) Next() Reading {
	s.heartRate += s.entropy.Intn(7) - 3
	if s.heartRate < 58 {
		s.heartRate = 58
	}
	if s.heartRate > 96 {
		s.heartRate = 96
	}

	s.steps += s.entropy.Intn(14)

	// Roughly one percent every four ticks, never fully dead: a flat watch
	// would blank the footer for the rest of the demo.
	if s.battery > 1 && s.entropy.Intn(4) == 0 {
		s.battery--
	}

	return Reading{
		HeartRate: s.heartRate,
		Steps:     s.steps,
		Battery:   s.battery,
		TakenAt:   s.now().UTC(),
	}
}
