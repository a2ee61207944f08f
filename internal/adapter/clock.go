package adapter

import "time"

// Clock abstracts the time reads the emitter's cursor save policy depends on
//
//go:generate mockgen -source=clock.go -destination=../mocks/clock.go -package=mocks -mock_names=Clock=MockClock
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// RealClock reads the wall clock
type RealClock struct{}

// NewClock returns a wall-clock backed Clock
func NewClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

func (c *RealClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}
