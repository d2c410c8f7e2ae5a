package service

import (
	"sync"
	"time"
)

// DayGate serializes day-level transitions against ordinary mutations. Task and report
// operations share it; ResetDay holds it exclusively.
type DayGate struct {
	mu sync.RWMutex
}

func NewDayGate() *DayGate {
	return &DayGate{}
}

func (g *DayGate) shared() func() {
	g.mu.RLock()
	return g.mu.RUnlock
}

func (g *DayGate) exclusive() func() {
	g.mu.Lock()
	return g.mu.Unlock
}

// SystemClock reads wall-clock time in the configured day location.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	now := time.Now()
	if c.Location != nil {
		return now.In(c.Location)
	}
	return now
}
