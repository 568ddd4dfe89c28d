package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Event identifies a discrete intersection test performed by the core
type Event int

const (
	RayBox Event = iota
	RaySphere
	RayTriangle

	numEvents
)

// String returns the display name of the event
func (e Event) String() string {
	switch e {
	case RayBox:
		return "Ray-Box"
	case RaySphere:
		return "Ray-Sphere"
	case RayTriangle:
		return "Ray-Triangle"
	default:
		return "Unknown"
	}
}

// Counters holds atomic event counts and is safe for concurrent use
type Counters struct {
	counts [numEvents]atomic.Int64
}

// NewCounters creates a zeroed set of counters
func NewCounters() *Counters {
	return &Counters{}
}

// Record increments the counter for the event
func (c *Counters) Record(e Event) {
	c.counts[e].Add(1)
}

// Count returns the current count for the event
func (c *Counters) Count(e Event) int64 {
	return c.counts[e].Load()
}

// Reset zeroes all counters
func (c *Counters) Reset() {
	for i := range c.counts {
		c.counts[i].Store(0)
	}
}

// sink is the installed counter set; nil disables event recording
var sink atomic.Pointer[Counters]

// Install makes c the process-wide event sink. Passing nil disables recording.
func Install(c *Counters) {
	sink.Store(c)
}

// Installed returns the active sink, or nil when recording is disabled
func Installed() *Counters {
	return sink.Load()
}

// Record forwards the event to the installed sink, if any
func Record(e Event) {
	if c := sink.Load(); c != nil {
		c.Record(e)
	}
}

// Timer is a named wall-clock phase
type Timer struct {
	Name  string
	Start time.Time
	Stop  time.Time
}

// Elapsed returns the duration of the phase
func (t Timer) Elapsed() time.Duration {
	return t.Stop.Sub(t.Start)
}

// Timers records sequential named phases such as "build bvh" and "render"
type Timers struct {
	mu     sync.Mutex
	timers []Timer
	now    func() time.Time
}

// NewTimers creates an empty timer list
func NewTimers() *Timers {
	return &Timers{now: time.Now}
}

// StartTimer opens a new phase; the previous phase should already be stopped
func (t *Timers) StartTimer(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	t.timers = append(t.timers, Timer{Name: name, Start: now, Stop: now})
}

// StopTimer closes the most recently started phase
func (t *Timers) StopTimer() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.timers) == 0 {
		return
	}
	t.timers[len(t.timers)-1].Stop = t.now()
}

// Timers returns a copy of the recorded phases
func (t *Timers) Timers() []Timer {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Timer, len(t.timers))
	copy(out, t.timers)
	return out
}
