package app

import (
	"sync/atomic"
	"time"
)

// Metrics tracks editor performance counters.
type Metrics struct {
	// Frame timing
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	lastFrameNs  atomic.Int64

	// Event processing
	eventCount atomic.Uint64

	// Grid edits that reached the history log
	editCount atomic.Uint64
	undoCount atomic.Uint64
	redoCount atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordFrame records frame timing.
func (m *Metrics) RecordFrame(duration time.Duration) {
	m.frameCount.Add(1)
	m.frameTotalNs.Add(duration.Nanoseconds())
	m.lastFrameNs.Store(duration.Nanoseconds())
}

// RecordEvent records one processed terminal event.
func (m *Metrics) RecordEvent() {
	m.eventCount.Add(1)
}

// RecordEdit records one committed grid edit.
func (m *Metrics) RecordEdit() {
	m.editCount.Add(1)
}

// RecordUndo records an undo step.
func (m *Metrics) RecordUndo() {
	m.undoCount.Add(1)
}

// RecordRedo records a redo step.
func (m *Metrics) RecordRedo() {
	m.redoCount.Add(1)
}

// Snapshot returns a point-in-time view of the counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	frameCount := m.frameCount.Load()

	var avgFrameNs int64
	if frameCount > 0 {
		avgFrameNs = m.frameTotalNs.Load() / int64(frameCount)
	}

	return MetricsSnapshot{
		Uptime:         time.Since(m.startTime),
		FrameCount:     frameCount,
		AvgFrameTimeNs: avgFrameNs,
		LastFrameNs:    m.lastFrameNs.Load(),
		EventCount:     m.eventCount.Load(),
		EditCount:      m.editCount.Load(),
		UndoCount:      m.undoCount.Load(),
		RedoCount:      m.redoCount.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime         time.Duration
	FrameCount     uint64
	AvgFrameTimeNs int64
	LastFrameNs    int64
	EventCount     uint64
	EditCount      uint64
	UndoCount      uint64
	RedoCount      uint64
}

// AvgFPS returns the average frames per second.
func (s MetricsSnapshot) AvgFPS() float64 {
	if s.AvgFrameTimeNs == 0 {
		return 0
	}
	return 1e9 / float64(s.AvgFrameTimeNs)
}
