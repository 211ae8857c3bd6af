// Package monitoring tracks per-action outcomes and backs the health
// endpoints.
package monitoring

import (
	"log/slog"
	"sync"
	"time"
)

type Monitor struct {
	mu         sync.Mutex
	successes  int
	failures   int
	lastAction string
	lastOK     bool
	lastTime   time.Time
	log        *slog.Logger
}

func NewMonitor(log *slog.Logger) *Monitor {
	return &Monitor{log: log}
}

func (m *Monitor) RecordSuccess(action string, duration time.Duration) {
	m.mu.Lock()
	m.successes++
	m.lastAction = action
	m.lastOK = true
	m.lastTime = time.Now()
	m.mu.Unlock()

	m.log.Info("action completed", "action", action, "took", duration)
}

func (m *Monitor) RecordFailure(action string, err error, duration time.Duration) {
	m.mu.Lock()
	m.failures++
	m.lastAction = action
	m.lastOK = false
	m.lastTime = time.Now()
	m.mu.Unlock()

	m.log.Error("action failed", "action", action, "err", err, "took", duration)
}

// IsHealthy reports whether the most recent action succeeded. A service with
// no actions yet is healthy.
func (m *Monitor) IsHealthy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastTime.IsZero() || m.lastOK
}

// Status is the payload of the status endpoint.
type Status struct {
	Successes  int        `json:"successes"`
	Failures   int        `json:"failures"`
	LastAction string     `json:"last_action,omitempty"`
	LastOK     bool       `json:"last_ok"`
	LastTime   *time.Time `json:"last_time,omitempty"`
}

func (m *Monitor) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := Status{
		Successes:  m.successes,
		Failures:   m.failures,
		LastAction: m.lastAction,
		LastOK:     m.lastOK,
	}
	if !m.lastTime.IsZero() {
		t := m.lastTime
		s.LastTime = &t
	}
	return s
}
