package db

import "sync"

type ConnectionStatus string

const (
	StatusDisconnected ConnectionStatus = "Disconnected"
	StatusConnected    ConnectionStatus = "Connected"
	StatusFailed       ConnectionStatus = "Failed"
	StatusError        ConnectionStatus = "Error"
)

// StatusTracker holds the advisory state of the link to the storage
// backend. It is written by the connect goroutine and the driver's server
// monitor callbacks, and read by the status endpoint.
type StatusTracker struct {
	mu      sync.RWMutex
	status  ConnectionStatus
	lastErr string
}

func NewStatusTracker() *StatusTracker {
	return &StatusTracker{status: StatusDisconnected}
}

func (t *StatusTracker) SetConnected() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = StatusConnected
	t.lastErr = ""
}

func (t *StatusTracker) SetDisconnected() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = StatusDisconnected
}

// SetFailed marks the initial connect as failed. The status stays Failed
// until a successful heartbeat promotes it back to Connected.
func (t *StatusTracker) SetFailed(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = StatusFailed
	if err != nil {
		t.lastErr = err.Error()
	}
}

// SetError records an asynchronous connection error. A Failed status is
// sticky: later monitor errors refresh the message but keep Failed.
func (t *StatusTracker) SetError(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		t.lastErr = err.Error()
	}
	if t.status == StatusFailed {
		return
	}
	t.status = StatusError
}

// Snapshot returns the current status and the last error message ("" when
// none has been recorded).
func (t *StatusTracker) Snapshot() (ConnectionStatus, string) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status, t.lastErr
}
