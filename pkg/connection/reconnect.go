package connection

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Manager errors.
var (
	ErrManagerClosed    = errors.New("connection manager closed")
	ErrAlreadyConnected = errors.New("already connected")
)

// reconnectDialTimeout bounds each reconnection attempt.
const reconnectDialTimeout = 30 * time.Second

// State is the manager's view of the session.
type State uint8

const (
	// StateDisconnected indicates no active session.
	StateDisconnected State = iota

	// StateConnecting indicates a connect attempt in progress.
	StateConnecting

	// StateConnected indicates an active session.
	StateConnected

	// StateReconnecting indicates automatic reconnection in progress.
	StateReconnecting

	// StateClosed indicates the manager was shut down.
	StateClosed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "DISCONNECTED"
	case StateConnecting:
		return "CONNECTING"
	case StateConnected:
		return "CONNECTED"
	case StateReconnecting:
		return "RECONNECTING"
	case StateClosed:
		return "CLOSED"
	default:
		return "UNKNOWN"
	}
}

// ConnectFunc dials the instrument and installs a fresh session in the
// application. It returns nil once the session is usable.
type ConnectFunc func(ctx context.Context) error

// Manager supervises an instrument session and reconnects it with
// backoff after a loss. Callbacks run on the manager's goroutines and
// must not block.
type Manager struct {
	mu sync.RWMutex

	state     State
	backoff   *Backoff
	connectFn ConnectFunc

	autoReconnect bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	reconnectCh chan struct{}

	onStateChange  func(oldState, newState State)
	onConnected    func()
	onReconnecting func(attempt int, delay time.Duration)
}

// NewManager returns a manager with default backoff timing.
func NewManager(connectFn ConnectFunc) *Manager {
	return NewManagerWithBackoff(connectFn, NewBackoff())
}

// NewManagerWithBackoff returns a manager with custom backoff timing.
func NewManagerWithBackoff(connectFn ConnectFunc, backoff *Backoff) *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		state:         StateDisconnected,
		backoff:       backoff,
		connectFn:     connectFn,
		autoReconnect: true,
		ctx:           ctx,
		cancel:        cancel,
		reconnectCh:   make(chan struct{}, 1),
	}
}

// State returns the current state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// IsConnected reports whether a session is active.
func (m *Manager) IsConnected() bool {
	return m.State() == StateConnected
}

// SetAutoReconnect enables or disables automatic reconnection.
func (m *Manager) SetAutoReconnect(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.autoReconnect = enabled
}

// Connect performs the initial connect. It does not retry; retries are
// the reconnect loop's job.
func (m *Manager) Connect(ctx context.Context) error {
	m.mu.Lock()
	switch m.state {
	case StateConnected:
		m.mu.Unlock()
		return ErrAlreadyConnected
	case StateClosed:
		m.mu.Unlock()
		return ErrManagerClosed
	}
	oldState := m.state
	m.state = StateConnecting
	m.mu.Unlock()
	m.notifyStateChange(oldState, StateConnecting)

	if err := m.connectFn(ctx); err != nil {
		m.mu.Lock()
		m.state = StateDisconnected
		m.mu.Unlock()
		m.notifyStateChange(StateConnecting, StateDisconnected)
		return err
	}

	m.markConnected(StateConnecting)
	return nil
}

// ConnectionLost tells the manager the session dropped. With automatic
// reconnection enabled this schedules a reconnect; otherwise the
// manager just goes idle.
func (m *Manager) ConnectionLost() {
	m.mu.Lock()
	if m.state != StateConnected {
		m.mu.Unlock()
		return
	}
	oldState := m.state
	autoReconnect := m.autoReconnect
	if autoReconnect {
		m.state = StateReconnecting
	} else {
		m.state = StateDisconnected
	}
	newState := m.state
	m.mu.Unlock()

	m.notifyStateChange(oldState, newState)

	if autoReconnect {
		select {
		case m.reconnectCh <- struct{}{}:
		default:
		}
	}
}

// StartReconnectLoop starts the background reconnect goroutine. Call
// once, before the first ConnectionLost.
func (m *Manager) StartReconnectLoop() {
	m.wg.Add(1)
	go m.reconnectLoop()
}

// Close shuts the manager down and waits for the reconnect goroutine.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.state == StateClosed {
		m.mu.Unlock()
		return
	}
	oldState := m.state
	m.state = StateClosed
	m.mu.Unlock()

	m.notifyStateChange(oldState, StateClosed)
	m.cancel()
	m.wg.Wait()
}

// OnStateChange registers a state-change callback.
func (m *Manager) OnStateChange(fn func(oldState, newState State)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onStateChange = fn
}

// OnConnected registers a callback for each successful (re)connect.
func (m *Manager) OnConnected(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onConnected = fn
}

// OnReconnecting registers a callback fired before each backoff wait.
func (m *Manager) OnReconnecting(fn func(attempt int, delay time.Duration)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onReconnecting = fn
}

func (m *Manager) markConnected(oldState State) {
	m.mu.Lock()
	m.state = StateConnected
	m.backoff.Reset()
	onConnected := m.onConnected
	m.mu.Unlock()

	m.notifyStateChange(oldState, StateConnected)
	if onConnected != nil {
		onConnected()
	}
}

func (m *Manager) notifyStateChange(oldState, newState State) {
	m.mu.RLock()
	fn := m.onStateChange
	m.mu.RUnlock()
	if fn != nil {
		fn(oldState, newState)
	}
}

func (m *Manager) reconnectLoop() {
	defer m.wg.Done()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-m.reconnectCh:
			m.attemptReconnect()
		}
	}
}

func (m *Manager) attemptReconnect() {
	for {
		switch m.State() {
		case StateClosed, StateConnected:
			return
		}

		delay := m.backoff.Next()

		m.mu.RLock()
		onReconnecting := m.onReconnecting
		m.mu.RUnlock()
		if onReconnecting != nil {
			onReconnecting(m.backoff.Attempts(), delay)
		}

		select {
		case <-m.ctx.Done():
			return
		case <-time.After(delay):
		}

		if s := m.State(); s == StateClosed || s == StateConnected {
			return
		}

		ctx, cancel := context.WithTimeout(m.ctx, reconnectDialTimeout)
		err := m.connectFn(ctx)
		cancel()

		if err == nil {
			m.markConnected(StateReconnecting)
			return
		}
	}
}
