package session

import "sync"

// Manager hands out one controller per user. Controllers live for the
// process lifetime; sessions inside them come and go. Attempts are not
// persisted anywhere, a restart forgets them all.
type Manager struct {
	source QuestionSource
	events EventSink

	mu     sync.Mutex
	byUser map[string]*Controller
}

func NewManager(source QuestionSource, events EventSink) *Manager {
	return &Manager{
		source: source,
		events: events,
		byUser: make(map[string]*Controller),
	}
}

// Controller returns the controller for a user, creating it on first
// use.
func (m *Manager) Controller(userID string) *Controller {
	m.mu.Lock()
	defer m.mu.Unlock()
	ctrl, ok := m.byUser[userID]
	if !ok {
		ctrl = NewController(userID, m.source, m.events)
		m.byUser[userID] = ctrl
	}
	return ctrl
}

// Shutdown stops every running timer.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ctrl := range m.byUser {
		ctrl.Close()
	}
}
