// Package session holds the browser-scoped login record of the web front-end.
package session

import "sync"

// User is the session record. Token is the api bearer token used for add_review and logout.
type User struct {
	Username  string `json:"username"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Token     string `json:"token,omitempty"`
}

// Store is read and written by the views.
type Store interface {
	Login(user User) error
	Logout()
	Current() (User, bool)
}

// Memory is a process-local Store, used by tests and tooling.
type Memory struct {
	mu   sync.RWMutex
	user *User
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Login(user User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = &user
	return nil
}

func (m *Memory) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = nil
}

func (m *Memory) Current() (User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil || m.user.Username == "" {
		return User{}, false
	}
	return *m.user, true
}
