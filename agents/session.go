package agents

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Message roles in a session transcript
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn in a chat session
type Message struct {
	Role    string
	Content string
}

// Session holds the ordered conversation history for one chat session.
// Sessions live for the process lifetime only; nothing is persisted.
type Session struct {
	ID        string
	Messages  []Message
	CreatedAt time.Time
}

// SessionStore is a thread-safe in-memory session registry
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionStore creates an empty store
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
	}
}

// GetOrCreate returns the session for id, creating it when unknown.
// An empty id creates a session under a fresh UUID. The second return
// value reports whether the session was created by this call.
func (s *SessionStore) GetOrCreate(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if session, ok := s.sessions[id]; ok {
			return session, false
		}
	}

	if id == "" {
		id = uuid.New().String()
	}

	session := &Session{
		ID:        id,
		CreatedAt: time.Now(),
	}
	s.sessions[id] = session
	return session, true
}

// Append records one turn on the session's transcript
func (s *SessionStore) Append(id, role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[id]; ok {
		session.Messages = append(session.Messages, Message{Role: role, Content: content})
	}
}

// History returns a copy of the session's transcript in order
func (s *SessionStore) History(id string) []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil
	}

	history := make([]Message, len(session.Messages))
	copy(history, session.Messages)
	return history
}
