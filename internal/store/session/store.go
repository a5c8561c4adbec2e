// Package session owns the current user's identity and profile: at most
// one authenticated identity at a time, persisted across restarts on the
// same device through the durable local record.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"hackteam-be/internal/entity"
	"hackteam-be/internal/localrecord"
	"hackteam-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// TopicUpdates carries session snapshots to subscribers (the view layer
// re-renders on every state change).
const TopicUpdates = "session.updates"

// RecordKey is the fixed key the current user is persisted under.
const RecordKey = "current_user"

var (
	// ErrNoActiveSession is returned by profile mutations when nobody is
	// logged in. Callers must ensure a user is logged in first.
	ErrNoActiveSession = errors.New("no active session")

	// ErrRecordNotPersisted signals that the in-memory state was updated
	// but the durable record write failed. The session stays usable for
	// the current process lifetime; it just will not survive a restart.
	ErrRecordNotPersisted = errors.New("session record not persisted")
)

// Update is the payload published on TopicUpdates.
type Update struct {
	Type string       `json:"type"`
	User *entity.User `json:"user,omitempty"`
}

// Store holds the current user and writes every mutation through to the
// durable local record.
type Store struct {
	mu        sync.RWMutex
	current   *entity.User
	records   localrecord.Store
	publisher message.Publisher
	logger    logger.ILogger
}

// New loads a previously persisted user, if any, and returns the store.
func New(records localrecord.Store, publisher message.Publisher, log logger.ILogger) (*Store, error) {
	s := &Store{
		records:   records,
		publisher: publisher,
		logger:    log,
	}

	var stored entity.User
	found, err := records.Load(RecordKey, &stored)
	if err != nil {
		// A corrupt or unreadable record must not brick the app; start
		// with an empty session and report it.
		log.Warn("SessionStore", "Failed to load persisted session", map[string]interface{}{"error": err.Error()})
		return s, nil
	}
	if found {
		s.current = &stored
	}
	return s, nil
}

// Current returns a snapshot of the logged-in user, or nil.
func (s *Store) Current() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Signup creates a fresh profile, makes it current and persists it.
// The password hash is computed by the caller; the store never reads it back.
func (s *Store) Signup(in SignupInput, passwordHash *string) (*entity.User, error) {
	s.mu.Lock()
	user := newUserFromSignup(in, passwordHash, time.Now())
	s.current = user
	s.mu.Unlock()

	err := s.persist(user)
	s.notify("session_started", user)
	return user.Clone(), err
}

// Login replaces the current user with the fixed demonstration profile
// carrying the supplied email. This is a documented demo-mode stub: no
// credential check is performed.
func (s *Store) Login(email string) (*entity.User, error) {
	s.mu.Lock()
	user := demoUser(email, time.Now())
	s.current = user
	s.mu.Unlock()

	err := s.persist(user)
	s.notify("session_started", user)
	return user.Clone(), err
}

// Logout clears the current user and removes the persisted record.
func (s *Store) Logout() error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	s.notify("session_ended", nil)
	if err := s.records.Remove(RecordKey); err != nil {
		return fmt.Errorf("%w: %v", ErrRecordNotPersisted, err)
	}
	return nil
}

// UpdateProfile shallow-merges the partial update into the current user
// and persists the result.
func (s *Store) UpdateProfile(update ProfileUpdate) (*entity.User, error) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return nil, ErrNoActiveSession
	}
	user := mergeProfile(s.current, update, time.Now())
	s.current = user
	s.mu.Unlock()

	err := s.persist(user)
	s.notify("profile_updated", user)
	return user.Clone(), err
}

// AddSkill appends a skill unless it is already present (exact match).
func (s *Store) AddSkill(skill string) (*entity.User, error) {
	return s.mutateSkills(func(u *entity.User, now time.Time) *entity.User {
		return addSkill(u, skill, now)
	})
}

// RemoveSkill removes a skill by exact value; an absent value is a no-op.
func (s *Store) RemoveSkill(skill string) (*entity.User, error) {
	return s.mutateSkills(func(u *entity.User, now time.Time) *entity.User {
		return removeSkill(u, skill, now)
	})
}

func (s *Store) mutateSkills(apply func(*entity.User, time.Time) *entity.User) (*entity.User, error) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return nil, ErrNoActiveSession
	}
	before := s.current
	user := apply(before, time.Now())
	s.current = user
	s.mu.Unlock()

	if user == before {
		// No change, nothing to persist or announce.
		return user.Clone(), nil
	}

	err := s.persist(user)
	s.notify("profile_updated", user)
	return user.Clone(), err
}

func (s *Store) persist(user *entity.User) error {
	if err := s.records.Save(RecordKey, user); err != nil {
		s.logger.Warn("SessionStore", "Failed to persist session record", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("%w: %v", ErrRecordNotPersisted, err)
	}
	return nil
}

func (s *Store) notify(updateType string, user *entity.User) {
	if s.publisher == nil {
		return
	}
	payload, err := json.Marshal(Update{Type: updateType, User: user.Clone()})
	if err != nil {
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.publisher.Publish(TopicUpdates, msg); err != nil {
		s.logger.Warn("SessionStore", "Failed to publish session update", map[string]interface{}{"error": err.Error()})
	}
}
