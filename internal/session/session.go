// Package session holds the client-side session state: authentication, the
// loaded dictionaries, the selected dictionary and its words. The bootstrap
// and selection procedures never return failures; they record them in the
// state for the UI to observe.
package session

import (
	"context"
	"sync"

	"easywords/internal/api"
	"easywords/internal/domain"
	"easywords/internal/repository"

	"go.uber.org/zap"
)

// UnknownErrorMessage is shown when a failure carries no message
const UnknownErrorMessage = "Unknown error"

// Status is the bootstrap state of a session
type Status string

const (
	StatusUninitialized   Status = "uninitialized"
	StatusChecking        Status = "checking"
	StatusAuthenticated   Status = "authenticated"
	StatusUnauthenticated Status = "unauthenticated"
)

// API is the part of the dictionary service client a session needs
type API interface {
	ListDictionaries(ctx context.Context, token string) ([]domain.Dictionary, error)
	ListWords(ctx context.Context, dictionaryID int, token string) ([]domain.Word, error)
}

// AuthState is delivered to subscribers when authentication or token changes
type AuthState struct {
	Authenticated bool
	Token         string
}

// State is a copy of the session state
type State struct {
	Status               Status
	Authenticated        bool
	Token                string
	Dictionaries         []domain.Dictionary
	SelectedDictionaryID int
	Words                []domain.Word
	Error                string
	Loading              bool
}

// Session owns the state of one client
type Session struct {
	api    API
	store  repository.StateRepository
	logger *zap.Logger

	mu    sync.Mutex
	state State
	// generation of the latest word fetch; older responses are dropped
	generation uint64

	subMu       sync.Mutex
	subscribers map[int]func(AuthState)
	nextSubID   int
}

// New creates a session in the Uninitialized state
func New(client API, store repository.StateRepository, logger *zap.Logger) *Session {
	return &Session{
		api:    client,
		store:  store,
		logger: logger,
		state: State{
			Status:       StatusUninitialized,
			Dictionaries: []domain.Dictionary{},
			Words:        []domain.Word{},
			Loading:      true,
		},
		subscribers: make(map[int]func(AuthState)),
	}
}

// Snapshot returns a copy of the current state
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	st.Dictionaries = append([]domain.Dictionary{}, s.state.Dictionaries...)
	st.Words = append([]domain.Word{}, s.state.Words...)
	return st
}

// Subscribe registers fn to be called on every authentication or token change.
// The returned function removes the subscription.
func (s *Session) Subscribe(fn func(AuthState)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *Session) notify(st AuthState) {
	s.subMu.Lock()
	fns := make([]func(AuthState), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}

// setAuth must be called with mu held. It reports whether anything changed.
func (s *Session) setAuth(authenticated bool, token string) bool {
	changed := s.state.Authenticated != authenticated || s.state.Token != token
	s.state.Authenticated = authenticated
	s.state.Token = token
	return changed
}

// errorMessage maps a failure to the text shown to the user
func errorMessage(err error) string {
	if msg, ok := api.Message(err); ok {
		return msg
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return UnknownErrorMessage
}
