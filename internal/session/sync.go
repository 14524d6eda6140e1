package session

import (
	"context"
	"strconv"

	"easywords/internal/domain"

	"go.uber.org/zap"
)

// Bootstrap restores a persisted access token and, when the server accepts
// it, the previously selected dictionary and its words.
func (s *Session) Bootstrap(ctx context.Context) {
	token, ok, err := s.store.Get(ctx, domain.KeyAccessToken)
	if err != nil {
		s.logger.Warn("Failed to read access token", zap.Error(err))
		ok = false
	}

	if !ok || token == "" {
		s.mu.Lock()
		s.state.Status = StatusUnauthenticated
		changed := s.setAuth(false, "")
		s.state.Loading = false
		s.mu.Unlock()

		if changed {
			s.notify(AuthState{})
		}
		return
	}

	s.mu.Lock()
	s.state.Status = StatusChecking
	s.mu.Unlock()

	dictionaries, err := s.api.ListDictionaries(ctx, token)
	if err != nil {
		s.logger.Info("Persisted token rejected, signing out", zap.Error(err))

		if delErr := s.store.Delete(ctx, domain.KeyAccessToken); delErr != nil {
			s.logger.Warn("Failed to discard access token", zap.Error(delErr))
		}

		s.mu.Lock()
		s.state.Status = StatusUnauthenticated
		changed := s.setAuth(false, "")
		s.state.Loading = false
		s.mu.Unlock()

		if changed {
			s.notify(AuthState{})
		}
		return
	}

	if dictionaries == nil {
		dictionaries = []domain.Dictionary{}
	}

	s.mu.Lock()
	s.state.Dictionaries = dictionaries
	s.state.Status = StatusAuthenticated
	changed := s.setAuth(true, token)
	s.mu.Unlock()

	if changed {
		s.notify(AuthState{Authenticated: true, Token: token})
	}

	s.SelectInitialDictionary(ctx)

	s.mu.Lock()
	s.state.Loading = false
	s.mu.Unlock()
}

// SelectInitialDictionary selects the last persisted dictionary when it is
// still present, otherwise the first loaded one, and fetches its words.
// With no dictionaries nothing is selected and nothing is fetched.
func (s *Session) SelectInitialDictionary(ctx context.Context) {
	lastID := s.lastDictionaryID(ctx)

	s.mu.Lock()
	selected := 0
	if d, found := domain.FindDictionary(s.state.Dictionaries, lastID); found {
		selected = d.ID
	} else if len(s.state.Dictionaries) > 0 {
		selected = s.state.Dictionaries[0].ID
	}
	if selected != 0 {
		s.state.SelectedDictionaryID = selected
	}
	s.mu.Unlock()

	if selected != 0 {
		s.FetchWords(ctx, selected)
	}
}

// HandleSelectChange applies a selection made in the UI. Selecting 0 clears
// the words without a request; any other id is persisted and its words fetched.
func (s *Session) HandleSelectChange(ctx context.Context, dictionaryID int) {
	s.mu.Lock()
	s.state.SelectedDictionaryID = dictionaryID
	if dictionaryID == 0 {
		s.generation++
		s.state.Words = []domain.Word{}
		s.state.Loading = false
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	if err := s.store.Set(ctx, domain.KeyLastDictionaryID, strconv.Itoa(dictionaryID)); err != nil {
		s.logger.Warn("Failed to persist selected dictionary",
			zap.Int("dictionary_id", dictionaryID),
			zap.Error(err),
		)
	}

	s.FetchWords(ctx, dictionaryID)
}

// FetchWords loads the words of a dictionary into the session. Failures are
// recorded in State.Error with an empty word list. Loading is cleared on
// return unless a newer fetch has started meanwhile, in which case this
// response is discarded.
func (s *Session) FetchWords(ctx context.Context, dictionaryID int) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.state.Words = []domain.Word{}
	s.state.Loading = true
	s.state.Error = ""
	if dictionaryID == 0 {
		s.state.Loading = false
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	words, err := s.loadWords(ctx, dictionaryID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logger.Debug("Discarding stale words response", zap.Int("dictionary_id", dictionaryID))
		return
	}

	if err != nil {
		s.logger.Warn("Failed to fetch words",
			zap.Int("dictionary_id", dictionaryID),
			zap.Error(err),
		)
		s.state.Error = errorMessage(err)
		s.state.Words = []domain.Word{}
	} else {
		s.state.Words = domain.FilterByDictionary(words, dictionaryID)
	}
	s.state.Loading = false
}

// ReloadDictionaries refreshes the dictionary list with the session token.
// A selection that no longer exists is reset to 0.
func (s *Session) ReloadDictionaries(ctx context.Context) error {
	s.mu.Lock()
	token := s.state.Token
	s.mu.Unlock()

	if token == "" {
		return domain.ErrNotAuthorized
	}

	dictionaries, err := s.api.ListDictionaries(ctx, token)
	if err != nil {
		return err
	}
	if dictionaries == nil {
		dictionaries = []domain.Dictionary{}
	}

	s.mu.Lock()
	s.state.Dictionaries = dictionaries
	if _, found := domain.FindDictionary(dictionaries, s.state.SelectedDictionaryID); !found {
		s.generation++
		s.state.SelectedDictionaryID = 0
		s.state.Words = []domain.Word{}
		s.state.Loading = false
	}
	s.mu.Unlock()

	return nil
}

func (s *Session) loadWords(ctx context.Context, dictionaryID int) ([]domain.Word, error) {
	token, ok, err := s.store.Get(ctx, domain.KeyAccessToken)
	if err != nil {
		return nil, err
	}
	if !ok || token == "" {
		return nil, domain.ErrNotAuthorized
	}
	return s.api.ListWords(ctx, dictionaryID, token)
}

func (s *Session) lastDictionaryID(ctx context.Context) int {
	raw, ok, err := s.store.Get(ctx, domain.KeyLastDictionaryID)
	if err != nil {
		s.logger.Warn("Failed to read last dictionary id", zap.Error(err))
		return 0
	}
	if !ok {
		return 0
	}
	return domain.ParseDictionaryID(raw)
}
