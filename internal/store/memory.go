package store

import "blackjack-console/internal/game"

// MemoryStore is an in-memory implementation of Store. It mirrors the
// FileStore semantics without touching disk, which makes it useful for
// tests and for throwaway sessions that should leave no history behind.
type MemoryStore struct {
	created bool
	balance game.Balance
	games   []*game.Game
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Seed installs a history with the given balance and games, as if it had
// been persisted by a previous session.
func (s *MemoryStore) Seed(b game.Balance, games ...*game.Game) {
	s.created = true
	s.balance = b
	s.games = append([]*game.Game{}, games...)
}

// HasUnfinishedGame reports whether a history exists and its last game
// is not finished.
func (s *MemoryStore) HasUnfinishedGame() (bool, error) {
	if !s.created || len(s.games) == 0 {
		return false, nil
	}
	return !s.games[len(s.games)-1].Finished, nil
}

// CurrentGame returns the last game if unfinished, appending a fresh one
// otherwise.
func (s *MemoryStore) CurrentGame() (*game.Game, error) {
	if !s.created {
		s.created = true
		s.balance = DefaultBalance()
		fresh := game.NewGame()
		s.games = []*game.Game{fresh}
		return fresh, nil
	}

	if len(s.games) > 0 {
		last := s.games[len(s.games)-1]
		if !last.Finished {
			return last, nil
		}
	}

	fresh := game.NewGame()
	s.games = append(s.games, fresh)
	return fresh, nil
}

// UpdateGame overwrites the last game entry.
func (s *MemoryStore) UpdateGame(g *game.Game) error {
	if !s.created || len(s.games) == 0 {
		return ErrNoHistory
	}
	s.games[len(s.games)-1] = g
	return nil
}

// Balance returns the current balance.
func (s *MemoryStore) Balance() (game.Balance, error) {
	if !s.created {
		return game.Balance{}, ErrNoHistory
	}
	return s.balance, nil
}

// UpdateBalance replaces the balance.
func (s *MemoryStore) UpdateBalance(b game.Balance) error {
	if !s.created {
		return ErrNoHistory
	}
	s.balance = b
	return nil
}

// AllGames returns every recorded game, oldest first.
func (s *MemoryStore) AllGames() ([]*game.Game, error) {
	if !s.created {
		return nil, ErrNoHistory
	}
	return s.games, nil
}

// RemoveHistory drops the whole history.
func (s *MemoryStore) RemoveHistory() error {
	s.created = false
	s.balance = game.Balance{}
	s.games = nil
	return nil
}
