package store

import "blackjack-console/internal/game"

// Store is the sole authority over durable game history and balance.
// The engine never touches storage directly; every mutation is
// round-tripped through a Store before it is considered committed.
type Store interface {
	// HasUnfinishedGame reports whether a history exists and its last
	// game is not finished.
	HasUnfinishedGame() (bool, error)

	// CurrentGame returns the last game if it is unfinished. Otherwise
	// it appends a fresh game (and creates the history with the default
	// balance if none exists) and persists it before returning.
	CurrentGame() (*game.Game, error)

	// UpdateGame overwrites the last game entry. The write is durable
	// before the call returns.
	UpdateGame(g *game.Game) error

	// Balance returns the current balance.
	Balance() (game.Balance, error)

	// UpdateBalance replaces the balance.
	UpdateBalance(b game.Balance) error

	// AllGames returns every recorded game, oldest first.
	AllGames() ([]*game.Game, error)

	// RemoveHistory deletes the entire history. Destructive and
	// irreversible; used only by the explicit restart-from-scratch flow.
	RemoveHistory() error
}

// DefaultBalance is the ledger a brand-new history starts with.
func DefaultBalance() game.Balance {
	return game.Balance{Human: 100, Computer: 500, FrozenHuman: 0}
}
