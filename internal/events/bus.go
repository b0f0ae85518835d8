// Package events provides the typed publish/subscribe channel that
// decouples the game engine from the presentation layer. The set of
// event kinds is closed: each kind has its own payload type and its own
// subscribe/publish pair, so there is no stringly-typed dispatch and no
// "unknown message type" failure mode at runtime.
package events

import "blackjack-console/internal/game"

// Finished is the payload of the once-per-game finish event.
type Finished struct {
	Game          *game.Game
	WinRate       float64
	Balance       game.Balance
	AvailableBets []int
}

// Bus delivers every published event to all subscribed handlers
// synchronously, in subscription order, before the publishing call
// returns. There is no queuing or asynchronous delivery.
type Bus struct {
	stateChanged []func(*game.Game)
	finished     []func(Finished)
}

// NewBus creates a bus with no subscribers.
func NewBus() *Bus {
	return &Bus{}
}

// SubscribeStateChanged registers a handler for non-terminal state
// transitions (after a start or a hit/stand that did not end the game).
func (b *Bus) SubscribeStateChanged(fn func(*game.Game)) {
	b.stateChanged = append(b.stateChanged, fn)
}

// SubscribeFinished registers a handler for the finish event.
func (b *Bus) SubscribeFinished(fn func(Finished)) {
	b.finished = append(b.finished, fn)
}

// PublishStateChanged notifies all state-changed subscribers.
func (b *Bus) PublishStateChanged(g *game.Game) {
	for _, fn := range b.stateChanged {
		fn(g)
	}
}

// PublishFinished notifies all finished subscribers.
func (b *Bus) PublishFinished(f Finished) {
	for _, fn := range b.finished {
		fn(f)
	}
}
