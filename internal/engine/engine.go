// Package engine implements the game-session state machine: deck
// lifecycle, turn resolution, scoring, winner determination and bet
// settlement, backed by the history store and announced over the event
// bus. Sessions are strictly synchronous; every store write completes
// before the next transition.
package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"blackjack-console/internal/events"
	"blackjack-console/internal/game"
	"blackjack-console/internal/store"
)

// Status is the lifecycle of a session.
type Status string

const (
	StatusNotStarted Status = "notStarted"
	StatusInProgress Status = "inProgress"
	StatusFinished   Status = "finished"
)

// Action is a player move. These are the only two actions the engine
// accepts; anything else is rejected at the boundary.
type Action string

const (
	ActionHit   Action = "hit"
	ActionStand Action = "stand"
)

var (
	// ErrInvalidAction marks an action token outside the defined set.
	ErrInvalidAction = errors.New("invalid action")

	// ErrNotInProgress is returned when a transition is requested while
	// no game is in progress. It is also the guard that makes a second
	// finish of the same game impossible.
	ErrNotInProgress = errors.New("no game in progress")
)

// The dealer draws one card per round while below this fixed score.
const dealerThreshold = 17

var defaultBetMenu = []int{5, 25, 50}

// Engine drives exactly one game at a time. It holds a transient copy
// of the current game and balance; every mutation is persisted through
// the store before the engine proceeds.
type Engine struct {
	store   store.Store
	bus     *events.Bus
	betMenu []int
	log     *slog.Logger

	status  Status
	current *game.Game
	balance game.Balance
}

// New creates an engine over the given store and bus. An empty bet menu
// falls back to the default {5, 25, 50}.
func New(st store.Store, bus *events.Bus, betMenu []int) *Engine {
	if len(betMenu) == 0 {
		betMenu = defaultBetMenu
	}
	return &Engine{
		store:   st,
		bus:     bus,
		betMenu: betMenu,
		log:     slog.Default(),
		status:  StatusNotStarted,
	}
}

// Status returns the session status.
func (e *Engine) Status() Status {
	return e.status
}

// CurrentGame returns the game the engine is playing, or nil before the
// first Start.
func (e *Engine) CurrentGame() *game.Game {
	return e.current
}

// Balance returns the engine's copy of the ledger as of the last
// persisted mutation.
func (e *Engine) Balance() game.Balance {
	return e.balance
}

// BetMenu returns the fixed menu of bet sizes.
func (e *Engine) BetMenu() []int {
	return e.betMenu
}

// CanResume reports whether an unfinished game is waiting in the store.
// Start on a resumable session ignores its bet and never redeals.
func (e *Engine) CanResume() (bool, error) {
	return e.store.HasUnfinishedGame()
}

// Start begins a session. If an unfinished game exists it is resumed
// exactly as stored, with no redeal and no new bet. Otherwise the bet is
// recorded as a MADE event (freezing its amount), a fresh deck is
// shuffled, two cards are dealt to each side and the game is persisted.
// Both branches announce the current game on the bus.
func (e *Engine) Start(bet int) error {
	resume, err := e.store.HasUnfinishedGame()
	if err != nil {
		return fmt.Errorf("check unfinished game: %w", err)
	}

	g, err := e.store.CurrentGame()
	if err != nil {
		return fmt.Errorf("load current game: %w", err)
	}

	if resume {
		bal, err := e.store.Balance()
		if err != nil {
			return fmt.Errorf("load balance: %w", err)
		}
		e.balance = bal
		e.log.Info("resuming unfinished game", "game", g.ID)
	} else {
		if err := e.placeBet(g, bet); err != nil {
			return err
		}
		g.State.Deck.Shuffle()
		if err := dealInitial(g); err != nil {
			return err
		}
		if err := e.store.UpdateGame(g); err != nil {
			return fmt.Errorf("persist game: %w", err)
		}
	}

	e.current = g
	e.status = StatusInProgress
	e.bus.PublishStateChanged(g)
	return nil
}

// ChangeState applies one round of play. The dealer acts first, drawing
// a single card while below the threshold; on a hit the player then
// draws one card. The updated game is persisted, and the round either
// finishes (player at 21 or over, or a stand) or is announced as a
// state change.
func (e *Engine) ChangeState(action Action) error {
	if e.status != StatusInProgress {
		return ErrNotInProgress
	}
	if action != ActionHit && action != ActionStand {
		return fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}

	g := e.current
	if g.State.ComputerScore < dealerThreshold {
		if err := drawTo(g, game.Computer); err != nil {
			return err
		}
	}
	if action == ActionHit {
		if err := drawTo(g, game.Human); err != nil {
			return err
		}
	}

	if err := e.store.UpdateGame(g); err != nil {
		return fmt.Errorf("persist game: %w", err)
	}

	if g.State.HumanScore >= 21 || action == ActionStand {
		return e.finish()
	}

	e.bus.PublishStateChanged(g)
	return nil
}

// ResetState deletes the entire history and starts a new session from
// the default balance. Destructive and irreversible; reached only
// through the explicit restart-from-scratch flow.
func (e *Engine) ResetState(bet int) error {
	if err := e.store.RemoveHistory(); err != nil {
		return fmt.Errorf("remove history: %w", err)
	}

	e.status = StatusNotStarted
	e.current = nil
	e.balance = game.Balance{}
	e.log.Info("history removed, starting from scratch")
	return e.Start(bet)
}

// AvailableBets returns the bet sizes affordable with the spendable
// balance (funds minus the frozen stake), along with the balance they
// were computed from. A balance read failure falls back to the default
// balance; this is the one designed local recovery in the engine.
func (e *Engine) AvailableBets() ([]int, game.Balance) {
	bal, err := e.store.Balance()
	if err != nil {
		e.log.Warn("balance read failed, using default", "error", err)
		bal = store.DefaultBalance()
	}

	spendable := bal.Human - bal.FrozenHuman
	bets := []int{}
	for _, amount := range e.betMenu {
		if amount <= spendable {
			bets = append(bets, amount)
		}
	}
	return bets, bal
}

// finish settles the game: fixes the winner, appends exactly one
// settling event for the pending stake, applies the balance transfer,
// persists both, and announces the result with the career win rate and
// the next round's available bets.
func (e *Engine) finish() error {
	if e.status != StatusInProgress {
		return ErrNotInProgress
	}

	g := e.current
	winner := game.Winner(g.State.HumanScore, g.State.ComputerScore)
	g.Finished = true
	g.Winner = winner

	stake := pendingStake(g)
	status := game.BetDraw
	if winner != nil {
		if *winner == game.Human {
			status = game.BetWin
		} else {
			status = game.BetLose
		}
	}
	g.Events = append(g.Events, game.BetEvent{Gamer: game.Human, Value: stake, Status: status})

	bal, err := e.store.Balance()
	if err != nil {
		return fmt.Errorf("load balance: %w", err)
	}
	bal = settle(bal, stake, status)

	if err := e.store.UpdateGame(g); err != nil {
		return fmt.Errorf("persist game: %w", err)
	}
	if err := e.store.UpdateBalance(bal); err != nil {
		return fmt.Errorf("persist balance: %w", err)
	}
	e.balance = bal
	e.status = StatusFinished

	rate, err := e.winRate()
	if err != nil {
		return fmt.Errorf("compute win rate: %w", err)
	}
	bets, _ := e.AvailableBets()

	e.log.Info("game finished", "game", g.ID, "winner", winnerLabel(winner), "stake", stake)
	e.bus.PublishFinished(events.Finished{
		Game:          g,
		WinRate:       rate,
		Balance:       bal,
		AvailableBets: bets,
	})
	return nil
}

// placeBet appends the MADE event and moves the amount into escrow.
func (e *Engine) placeBet(g *game.Game, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("bet must be positive, got %d", amount)
	}

	g.Events = append(g.Events, game.BetEvent{Gamer: game.Human, Value: amount, Status: game.BetMade})

	bal, err := e.store.Balance()
	if err != nil {
		return fmt.Errorf("load balance: %w", err)
	}
	bal.FrozenHuman += amount
	if err := e.store.UpdateBalance(bal); err != nil {
		return fmt.Errorf("persist balance: %w", err)
	}
	e.balance = bal
	return nil
}

// winRate is the share of finished games won by the player.
func (e *Engine) winRate() (float64, error) {
	games, err := e.store.AllGames()
	if err != nil {
		return 0, err
	}

	finished, wins := 0, 0
	for _, g := range games {
		if !g.Finished {
			continue
		}
		finished++
		if g.Winner != nil && *g.Winner == game.Human {
			wins++
		}
	}
	if finished == 0 {
		return 0, nil
	}
	return float64(wins) / float64(finished), nil
}

// dealInitial deals two cards to each side from the shuffled deck.
func dealInitial(g *game.Game) error {
	for i := 0; i < 2; i++ {
		if err := drawTo(g, game.Human); err != nil {
			return err
		}
		if err := drawTo(g, game.Computer); err != nil {
			return err
		}
	}
	return nil
}

// drawTo pops the top card into the given hand and recomputes the score
// from the full card sequence.
func drawTo(g *game.Game, who game.Gamer) error {
	card, err := g.State.Deck.Draw()
	if err != nil {
		return fmt.Errorf("draw for %s: %w", who, err)
	}

	switch who {
	case game.Human:
		g.State.HumanCards = append(g.State.HumanCards, card)
		g.State.HumanScore = game.Score(g.State.HumanCards)
	case game.Computer:
		g.State.ComputerCards = append(g.State.ComputerCards, card)
		g.State.ComputerScore = game.Score(g.State.ComputerCards)
	}
	return nil
}

// pendingStake is the amount of the bet awaiting settlement: the value
// of the game's last MADE event.
func pendingStake(g *game.Game) int {
	for i := len(g.Events) - 1; i >= 0; i-- {
		if g.Events[i].Status == game.BetMade {
			return g.Events[i].Value
		}
	}
	return 0
}

// settle applies the balance transfer for a settled bet. Money only
// moves between player and dealer; a draw releases the escrow untouched.
func settle(b game.Balance, stake int, status game.BetStatus) game.Balance {
	switch status {
	case game.BetWin:
		b.Human += stake
		b.Computer -= stake
	case game.BetLose:
		b.Human -= stake
		b.Computer += stake
	}
	b.FrozenHuman -= stake
	return b
}

func winnerLabel(w *game.Gamer) string {
	if w == nil {
		return "draw"
	}
	return string(*w)
}
