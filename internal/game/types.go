package game

import "github.com/google/uuid"

// Gamer identifies a bet actor or winner. The values are the literal
// strings used by the persisted history schema.
type Gamer string

const (
	Human    Gamer = "human"
	Computer Gamer = "computer"
)

// BetStatus is the lifecycle of a bet: placed, then settled exactly once.
type BetStatus string

const (
	BetMade BetStatus = "MADE"
	BetWin  BetStatus = "WIN"
	BetLose BetStatus = "LOSE"
	BetDraw BetStatus = "DRAW"
)

// BetEvent is an append-only log entry on a game. Never mutated once
// appended.
type BetEvent struct {
	Gamer  Gamer     `json:"gamer"`
	Value  int       `json:"value"`
	Status BetStatus `json:"status"`
}

// State holds the hands, the derived scores and the remaining deck of a
// single game. Scores are always recomputed from the card sequences.
type State struct {
	HumanCards    []Card `json:"human_cards"`
	ComputerCards []Card `json:"computer_cards"`
	HumanScore    int    `json:"human_score"`
	ComputerScore int    `json:"computer_score"`
	Deck          Deck   `json:"deck"`
}

// Game is one round of play. It transitions finished=false to
// finished=true exactly once, at which point Winner is fixed permanently.
type Game struct {
	ID       string     `json:"game_uuid"`
	Events   []BetEvent `json:"events"`
	State    State      `json:"state"`
	Finished bool       `json:"finished"`
	Winner   *Gamer     `json:"winner"`
}

// Balance is the betting ledger. FrozenHuman is the stake held in escrow
// for the pending bet, excluded from the spendable balance.
type Balance struct {
	Human       int `json:"human"`
	Computer    int `json:"computer"`
	FrozenHuman int `json:"freeze_human_balance"`
}

// NewGame creates a fresh game: new id, empty hands, zero scores and a
// freshly generated (unshuffled) deck.
func NewGame() *Game {
	return &Game{
		ID:     uuid.New().String(),
		Events: []BetEvent{},
		State: State{
			HumanCards:    []Card{},
			ComputerCards: []Card{},
			Deck:          NewDeck(),
		},
	}
}
