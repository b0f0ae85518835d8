package game

import (
	"errors"
	"math/rand"
	"time"
)

// ErrEmptyDeck is returned when a card is drawn from an exhausted deck.
// The deck is sized so this is unreachable during normal play; hitting
// it means a broken invariant and is treated as fatal by callers.
var ErrEmptyDeck = errors.New("draw from empty deck")

type Deck []Card

// NewDeck creates a standard 52-card deck, one card per (suit, rank)
// pair, in a deterministic order.
func NewDeck() Deck {
	suits := []Suit{Diamonds, Hearts, Spades, Clubs}
	ranks := []Rank{Ace, King, Queen, Jack, Ten, Nine, Eight, Seven, Six, Five, Four, Three, Two}

	deck := make(Deck, 0, len(suits)*len(ranks))
	for _, suit := range suits {
		for _, rank := range ranks {
			deck = append(deck, Card{Suit: suit, Rank: rank})
		}
	}

	return deck
}

// Shuffle randomizes the order of cards in the deck in place.
func (d Deck) Shuffle() {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Fisher-Yates shuffle algorithm
	for i := len(d) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// Draw removes and returns the top card of the deck.
func (d *Deck) Draw() (Card, error) {
	if len(*d) == 0 {
		return Card{}, ErrEmptyDeck
	}

	card := (*d)[0]
	*d = (*d)[1:]
	return card, nil
}
