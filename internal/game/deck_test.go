package game

import (
	"errors"
	"testing"
)

func TestNewDeckHasAllCards(t *testing.T) {
	deck := NewDeck()

	if len(deck) != 52 {
		t.Fatalf("expected 52 cards, got %d", len(deck))
	}

	seen := make(map[Card]bool, len(deck))
	for _, c := range deck {
		if !c.Known() {
			t.Errorf("deck contains unknown card %q of %q", c.Rank, c.Suit)
		}
		if seen[c] {
			t.Errorf("deck contains duplicate card %q of %q", c.Rank, c.Suit)
		}
		seen[c] = true
	}
}

func TestShuffleKeepsCardMultiset(t *testing.T) {
	original := NewDeck()
	shuffled := make(Deck, len(original))
	copy(shuffled, original)

	shuffled.Shuffle()

	if len(shuffled) != len(original) {
		t.Fatalf("shuffle changed deck length: %d != %d", len(shuffled), len(original))
	}

	count := func(d Deck) map[Card]int {
		m := make(map[Card]int, len(d))
		for _, c := range d {
			m[c]++
		}
		return m
	}

	before := count(original)
	after := count(shuffled)
	for card, n := range before {
		if after[card] != n {
			t.Errorf("card %q of %q: count %d before shuffle, %d after", card.Rank, card.Suit, n, after[card])
		}
	}
}

func TestDrawTakesTopCard(t *testing.T) {
	deck := NewDeck()
	top := deck[0]

	card, err := deck.Draw()
	if err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	if card != top {
		t.Errorf("expected top card %v, got %v", top, card)
	}
	if len(deck) != 51 {
		t.Errorf("expected 51 cards after draw, got %d", len(deck))
	}
}

func TestDrawFromEmptyDeck(t *testing.T) {
	deck := Deck{}

	_, err := deck.Draw()
	if !errors.Is(err, ErrEmptyDeck) {
		t.Fatalf("expected ErrEmptyDeck, got %v", err)
	}
}

func TestScoreConservedAcrossDraws(t *testing.T) {
	deck := NewDeck()
	deck.Shuffle()

	var hand []Card
	for i := 0; i < 10; i++ {
		before := Score(hand)

		card, err := deck.Draw()
		if err != nil {
			t.Fatalf("draw %d failed: %v", i, err)
		}
		hand = append(hand, card)

		if got := Score(hand); got != before+card.Value() {
			t.Fatalf("score after draw %d: got %d, want %d", i, got, before+card.Value())
		}
	}
}
