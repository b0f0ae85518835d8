package game

import "testing"

func TestCardValue(t *testing.T) {
	cases := []struct {
		rank Rank
		want int
	}{
		{Ace, 11},
		{King, 10},
		{Queen, 10},
		{Jack, 10},
		{Ten, 10},
		{Nine, 9},
		{Eight, 8},
		{Seven, 7},
		{Six, 6},
		{Five, 5},
		{Four, 4},
		{Three, 3},
		{Two, 2},
	}

	for _, tc := range cases {
		card := Card{Suit: Spades, Rank: tc.rank}
		if got := card.Value(); got != tc.want {
			t.Errorf("value of %q: got %d, want %d", tc.rank, got, tc.want)
		}
	}
}

func TestScoreHasNoSoftAce(t *testing.T) {
	// Aces always count as 11 in this variant, so ace + ten + ten busts.
	hand := []Card{
		{Suit: Spades, Rank: Ace},
		{Suit: Hearts, Rank: Ten},
		{Suit: Clubs, Rank: Ten},
	}

	if got := Score(hand); got != 31 {
		t.Fatalf("expected 31, got %d", got)
	}
}

func TestKnownRejectsFabricatedCards(t *testing.T) {
	cases := []Card{
		{Suit: "stars", Rank: Ace},
		{Suit: Spades, Rank: "1"},
		{Suit: "", Rank: ""},
	}

	for _, c := range cases {
		if c.Known() {
			t.Errorf("expected %q of %q to be unknown", c.Rank, c.Suit)
		}
	}

	if !(Card{Suit: Diamonds, Rank: Two}).Known() {
		t.Error("expected 2 of diamonds to be known")
	}
}
