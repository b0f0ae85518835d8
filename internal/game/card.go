package game

type Suit string
type Rank string

const (
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
	Clubs    Suit = "clubs"
)

const (
	Ace   Rank = "ace"
	King  Rank = "king"
	Queen Rank = "queen"
	Jack  Rank = "jack"
	Ten   Rank = "10"
	Nine  Rank = "9"
	Eight Rank = "8"
	Seven Rank = "7"
	Six   Rank = "6"
	Five  Rank = "5"
	Four  Rank = "4"
	Three Rank = "3"
	Two   Rank = "2"
)

// Card is an immutable (suit, rank) pair. The JSON keys match the
// persisted history schema, which calls the rank "type".
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"type"`
}

// Value returns the card's score contribution. Aces always count as 11;
// there is no soft-ace adjustment in this variant.
func (c Card) Value() int {
	switch c.Rank {
	case Ace:
		return 11
	case King, Queen, Jack, Ten:
		return 10
	case Nine:
		return 9
	case Eight:
		return 8
	case Seven:
		return 7
	case Six:
		return 6
	case Five:
		return 5
	case Four:
		return 4
	case Three:
		return 3
	case Two:
		return 2
	default:
		return 0
	}
}

// Known reports whether the card carries a recognized suit and rank.
// Used to validate cards loaded from the history document.
func (c Card) Known() bool {
	switch c.Suit {
	case Diamonds, Hearts, Spades, Clubs:
	default:
		return false
	}
	switch c.Rank {
	case Ace, King, Queen, Jack, Ten, Nine, Eight, Seven, Six, Five, Four, Three, Two:
		return true
	default:
		return false
	}
}

// Score sums the values of the given cards. It is recomputed from the
// card sequence after every draw, never adjusted by hand.
func Score(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.Value()
	}
	return total
}
