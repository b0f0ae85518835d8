package game

import "testing"

func TestWinnerRuleTable(t *testing.T) {
	human := Human
	computer := Computer

	cases := []struct {
		name          string
		humanScore    int
		computerScore int
		want          *Gamer
	}{
		{"higher score wins", 20, 19, &human},
		{"player bust loses", 22, 19, &computer},
		{"both bust is a draw", 22, 23, nil},
		{"tie at 21 is a draw", 21, 21, nil},
		{"tie below 21 is a draw", 17, 17, nil},
		{"dealer bust, player stands", 18, 22, &human},
		{"dealer higher wins", 18, 20, &computer},
		{"double bust is a draw regardless of margin", 25, 22, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Winner(tc.humanScore, tc.computerScore)

			if (got == nil) != (tc.want == nil) {
				t.Fatalf("winner(%d, %d): got %v, want %v", tc.humanScore, tc.computerScore, got, tc.want)
			}
			if got != nil && *got != *tc.want {
				t.Fatalf("winner(%d, %d): got %s, want %s", tc.humanScore, tc.computerScore, *got, *tc.want)
			}
		})
	}
}
