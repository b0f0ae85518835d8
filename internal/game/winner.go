package game

// Winner determines the outcome from the final scores. A player who
// busts always loses, even if the dealer also busts; a tie at or below
// 21, or a double bust, is a draw (nil).
func Winner(humanScore, computerScore int) *Gamer {
	switch {
	case humanScore <= 21 && (humanScore > computerScore || computerScore > 21):
		w := Human
		return &w
	case computerScore <= 21 && (computerScore > humanScore || humanScore > 21):
		w := Computer
		return &w
	default:
		return nil
	}
}
