// Package ui is the terminal presentation layer. It subscribes to the
// engine's events for rendering and is the only caller of the engine's
// mutating entry points. Action tokens are validated here; the engine
// never sees anything but the two defined actions.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"blackjack-console/internal/engine"
	"blackjack-console/internal/events"
	"blackjack-console/internal/game"
)

const (
	labelHit   = "Take a card"
	labelStand = "Stand"
	labelQuit  = "Quit"
)

// Console runs the interactive session loop.
type Console struct {
	engine *engine.Engine
}

// New creates a console client and subscribes it to the bus.
func New(eng *engine.Engine, bus *events.Bus) *Console {
	c := &Console{engine: eng}
	bus.SubscribeStateChanged(c.renderState)
	bus.SubscribeFinished(c.renderFinish)
	return c
}

// Run plays rounds until the player quits or a fatal error surfaces.
func (c *Console) Run() error {
	pterm.DefaultHeader.Println("Blackjack")
	pterm.Info.Println("Welcome! Ready to play?")

	for {
		quit, err := c.beginRound()
		if err != nil {
			return err
		}
		if quit {
			pterm.Info.Println("See you next time.")
			return nil
		}

		for c.engine.Status() == engine.StatusInProgress {
			action, err := c.promptAction()
			if err != nil {
				return err
			}
			if err := c.engine.ChangeState(action); err != nil {
				return err
			}
		}
	}
}

// beginRound resumes an unfinished game, starts a new one with a chosen
// bet, or offers the destructive restart when no bet is affordable.
// Returns true when the player chose to leave.
func (c *Console) beginRound() (bool, error) {
	resume, err := c.engine.CanResume()
	if err != nil {
		return false, err
	}
	if resume {
		pterm.Info.Println("Unfinished game found, dealing you back in.")
		return false, c.engine.Start(0)
	}

	bets, bal := c.engine.AvailableBets()
	pterm.Info.Printfln("Your funds: %d. Dealer funds: %d.", bal.Human, bal.Computer)

	if len(bets) == 0 {
		ok, err := pterm.DefaultInteractiveConfirm.
			WithDefaultText("No affordable bets left. Wipe the history and start over?").
			Show()
		if err != nil {
			return false, fmt.Errorf("restart prompt: %w", err)
		}
		if !ok {
			return true, nil
		}

		bet, quit, err := c.selectBet(c.engine.BetMenu())
		if err != nil || quit {
			return quit, err
		}
		return false, c.engine.ResetState(bet)
	}

	bet, quit, err := c.selectBet(bets)
	if err != nil || quit {
		return quit, err
	}
	return false, c.engine.Start(bet)
}

// selectBet prompts for a bet from the menu. The chosen option is a
// string-encoded integer.
func (c *Console) selectBet(menu []int) (int, bool, error) {
	options := make([]string, 0, len(menu)+1)
	for _, b := range menu {
		options = append(options, strconv.Itoa(b))
	}
	options = append(options, labelQuit)

	choice, err := pterm.DefaultInteractiveSelect.
		WithDefaultText("Place your bet").
		WithOptions(options).
		Show()
	if err != nil {
		return 0, false, fmt.Errorf("bet prompt: %w", err)
	}
	if choice == labelQuit {
		return 0, true, nil
	}

	bet, err := strconv.Atoi(choice)
	if err != nil {
		return 0, false, fmt.Errorf("invalid bet %q: %w", choice, err)
	}
	return bet, false, nil
}

func (c *Console) promptAction() (engine.Action, error) {
	choice, err := pterm.DefaultInteractiveSelect.
		WithDefaultText("Your move").
		WithOptions([]string{labelHit, labelStand}).
		Show()
	if err != nil {
		return "", fmt.Errorf("action prompt: %w", err)
	}
	return actionFromLabel(choice)
}

// actionFromLabel maps an action token to an engine action. Unknown
// tokens are rejected here, before they reach the engine.
func actionFromLabel(label string) (engine.Action, error) {
	switch label {
	case labelHit:
		return engine.ActionHit, nil
	case labelStand:
		return engine.ActionStand, nil
	default:
		return "", fmt.Errorf("unknown action %q", label)
	}
}

func (c *Console) renderState(g *game.Game) {
	pterm.Println()
	pterm.Info.Printfln("Dealer hand (%d): %s", g.State.ComputerScore, handString(g.State.ComputerCards))
	pterm.Info.Printfln("Your hand   (%d): %s", g.State.HumanScore, handString(g.State.HumanCards))
}

func (c *Console) renderFinish(f events.Finished) {
	c.renderState(f.Game)

	switch {
	case f.Game.Winner == nil:
		pterm.Warning.Println("Draw. The stake returns to you.")
	case *f.Game.Winner == game.Human:
		pterm.Success.Println("You win!")
	default:
		pterm.Error.Println("Dealer wins.")
	}
	pterm.Info.Printfln("Win rate: %.0f%%. Funds: you %d, dealer %d.",
		f.WinRate*100, f.Balance.Human, f.Balance.Computer)
}

func handString(cards []game.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, fmt.Sprintf("%s of %s", c.Rank, c.Suit))
	}
	return strings.Join(parts, ", ")
}
