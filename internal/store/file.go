package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"blackjack-console/internal/game"
)

const historyFileName = "history.json"

// ErrCorruptHistory marks a history document that exists but cannot be
// decoded or fails schema validation. This is fatal for the session;
// the store never attempts partial-data repair.
var ErrCorruptHistory = errors.New("corrupt history document")

// ErrNoHistory is returned by reads that require an existing history
// document when none has been created yet.
var ErrNoHistory = errors.New("no history document")

// document is the persisted root. Its shape is the fixed schema of the
// history file; a mismatch on load is treated as corruption.
type document struct {
	Balance game.Balance `json:"balance"`
	Games   []*game.Game `json:"games"`
}

// FileStore persists the history document as a single JSON file under a
// data directory created on first use. All writes are synchronous: the
// document is fully written and synced before a call returns, so a
// subsequent read sees either the previous or the new consistent state.
type FileStore struct {
	dir  string
	path string
}

// NewFileStore creates a store rooted at the given data directory.
func NewFileStore(dir string) *FileStore {
	return &FileStore{
		dir:  dir,
		path: filepath.Join(dir, historyFileName),
	}
}

// HasUnfinishedGame reports whether a history exists and its last game
// is not finished.
func (s *FileStore) HasUnfinishedGame() (bool, error) {
	doc, err := s.read()
	if errors.Is(err, ErrNoHistory) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	last := doc.Games[len(doc.Games)-1]
	return !last.Finished, nil
}

// CurrentGame returns the last game if unfinished; otherwise it appends
// a fresh game (creating the history with the default balance when none
// exists) and persists it before returning.
func (s *FileStore) CurrentGame() (*game.Game, error) {
	doc, err := s.read()
	if errors.Is(err, ErrNoHistory) {
		fresh := game.NewGame()
		doc = &document{
			Balance: DefaultBalance(),
			Games:   []*game.Game{fresh},
		}
		if err := s.write(doc); err != nil {
			return nil, err
		}
		return fresh, nil
	}
	if err != nil {
		return nil, err
	}

	last := doc.Games[len(doc.Games)-1]
	if !last.Finished {
		return last, nil
	}

	fresh := game.NewGame()
	doc.Games = append(doc.Games, fresh)
	if err := s.write(doc); err != nil {
		return nil, err
	}
	return fresh, nil
}

// UpdateGame overwrites the last game entry and persists the document.
func (s *FileStore) UpdateGame(g *game.Game) error {
	doc, err := s.read()
	if err != nil {
		return err
	}

	doc.Games[len(doc.Games)-1] = g
	return s.write(doc)
}

// Balance returns the current balance.
func (s *FileStore) Balance() (game.Balance, error) {
	doc, err := s.read()
	if err != nil {
		return game.Balance{}, err
	}
	return doc.Balance, nil
}

// UpdateBalance replaces the balance and persists the document.
func (s *FileStore) UpdateBalance(b game.Balance) error {
	doc, err := s.read()
	if err != nil {
		return err
	}

	doc.Balance = b
	return s.write(doc)
}

// AllGames returns every recorded game, oldest first.
func (s *FileStore) AllGames() ([]*game.Game, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Games, nil
}

// RemoveHistory deletes the history file. Removing a history that does
// not exist is not an error.
func (s *FileStore) RemoveHistory() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove history: %w", err)
	}
	return nil
}

func (s *FileStore) read() (*document, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, ErrNoHistory
	}
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptHistory, err)
	}
	if err := doc.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptHistory, err)
	}

	return &doc, nil
}

// write replaces the history file atomically: the document is written to
// a temp file, synced to disk, then renamed over the old file.
func (s *FileStore) write(doc *document) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, historyFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp history file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write history: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close history: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace history: %w", err)
	}
	return nil
}

// validate checks the fixed document schema. The games list must be
// non-empty and every card in every game must be a real card.
func (d *document) validate() error {
	if len(d.Games) == 0 {
		return errors.New("history has no games")
	}

	for i, g := range d.Games {
		if g == nil {
			return fmt.Errorf("game %d is null", i)
		}
		if g.ID == "" {
			return fmt.Errorf("game %d has no id", i)
		}
		hands := [][]game.Card{g.State.HumanCards, g.State.ComputerCards, g.State.Deck}
		for _, cards := range hands {
			for _, c := range cards {
				if !c.Known() {
					return fmt.Errorf("game %d has unknown card %q of %q", i, c.Rank, c.Suit)
				}
			}
		}
	}

	return nil
}
