package systems

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/automoto/mini-magnets/components"
	"github.com/quasilyte/gdata"
)

const (
	settingsKey  = "settings"
	highScoreKey = "highscore"
)

// ErrNotFound is returned when nothing was saved under a key yet
var ErrNotFound = errors.New("no saved data")

// Store is the key/value backend persistence writes through.
// *gdata.Manager satisfies it.
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// OpenStore opens the per-user data directory for the game
func OpenStore() (Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: "minimagnets",
	})
	if err != nil {
		return nil, fmt.Errorf("could not initialize persistence: %w", err)
	}
	return m, nil
}

// Persistence loads and saves the settings record and the high score table
type Persistence struct {
	store Store
}

func NewPersistence(store Store) *Persistence {
	return &Persistence{store: store}
}

func (p *Persistence) load(key string, v any) error {
	data, err := p.store.LoadItem(key)
	if err != nil {
		return fmt.Errorf("could not load %s: %w", key, err)
	}
	if len(data) == 0 {
		return fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("could not parse saved %s: %w", key, err)
	}
	return nil
}

func (p *Persistence) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not serialize %s: %w", key, err)
	}
	if err := p.store.SaveItem(key, data); err != nil {
		return fmt.Errorf("could not save %s: %w", key, err)
	}
	return nil
}

// LoadSettings reads the saved settings and clamps out-of-range fields
func (p *Persistence) LoadSettings() (components.GameSettings, error) {
	var s components.GameSettings
	if err := p.load(settingsKey, &s); err != nil {
		return components.GameSettings{}, err
	}
	s.Normalize()
	return s, nil
}

func (p *Persistence) SaveSettings(s components.GameSettings) error {
	return p.save(settingsKey, s)
}

// LoadHighScores reads the saved table, sorted by descending score
func (p *Persistence) LoadHighScores() (components.HighScoreTable, error) {
	var t components.HighScoreTable
	if err := p.load(highScoreKey, &t); err != nil {
		return components.HighScoreTable{}, err
	}
	t.Sort()
	return t, nil
}

func (p *Persistence) SaveHighScores(t components.HighScoreTable) error {
	return p.save(highScoreKey, t)
}

// LoadSettingsOrDefault never fails: any load error is logged and the
// defaults are returned. A nil Persistence yields defaults silently.
func LoadSettingsOrDefault(p *Persistence) components.GameSettings {
	if p == nil {
		return components.DefaultSettings()
	}
	s, err := p.LoadSettings()
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("Warning: %v", err)
		}
		return components.DefaultSettings()
	}
	return s
}

// LoadHighScoresOrDefault never fails: any load error is logged and the
// default table is returned.
func LoadHighScoresOrDefault(p *Persistence) components.HighScoreTable {
	if p == nil {
		return components.DefaultHighScores()
	}
	t, err := p.LoadHighScores()
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("Warning: %v", err)
		}
		return components.DefaultHighScores()
	}
	return t
}

// SaveAll writes settings and high scores, logging failures
func SaveAll(p *Persistence, s components.GameSettings, t components.HighScoreTable) {
	if p == nil {
		return
	}
	if err := p.SaveSettings(s); err != nil {
		log.Printf("Warning: %v", err)
	}
	if err := p.SaveHighScores(t); err != nil {
		log.Printf("Warning: %v", err)
	}
}
