package components

import (
	"fmt"
	"sort"

	"github.com/yohamta/donburi"
)

// HighScoreCapacity is the number of entries in a fresh table
const HighScoreCapacity = 10

// HighScore is one row of the high score table
type HighScore struct {
	Score uint32 `json:"score"`
	Name  string `json:"name"`
}

// HighScoreTable is the persisted list of best scores
type HighScoreTable struct {
	Entries []HighScore `json:"entries"`
}

// DefaultHighScores returns the table used when nothing was saved
func DefaultHighScores() HighScoreTable {
	t := HighScoreTable{Entries: make([]HighScore, 0, HighScoreCapacity)}
	for i := 0; i < HighScoreCapacity; i++ {
		t.Entries = append(t.Entries, HighScore{
			Score: uint32(1000 - 100*i),
			Name:  "WILLI KAPPLER",
		})
	}
	return t
}

// Sort orders entries by descending score, keeping the order of ties
func (t *HighScoreTable) Sort() {
	sort.SliceStable(t.Entries, func(i, j int) bool {
		return t.Entries[i].Score > t.Entries[j].Score
	})
}

// Lines formats the table for display, one "SCORE - NAME" line per entry
func (t *HighScoreTable) Lines() []string {
	lines := make([]string, 0, len(t.Entries))
	for _, e := range t.Entries {
		lines = append(lines, fmt.Sprintf("%d - %s", e.Score, e.Name))
	}
	return lines
}

var HighScores = donburi.NewComponentType[HighScoreTable]()
