package menu

// Item tracks which of a fixed number of entries is selected.
// Moving past either end wraps around.
type Item struct {
	count    int
	selected int
}

func NewItem(count int) Item {
	if count < 1 {
		count = 1
	}
	return Item{count: count}
}

func (m *Item) Count() int    { return m.count }
func (m *Item) Selected() int { return m.selected }

func (m *Item) Up() {
	m.selected = (m.selected - 1 + m.count) % m.count
}

func (m *Item) Down() {
	m.selected = (m.selected + 1) % m.count
}

// Select moves the selection to i, wrapping out-of-range values.
func (m *Item) Select(i int) {
	m.selected = ((i % m.count) + m.count) % m.count
}
