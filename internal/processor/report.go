package processor

import (
	"math"
	"sort"

	"github.com/badele/keygrabstats/internal/types"
)

const (
	KeysTitle      = "keys pressed (without Super or Ctrl)"
	ShortcutsTitle = "shortcuts pressed (with Super or Ctrl)"
)

///////////////////////////////////////////////////////////////////////////////
// Report
///////////////////////////////////////////////////////////////////////////////

type Entry struct {
	Rank    int            `json:"rank" yaml:"rank"`
	Key     types.KeyPress `json:"key" yaml:"key"`
	Display string         `json:"display" yaml:"display"`
	Count   int            `json:"count" yaml:"count"`
	Percent float64        `json:"percent" yaml:"percent"`
}

type Group struct {
	Title   string  `json:"title" yaml:"title"`
	Total   int     `json:"total" yaml:"total"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Top returns the first n entries, or all of them when n <= 0.
func (g Group) Top(n int) Group {
	if n > 0 && n < len(g.Entries) {
		g.Entries = g.Entries[:n]
	}
	return g
}

type Report struct {
	Keys      Group `json:"keys" yaml:"keys"`
	Shortcuts Group `json:"shortcuts" yaml:"shortcuts"`
}

// NewReport splits the counted key presses into plain keys and shortcuts
// (Super or Ctrl held) and ranks each group by descending count.
func NewReport(c *Counter) *Report {
	var keys, shortcuts []Entry

	for k, count := range c.counts {
		e := Entry{Key: k, Display: k.String(), Count: count}
		if k.IsShortcut() {
			shortcuts = append(shortcuts, e)
		} else {
			keys = append(keys, e)
		}
	}

	return &Report{
		Keys:      newGroup(KeysTitle, keys),
		Shortcuts: newGroup(ShortcutsTitle, shortcuts),
	}
}

// Top limits both groups to their first n entries.
func (r *Report) Top(n int) *Report {
	return &Report{
		Keys:      r.Keys.Top(n),
		Shortcuts: r.Shortcuts.Top(n),
	}
}

func newGroup(title string, entries []Entry) Group {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Display < entries[j].Display
	})

	total := 0
	for _, e := range entries {
		total += e.Count
	}

	for i := range entries {
		entries[i].Rank = i + 1
		entries[i].Percent = Percent(entries[i].Count, total)
	}

	if entries == nil {
		entries = make([]Entry, 0)
	}

	return Group{Title: title, Total: total, Entries: entries}
}

// Percent returns count as a percentage of total, rounded half-even to three
// decimals. A zero total yields 0.
func Percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	p := float64(count) * 100.0 / float64(total)
	return math.RoundToEven(p*1000) / 1000
}
