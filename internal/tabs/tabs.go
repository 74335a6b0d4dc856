// Package tabs implements the fixed, ordered set of views and the
// saturating cycler used to move between them.
package tabs

import "fmt"

// Tab is one of the views, identified by its rank.
type Tab int

const (
	Tab1 Tab = iota
	Tab2
	Tab3
	Tab4
)

// Count is the number of tabs.
const Count = 4

var all = [Count]Tab{Tab1, Tab2, Tab3, Tab4}

// All returns every tab in rank order.
func All() []Tab {
	out := make([]Tab, Count)
	copy(out, all[:])
	return out
}

// FromRank returns the tab at rank, or false if rank is out of range.
func FromRank(rank int) (Tab, bool) {
	if rank < 0 || rank >= Count {
		return Tab1, false
	}
	return all[rank], true
}

// Rank returns the tab's position, 0 for the first tab.
func (t Tab) Rank() int {
	return int(t)
}

// Next returns the tab after t, or t itself when t is the last tab.
func (t Tab) Next() Tab {
	return t.step(1)
}

// Previous returns the tab before t, or t itself when t is the first tab.
func (t Tab) Previous() Tab {
	return t.step(-1)
}

// step saturates at both ends; a rank outside the table yields t unchanged.
func (t Tab) step(delta int) Tab {
	if next, ok := FromRank(t.Rank() + delta); ok {
		return next
	}
	return t
}

// String returns the default title, "Tab 1" for the first tab.
func (t Tab) String() string {
	return fmt.Sprintf("Tab %d", t.Rank()+1)
}
