package tabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsFirst(t *testing.T) {
	var tab Tab
	assert.Equal(t, Tab1, tab)
	assert.Equal(t, 0, tab.Rank())
}

func TestNextSaturates(t *testing.T) {
	tab := Tab1
	for i := 0; i < Count-1; i++ {
		tab = tab.Next()
	}
	require.Equal(t, Tab4, tab)

	assert.Equal(t, Tab4, tab.Next(), "next on the last tab must not wrap")
}

func TestPreviousSaturates(t *testing.T) {
	tab := Tab4
	for i := 0; i < Count-1; i++ {
		tab = tab.Previous()
	}
	require.Equal(t, Tab1, tab)

	assert.Equal(t, Tab1, tab.Previous(), "previous on the first tab must not wrap")
}

func TestFromRank(t *testing.T) {
	tests := []struct {
		rank   int
		want   Tab
		wantOK bool
	}{
		{0, Tab1, true},
		{1, Tab2, true},
		{2, Tab3, true},
		{3, Tab4, true},
		{4, Tab1, false},
		{-1, Tab1, false},
	}

	for _, tt := range tests {
		got, ok := FromRank(tt.rank)
		assert.Equal(t, tt.wantOK, ok, "rank %d", tt.rank)
		if ok {
			assert.Equal(t, tt.want, got, "rank %d", tt.rank)
		}
	}
}

func TestOutOfRangeFailsClosed(t *testing.T) {
	bogus := Tab(9)

	_, ok := FromRank(bogus.Rank())
	assert.False(t, ok)
	assert.Equal(t, bogus, bogus.Next())
	assert.Equal(t, Tab(-3), Tab(-3).Previous())
}

func TestAllIsRankOrdered(t *testing.T) {
	tabs := All()
	require.Len(t, tabs, Count)
	for i, tab := range tabs {
		assert.Equal(t, i, tab.Rank())
		got, ok := FromRank(i)
		assert.True(t, ok)
		assert.Equal(t, tab, got)
	}

	// Callers get a copy.
	tabs[0] = Tab4
	assert.Equal(t, Tab1, All()[0])
}

func TestString(t *testing.T) {
	assert.Equal(t, "Tab 1", Tab1.String())
	assert.Equal(t, "Tab 4", Tab4.String())
}
