package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func plainRow(n int) []Cell {
	row := make([]Cell, n)
	for i := range row {
		row[i] = Cell{Terrain: Plain}
	}
	return row
}

func TestNewGrid(t *testing.T) {
	t.Run("Rectangular", func(t *testing.T) {
		g, err := NewGrid([][]Cell{plainRow(3), plainRow(3)})
		require.NoError(t, err)
		require.Equal(t, 3, g.Width())
		require.Equal(t, 2, g.Height())
		require.True(t, g.Contains(Position{2, 1}))
		require.False(t, g.Contains(Position{3, 1}))
		require.False(t, g.Contains(Position{0, -1}))
		require.Equal(t, 5, g.Index(Position{2, 1}))
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := NewGrid(nil)
		require.ErrorIs(t, err, ErrMalformedInput)
		_, err = NewGrid([][]Cell{{}})
		require.ErrorIs(t, err, ErrMalformedInput)
	})

	t.Run("Ragged", func(t *testing.T) {
		_, err := NewGrid([][]Cell{plainRow(3), plainRow(2)})
		require.ErrorIs(t, err, ErrMalformedInput)
	})

	t.Run("OwnersAreCopied", func(t *testing.T) {
		owner := Side(1)
		rows := [][]Cell{{{Terrain: City, Owner: &owner}}}
		g, err := NewGrid(rows)
		require.NoError(t, err)
		owner = 2
		require.True(t, g.At(Position{0, 0}).OwnedBy(1))
		require.False(t, g.At(Position{0, 0}).OwnedBy(2))
	})

	t.Run("AtReturnsCopies", func(t *testing.T) {
		owner := Side(1)
		g, err := NewGrid([][]Cell{{{Terrain: Base, Owner: &owner}, {Terrain: Plain}}})
		require.NoError(t, err)

		cell := g.At(Position{0, 0})
		*cell.Owner = 3
		require.True(t, g.At(Position{0, 0}).OwnedBy(1), "Writing through a returned owner must not change the grid")
		require.Nil(t, g.At(Position{1, 0}).Owner)
		require.Equal(t, Base, g.TerrainAt(Position{0, 0}))
		require.Panics(t, func() { g.TerrainAt(Position{2, 0}) })
	})

	t.Run("AtOutside", func(t *testing.T) {
		g, err := NewGrid([][]Cell{plainRow(1)})
		require.NoError(t, err)
		require.Panics(t, func() { g.At(Position{1, 0}) })
	})
}

func TestPosition(t *testing.T) {
	p := Position{2, 3}
	require.Equal(t, "(2,3)", p.String())
	require.Equal(t, 4, p.Distance(Position{0, 1}))
	require.Equal(t, 0, p.Distance(p))
	require.True(t, Position{5, 0}.Less(Position{0, 1}))
	require.True(t, Position{0, 1}.Less(Position{1, 1}))
	require.False(t, p.Less(p))

	neighbors := p.Neighbors()
	require.ElementsMatch(t, []Position{{2, 2}, {2, 4}, {3, 3}, {1, 3}}, neighbors[:])
	for _, n := range neighbors {
		require.Equal(t, 1, p.Distance(n))
	}
}

func TestCellOwnedBy(t *testing.T) {
	side := Side(0)
	require.True(t, Cell{Terrain: City, Owner: &side}.OwnedBy(0))
	require.False(t, Cell{Terrain: City, Owner: &side}.OwnedBy(1))
	require.False(t, Cell{Terrain: City}.OwnedBy(0))
}
