package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"warsoracle/game"
	"warsoracle/meta"
)

func newGrid(t *testing.T, rows ...[]game.Terrain) *game.Grid {
	t.Helper()
	cells := make([][]game.Cell, len(rows))
	for y, row := range rows {
		cells[y] = make([]game.Cell, len(row))
		for x, terrain := range row {
			cells[y][x] = game.Cell{Terrain: terrain}
		}
	}
	grid, err := game.NewGrid(cells)
	require.NoError(t, err)
	return grid
}

func TestReachable(t *testing.T) {
	P, M, R, S := game.Plain, game.Mountain, game.Road, game.Sea

	t.Run("plain strip within budget", func(t *testing.T) {
		grid := newGrid(t, []game.Terrain{P, P, P})
		reach := Reachable(grid, game.Position{X: 0, Y: 0}, 2, game.Foot, nil)

		require.Equal(t, []game.Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, reach.Positions())
		require.Equal(t, 2, reach[game.Position{X: 0, Y: 0}])
		require.Equal(t, 0, reach[game.Position{X: 2, Y: 0}])
	})

	t.Run("blocked neighbour stops the search", func(t *testing.T) {
		grid := newGrid(t, []game.Terrain{P, P, P})
		reach := Reachable(grid, game.Position{X: 0, Y: 0}, 2, game.Foot, NewBlocking(game.Position{X: 1, Y: 0}))

		require.Equal(t, []game.Position{{X: 0, Y: 0}}, reach.Positions())
	})

	t.Run("start is reachable with zero budget", func(t *testing.T) {
		grid := newGrid(t, []game.Terrain{P, P})
		reach := Reachable(grid, game.Position{X: 1, Y: 0}, 0, game.Foot, nil)
		require.Equal(t, Reach{{X: 1, Y: 0}: 0}, reach)

		reach = Reachable(grid, game.Position{X: 1, Y: 0}, -4, game.Foot, nil)
		require.Equal(t, Reach{{X: 1, Y: 0}: 0}, reach, "Negative budgets should behave like zero")
	})

	t.Run("start inside blocking", func(t *testing.T) {
		grid := newGrid(t, []game.Terrain{P, P})
		start := game.Position{X: 0, Y: 0}
		reach := Reachable(grid, start, 1, game.Foot, NewBlocking(start))
		require.True(t, reach.Contains(start))
		require.True(t, reach.Contains(game.Position{X: 1, Y: 0}))
	})

	t.Run("cheapest path is kept", func(t *testing.T) {
		// Straight through the mountain costs 2+1, the road detour costs 1+1+1+1
		grid := newGrid(t,
			[]game.Terrain{P, M, P},
			[]game.Terrain{R, R, R},
		)
		reach := Reachable(grid, game.Position{X: 0, Y: 0}, 3, game.Foot, nil)

		require.Equal(t, 1, reach[game.Position{X: 1, Y: 0}], "Mountain entered directly")
		require.Equal(t, 0, reach[game.Position{X: 2, Y: 0}])
		require.Equal(t, 1, reach[game.Position{X: 1, Y: 1}])
		require.Equal(t, 0, reach[game.Position{X: 2, Y: 1}])
	})

	t.Run("impassable terrain", func(t *testing.T) {
		grid := newGrid(t, []game.Terrain{P, S, P})
		reach := Reachable(grid, game.Position{X: 0, Y: 0}, 50, game.Foot, nil)
		require.Equal(t, []game.Position{{X: 0, Y: 0}}, reach.Positions())

		reach = Reachable(grid, game.Position{X: 0, Y: 0}, 50, game.Air, nil)
		require.Len(t, reach, 3)
	})

	t.Run("beaches are open to ships only", func(t *testing.T) {
		grid := newGrid(t, []game.Terrain{P, game.Beach, S})
		beach := game.Position{X: 1, Y: 0}

		reach := Reachable(grid, game.Position{X: 0, Y: 0}, 3, game.Foot, nil)
		require.False(t, reach.Contains(beach), "Foot units cannot land on a beach")

		reach = Reachable(grid, game.Position{X: 2, Y: 0}, 3, game.Ship, nil)
		require.True(t, reach.Contains(beach))
		require.Equal(t, 2, reach[beach])
		require.False(t, reach.Contains(game.Position{X: 0, Y: 0}))
	})

	t.Run("class costs apply", func(t *testing.T) {
		grid := newGrid(t, []game.Terrain{P, P, P, P})
		reach := Reachable(grid, game.Position{X: 0, Y: 0}, 4, game.Tires, nil)
		require.Equal(t, []game.Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, reach.Positions())
	})
}

// Bellman-Ford style relaxation until fixpoint, used as a slow reference.
func referenceCosts(grid *game.Grid, start game.Position, class game.MoveClass, blocking Blocking) map[game.Position]int {
	const inf = 1 << 30
	dist := make(map[game.Position]int)
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			dist[game.Position{X: x, Y: y}] = inf
		}
	}
	dist[start] = 0
	for changed := true; changed; {
		changed = false
		for p, d := range dist {
			if d == inf {
				continue
			}
			for _, n := range p.Neighbors() {
				if !grid.Contains(n) {
					continue
				}
				cost := class.Cost(grid.At(n).Terrain)
				if blocking.Contains(n) {
					cost = meta.IMPASSABLE_COST
				}
				if d+cost < dist[n] {
					dist[n] = d + cost
					changed = true
				}
			}
		}
	}
	return dist
}

func randomGrid(t *testing.T, r *rand.Rand, width, height int) *game.Grid {
	terrains := []game.Terrain{game.Plain, game.Plain, game.Plain, game.Mountain, game.Wood,
		game.River, game.Road, game.Sea, game.Forest, game.City, game.Bridge}
	rows := make([][]game.Terrain, height)
	for y := range rows {
		rows[y] = make([]game.Terrain, width)
		for x := range rows[y] {
			rows[y][x] = terrains[r.Intn(len(terrains))]
		}
	}
	return newGrid(t, rows...)
}

func TestReachableProperties(t *testing.T) {
	r := rand.New(rand.NewSource(20241019))
	classes := []game.MoveClass{game.Foot, game.Mech, game.Tread, game.Tires, game.Air}

	for i := 0; i < 200; i++ {
		width, height := 1+r.Intn(7), 1+r.Intn(7)
		grid := randomGrid(t, r, width, height)
		start := game.Position{X: r.Intn(width), Y: r.Intn(height)}
		class := classes[r.Intn(len(classes))]
		budget := r.Intn(9)

		blocking := NewBlocking()
		for j := r.Intn(4); j > 0; j-- {
			blocking[game.Position{X: r.Intn(width), Y: r.Intn(height)}] = struct{}{}
		}

		reach := Reachable(grid, start, budget, class, blocking)
		wider := Reachable(grid, start, budget+1, class, blocking)
		reference := referenceCosts(grid, start, class, blocking)

		require.True(t, reach.Contains(start), "start must be reachable")
		for p, left := range reach {
			require.True(t, grid.Contains(p))
			require.GreaterOrEqual(t, left, 0)
			require.Equal(t, reference[p], budget-left, "cheapest cost to %s", p)
			require.True(t, wider.Contains(p), "budget %d reaches %s but %d does not", budget, p, budget+1)
			if p != start {
				require.False(t, blocking.Contains(p), "blocked %s must not be reachable", p)
			}
		}
		for p, cost := range reference {
			if cost <= budget {
				require.True(t, reach.Contains(p), "%s costs %d within budget %d", p, cost, budget)
			}
		}
	}
}
