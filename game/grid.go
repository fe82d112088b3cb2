package game

import (
	"fmt"

	"warsoracle/utils"
)

// Position is a grid coordinate. x grows to the east, y to the south.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Distance returns the manhattan distance between two positions.
func (p Position) Distance(o Position) int {
	return utils.Manhattan(p.X, p.Y, o.X, o.Y)
}

// Less orders positions row-major.
func (p Position) Less(o Position) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

// Up, down, right, left
var directions = [4]Position{{0, -1}, {0, 1}, {1, 0}, {-1, 0}}

// Neighbors returns the 4-connected neighbours of p, including ones outside any grid.
func (p Position) Neighbors() [4]Position {
	var out [4]Position
	for i, d := range directions {
		out[i] = Position{p.X + d.X, p.Y + d.Y}
	}
	return out
}

// Cell is one tile of the map. Owner is only meaningful for property terrain; nil means neutral.
type Cell struct {
	Terrain Terrain
	Owner   *Side
}

// OwnedBy reports whether the cell belongs to side.
func (c Cell) OwnedBy(side Side) bool {
	return c.Owner != nil && *c.Owner == side
}

// Grid is an immutable rectangular map.
type Grid struct {
	width  int
	height int
	cells  []Cell // row-major
}

// NewGrid builds a grid from rows of cells. Every row must have the same, non-zero length.
func NewGrid(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: grid has no rows", ErrMalformedInput)
	}
	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: grid row 0 is empty", ErrMalformedInput)
	}
	g := &Grid{
		width:  width,
		height: len(rows),
		cells:  make([]Cell, 0, width*len(rows)),
	}
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: grid row %d has %d cells, want %d", ErrMalformedInput, y, len(row), width)
		}
		for _, c := range row {
			if c.Owner != nil {
				owner := *c.Owner
				c.Owner = &owner
			}
			g.cells = append(g.cells, c)
		}
	}
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Contains reports whether p lies inside the grid.
func (g *Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns a copy of the cell at p, owner included. It panics when p is outside the grid;
// callers check Contains first.
func (g *Grid) At(p Position) Cell {
	c := g.cell(p)
	if c.Owner != nil {
		owner := *c.Owner
		c.Owner = &owner
	}
	return c
}

// TerrainAt returns the terrain at p without copying the owner.
func (g *Grid) TerrainAt(p Position) Terrain {
	return g.cell(p).Terrain
}

func (g *Grid) cell(p Position) Cell {
	if !g.Contains(p) {
		panic(fmt.Sprintf("position %s outside %dx%d grid", p, g.width, g.height))
	}
	return g.cells[p.Y*g.width+p.X]
}

// Index returns the row-major index of p.
func (g *Grid) Index(p Position) int {
	return p.Y*g.width + p.X
}
