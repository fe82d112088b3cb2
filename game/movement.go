package game

import (
	"fmt"
	"strings"

	"warsoracle/meta"
)

// MoveClass is a unit's terrain-traversal category.
type MoveClass int

const (
	Foot MoveClass = iota
	Mech
	Tread
	Tires
	Air
	Ship
	Transport
)

var moveClassNames = []string{"foot", "mech", "tread", "tires", "air", "ship", "transport"}

func (c MoveClass) String() string {
	if c < 0 || int(c) >= len(moveClassNames) {
		return fmt.Sprintf("moveClass(%d)", int(c))
	}
	return moveClassNames[c]
}

// ParseMoveClass resolves a movement class name. "boot" is accepted as an alias of mech.
func ParseMoveClass(raw string) (MoveClass, error) {
	for i, name := range moveClassNames {
		if strings.EqualFold(name, raw) {
			return MoveClass(i), nil
		}
	}
	if strings.EqualFold(raw, "boot") {
		return Mech, nil
	}
	return Foot, fmt.Errorf("%w: unknown movement class %q", ErrMalformedInput, raw)
}

func (c MoveClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *MoveClass) UnmarshalText(text []byte) error {
	parsed, err := ParseMoveClass(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

const no = meta.IMPASSABLE_COST

// Movement costs per class, indexed by canonical terrain. Kinds not listed cost 1.
var moveCosts = map[MoveClass]map[Terrain]int{
	Foot: {
		Plain: 1, Mountain: 2, Wood: 1, River: 2, Road: 1, Sea: no, Reef: no, Shoal: no,
		City: 1, Base: 1, Airport: 1, Port: 1, HQ: 1, Pipe: no, Silo: 1,
	},
	Mech: {
		Plain: 1, Mountain: 1, Wood: 1, River: 1, Road: 1, Sea: no, Reef: no, Shoal: no,
		City: 1, Base: 1, Airport: 1, Port: 1, HQ: 1, Pipe: no, Silo: 1,
	},
	Tread: {
		Plain: 1, Mountain: no, Wood: 2, River: no, Road: 1, Sea: no, Reef: no, Shoal: no,
		City: 1, Base: 1, Airport: 1, Port: 1, HQ: 1, Pipe: no, Silo: 1,
	},
	Tires: {
		Plain: 2, Mountain: no, Wood: 3, River: no, Road: 1, Sea: no, Reef: no, Shoal: no,
		City: 1, Base: 1, Airport: 1, Port: 1, HQ: 1, Pipe: no, Silo: 1,
	},
	Air: {
		Plain: 1, Mountain: 1, Wood: 1, River: 1, Road: 1, Sea: 1, Reef: 1, Shoal: 1,
		City: 1, Base: 1, Airport: 1, Port: 1, HQ: 1, Pipe: no, Silo: 1,
	},
	Ship: {
		Plain: no, Mountain: no, Wood: no, River: no, Road: no, Sea: 1, Reef: 2, Shoal: 1,
		City: no, Base: no, Airport: no, Port: 1, HQ: no, Pipe: no, Silo: no,
	},
	Transport: {
		Plain: no, Mountain: no, Wood: no, River: no, Road: no, Sea: 1, Reef: 2, Shoal: 1,
		City: no, Base: no, Airport: no, Port: 1, HQ: no, Pipe: no, Silo: no,
	},
}

// Cost returns the movement cost for entering terrain t. Impassable terrain costs
// meta.IMPASSABLE_COST. An unknown class uses the foot table.
func (c MoveClass) Cost(t Terrain) int {
	table, ok := moveCosts[c]
	if !ok {
		table = moveCosts[Foot]
	}
	if cost, ok := table[t.Canonical()]; ok {
		return cost
	}
	return 1
}

// Passable reports whether the class can ever enter terrain t.
func (c MoveClass) Passable(t Terrain) bool {
	return c.Cost(t) < meta.IMPASSABLE_COST
}
