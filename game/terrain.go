package game

import (
	"fmt"
	"strings"
)

// Terrain is the kind of a map cell.
type Terrain int

const (
	Plain Terrain = iota
	Mountain
	Wood
	River
	Road
	Sea
	Reef
	Shoal
	City
	Base
	Airport
	Port
	HQ
	Lab
	ComTower
	Forest
	Beach
	Bridge
	Pipe
	Silo
)

var terrainNames = []string{
	"plain", "mountain", "wood", "river", "road", "sea", "reef", "shoal",
	"city", "base", "airport", "port", "hq", "lab", "comTower",
	"forest", "beach", "bridge", "pipe", "silo",
}

// ASCII map characters, as drawn by the advisor's text renderer
var terrainChars = map[string]Terrain{
	".": Plain, ",": Plain,
	"^": Mountain,
	"T": Wood, "t": Wood,
	"~": River,
	"S": Sea, "s": Sea,
	"=": Road, "+": Road,
	"C": City, "c": City,
	"B": Base, "b": Base,
	"A": Airport, "a": Airport,
	"P": Port, "p": Port,
	"H": HQ, "h": HQ,
}

func (t Terrain) String() string {
	if t < 0 || int(t) >= len(terrainNames) {
		return fmt.Sprintf("terrain(%d)", int(t))
	}
	return terrainNames[t]
}

// ParseTerrain resolves a raw terrain name or map character. Names are matched case-insensitively.
func ParseTerrain(raw string) (Terrain, error) {
	if t, ok := terrainChars[raw]; ok {
		return t, nil
	}
	for i, name := range terrainNames {
		if strings.EqualFold(name, raw) {
			return Terrain(i), nil
		}
	}
	switch strings.ToLower(raw) {
	case "headquarters":
		return HQ, nil
	case "comm-tower", "commtower":
		return ComTower, nil
	case "mtn":
		return Mountain, nil
	}
	return Plain, fmt.Errorf("%w: %q", ErrUnknownTerrain, raw)
}

// Canonical folds terrain aliases onto the kind used for movement cost and defense lookups.
// Ownership and capture checks must use the raw kind.
func (t Terrain) Canonical() Terrain {
	switch t {
	case Forest:
		return Wood
	case Beach:
		return Shoal
	case Bridge:
		return Road
	case Lab, ComTower:
		return City
	case Plain, Mountain, Wood, River, Road, Sea, Reef, Shoal,
		City, Base, Airport, Port, HQ, Pipe, Silo:
		return t
	}
	return t
}

// IsProperty reports whether the terrain carries an owner and can be captured.
func (t Terrain) IsProperty() bool {
	switch t {
	case City, Base, Airport, Port, HQ, Lab, ComTower:
		return true
	}
	return false
}

func (t Terrain) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Terrain) UnmarshalText(text []byte) error {
	parsed, err := ParseTerrain(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
