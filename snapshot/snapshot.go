// Package snapshot decodes the JSON files the game feed produces (map, units, rules and team
// metadata) into the values the engine analyzes.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"warsoracle/game"
)

// Snapshot is one frozen game state.
type Snapshot struct {
	Grid  *game.Grid
	Units []game.Unit
	Rules *game.RulesTable
	Teams *game.Teams
}

// Files names the inputs of LoadFiles. Empty RulesPath selects the standard rules, empty
// TeamsPath means no team metadata.
type Files struct {
	MapPath   string
	UnitsPath string
	RulesPath string
	TeamsPath string
}

// LoadFiles reads and decodes every file of a snapshot. Property ownership listed in the team
// metadata overrides the owners found in the map file.
func LoadFiles(files Files) (*Snapshot, error) {
	s := &Snapshot{}

	var ownership map[game.Position]game.Side
	if files.TeamsPath != "" {
		meta, err := withFile(files.TeamsPath, DecodeMetadata)
		if err != nil {
			return nil, err
		}
		s.Teams = meta.Teams
		ownership = meta.Ownership
	}

	rows, err := withFile(files.MapPath, DecodeRows)
	if err != nil {
		return nil, err
	}
	s.Grid, err = BuildGrid(rows, ownership)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", files.MapPath, err)
	}

	s.Units, err = withFile(files.UnitsPath, DecodeUnits)
	if err != nil {
		return nil, err
	}

	if files.RulesPath == "" {
		log.Debug().Msg("no rules file given, using standard rules")
		s.Rules = game.NewStandardRules()
	} else {
		s.Rules, err = withFile(files.RulesPath, DecodeRules)
		if err != nil {
			return nil, err
		}
	}

	return s, nil
}

func withFile[T any](path string, decode func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	v, err := decode(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

type cellJSON struct {
	Type   string `json:"type"`
	Player *int   `json:"player"`
}

// DecodeRows decodes a map file: rows of {"type": terrain, "player": owner}. An owner of -1
// or no owner at all means neutral.
func DecodeRows(r io.Reader) ([][]game.Cell, error) {
	var raw [][]cellJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decoding map: %v", game.ErrMalformedInput, err)
	}

	rows := make([][]game.Cell, len(raw))
	for y, row := range raw {
		rows[y] = make([]game.Cell, len(row))
		for x, c := range row {
			terrain := game.Plain
			if c.Type != "" {
				t, err := game.ParseTerrain(c.Type)
				if err != nil {
					return nil, fmt.Errorf("%w: cell (%d,%d): %w", game.ErrMalformedInput, x, y, err)
				}
				terrain = t
			}
			cell := game.Cell{Terrain: terrain}
			if c.Player != nil && *c.Player >= 0 {
				owner := game.Side(*c.Player)
				cell.Owner = &owner
			}
			rows[y][x] = cell
		}
	}
	return rows, nil
}

// BuildGrid applies ownership overrides to rows and builds the grid. A negative side marks
// the property neutral.
func BuildGrid(rows [][]game.Cell, ownership map[game.Position]game.Side) (*game.Grid, error) {
	for p, side := range ownership {
		if p.Y < 0 || p.Y >= len(rows) || p.X < 0 || p.X >= len(rows[p.Y]) {
			return nil, fmt.Errorf("%w: ownership entry %s outside the map", game.ErrMalformedInput, p)
		}
		if side < 0 {
			rows[p.Y][p.X].Owner = nil
			continue
		}
		owner := side
		rows[p.Y][p.X].Owner = &owner
	}
	return game.NewGrid(rows)
}

// unitID accepts both string and numeric ids.
type unitID string

func (id *unitID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = unitID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("unit id must be a string or a number: %w", err)
	}
	*id = unitID(n.String())
	return nil
}

type unitJSON struct {
	ID         unitID        `json:"id"`
	Type       string        `json:"type"`
	Kind       string        `json:"kind"`
	Position   game.Position `json:"position"`
	PlayerSlot *int          `json:"playerSlot"`
	Side       *int          `json:"side"`
	Stats      struct {
		HP        *float64 `json:"hp"`
		HitPoints *float64 `json:"hitPoints"`
		Fuel      *float64 `json:"fuel"`
	} `json:"stats"`
}

// DecodeUnits decodes a units file. Both the feed's field names (type, playerSlot, hp) and the
// long form (kind, side, hitPoints) are accepted.
func DecodeUnits(r io.Reader) ([]game.Unit, error) {
	var raw []unitJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decoding units: %v", game.ErrMalformedInput, err)
	}

	units := make([]game.Unit, 0, len(raw))
	for i, u := range raw {
		kind := u.Type
		if kind == "" {
			kind = u.Kind
		}
		if kind == "" {
			return nil, fmt.Errorf("%w: unit %d (id %q) has no type", game.ErrMalformedInput, i, u.ID)
		}

		var side *int
		switch {
		case u.PlayerSlot != nil:
			side = u.PlayerSlot
		case u.Side != nil:
			side = u.Side
		default:
			return nil, fmt.Errorf("%w: unit %q has no side", game.ErrMalformedInput, u.ID)
		}

		hp := 10.0
		switch {
		case u.Stats.HP != nil:
			hp = *u.Stats.HP
		case u.Stats.HitPoints != nil:
			hp = *u.Stats.HitPoints
		}

		id := string(u.ID)
		if id == "" {
			id = strconv.Itoa(i)
		}
		units = append(units, game.Unit{
			ID:   id,
			Kind: game.UnitKind(kind),
			Pos:  u.Position,
			Side: game.Side(*side),
			HP:   hp,
			Fuel: u.Stats.Fuel,
		})
	}
	return units, nil
}

type unitRuleJSON struct {
	Move        int    `json:"move"`
	Type        string `json:"type"`
	Range       []int  `json:"range"`
	Cost        int    `json:"cost"`
	MoveAndFire bool   `json:"moveAndFire"`
}

type rulesJSON struct {
	Units             map[string]unitRuleJSON   `json:"units"`
	Matchups          map[string]map[string]int `json:"matchups"`
	TerrainDefense    map[string]int            `json:"terrain_defense"`
	TerrainDefenseAlt map[string]int            `json:"terrainDefense"`
}

// DecodeRules decodes a rules file. Units without a movement type default to foot and units
// without a range to (1,1).
func DecodeRules(r io.Reader) (*game.RulesTable, error) {
	var raw rulesJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decoding rules: %v", game.ErrMalformedInput, err)
	}

	rules := &game.RulesTable{
		Units:          make(map[game.UnitKind]game.UnitRule, len(raw.Units)),
		Matchups:       make(map[game.UnitKind]map[game.UnitKind]int, len(raw.Matchups)),
		TerrainDefense: make(map[game.Terrain]int),
	}

	for kind, u := range raw.Units {
		rule := game.UnitRule{
			Move:        u.Move,
			Class:       game.Foot,
			Range:       game.Range{Min: 1, Max: 1},
			Cost:        u.Cost,
			MoveAndFire: u.MoveAndFire,
		}
		if u.Type != "" {
			class, err := game.ParseMoveClass(u.Type)
			if err != nil {
				return nil, fmt.Errorf("unit %q: %w", kind, err)
			}
			rule.Class = class
		}
		switch len(u.Range) {
		case 0:
		case 2:
			rule.Range = game.Range{Min: u.Range[0], Max: u.Range[1]}
		default:
			return nil, fmt.Errorf("%w: unit %q range must be [min, max], got %v", game.ErrMalformedInput, kind, u.Range)
		}
		rules.Units[game.UnitKind(kind)] = rule
	}

	for attacker, row := range raw.Matchups {
		m := make(map[game.UnitKind]int, len(row))
		for defender, dmg := range row {
			m[game.UnitKind(defender)] = dmg
		}
		rules.Matchups[game.UnitKind(attacker)] = m
	}

	defense := raw.TerrainDefense
	if defense == nil {
		defense = raw.TerrainDefenseAlt
	}
	for name, stars := range defense {
		t, err := game.ParseTerrain(name)
		if err != nil {
			log.Debug().Msgf("skipping defense stars of unknown terrain %q", name)
			continue
		}
		rules.TerrainDefense[t] = stars
	}

	return rules, nil
}

type playerJSON struct {
	Slot       int    `json:"slot"`
	Username   string `json:"username"`
	CO         string `json:"co"`
	Funds      int    `json:"funds"`
	Income     int    `json:"income"`
	Eliminated bool   `json:"eliminated"`
	IsTurn     bool   `json:"is_turn"`
	LiveStats  *struct {
		UnitValue *int `json:"unit_value"`
	} `json:"live_stats"`
}

type metadataJSON struct {
	GameID int `json:"game_id"`
	Teams  map[string]struct {
		Players []playerJSON `json:"players"`
	} `json:"teams"`
	Ownership map[string]int `json:"ownership"`
}

// Metadata is the decoded team metadata file.
type Metadata struct {
	Teams     *game.Teams
	Ownership map[game.Position]game.Side
}

// DecodeMetadata decodes a team metadata file. Ownership keys have the form "x,y".
func DecodeMetadata(r io.Reader) (*Metadata, error) {
	var raw metadataJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decoding team metadata: %v", game.ErrMalformedInput, err)
	}

	byTeam := make(map[string][]game.Player, len(raw.Teams))
	for name, team := range raw.Teams {
		for _, p := range team.Players {
			player := game.Player{
				Slot:       game.Side(p.Slot),
				Username:   p.Username,
				CO:         p.CO,
				Funds:      p.Funds,
				Income:     p.Income,
				Eliminated: p.Eliminated,
				IsTurn:     p.IsTurn,
			}
			if p.LiveStats != nil {
				player.UnitValue = p.LiveStats.UnitValue
			}
			byTeam[name] = append(byTeam[name], player)
		}
	}

	ownership := make(map[game.Position]game.Side, len(raw.Ownership))
	for key, slot := range raw.Ownership {
		p, err := parseKey(key)
		if err != nil {
			return nil, err
		}
		ownership[p] = game.Side(slot)
	}

	return &Metadata{
		Teams:     game.NewTeams(raw.GameID, byTeam),
		Ownership: ownership,
	}, nil
}

func parseKey(key string) (game.Position, error) {
	xs, ys, ok := strings.Cut(key, ",")
	if !ok {
		return game.Position{}, fmt.Errorf("%w: ownership key %q is not \"x,y\"", game.ErrMalformedInput, key)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return game.Position{}, fmt.Errorf("%w: ownership key %q is not \"x,y\"", game.ErrMalformedInput, key)
	}
	return game.Position{X: x, Y: y}, nil
}
