package game

import "warsoracle/meta"

// Range is the inclusive manhattan distance window a unit can fire at.
type Range struct {
	Min int
	Max int
}

// CanAttack is false for units with no weapon (transports) and for empty windows.
func (r Range) CanAttack() bool {
	return r.Max >= 1 && r.Min <= r.Max
}

// Direct reports whether the unit must be adjacent to its target.
func (r Range) Direct() bool {
	return r.CanAttack() && r.Max == 1
}

// Indirect reports whether the unit fires from a distance.
func (r Range) Indirect() bool {
	return r.CanAttack() && r.Max > 1
}

// Contains reports whether distance d is inside the window.
func (r Range) Contains(d int) bool {
	return d >= r.Min && d <= r.Max
}

type UnitRule struct {
	Move  int
	Class MoveClass
	Range Range
	Cost  int
	// MoveAndFire lets an indirect unit fire after moving. No standard unit has it.
	MoveAndFire bool
}

// DefaultUnitRule applies to unit kinds the rules table does not know.
var DefaultUnitRule = UnitRule{
	Move:  meta.DEFAULT_MOVE,
	Class: Foot,
	Range: Range{Min: 1, Max: 1},
}

// RulesTable holds the static rules the analysis runs against. It is built once by the
// caller and passed explicitly; the engine treats it as read-only.
type RulesTable struct {
	Units          map[UnitKind]UnitRule
	Matchups       map[UnitKind]map[UnitKind]int // attacker -> defender -> base damage
	TerrainDefense map[Terrain]int               // stars, 0-4
}

// Lookup returns the rule for kind and whether the table defines it.
func (r *RulesTable) Lookup(kind UnitKind) (UnitRule, bool) {
	if r == nil {
		return DefaultUnitRule, false
	}
	rule, ok := r.Units[kind]
	if !ok {
		return DefaultUnitRule, false
	}
	return rule, true
}

// Unit returns the rule for kind, or DefaultUnitRule when missing.
func (r *RulesTable) Unit(kind UnitKind) UnitRule {
	rule, _ := r.Lookup(kind)
	return rule
}

// BaseDamage returns the base damage of attacker against defender. Missing entries mean the
// attacker cannot meaningfully hit the defender and yield 0.
func (r *RulesTable) BaseDamage(attacker, defender UnitKind) int {
	if r == nil {
		return 0
	}
	dmg := r.Matchups[attacker][defender]
	if dmg < 0 {
		return 0
	}
	return dmg
}

// Stars returns the defense stars of the canonical form of t, clamped to 0-4.
func (r *RulesTable) Stars(t Terrain) int {
	if r == nil {
		return 0
	}
	stars, ok := r.TerrainDefense[t.Canonical()]
	if !ok {
		stars = r.TerrainDefense[t]
	}
	return min(max(stars, 0), 4)
}
