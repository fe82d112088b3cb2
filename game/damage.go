package game

import "math"

// Modifier adjusts attack power and defense factor before they are combined. Commander
// abilities belong here; none are computed by this package.
type Modifier func(attack, defense float64) (float64, float64)

// Damage returns the expected damage percentage dealt by an attacker of kind attacker to a
// defender of kind defender standing on terrain. Hit points may be given on either the 0-10
// or the 0-100 scale. The result is rounded to one decimal and never negative.
func Damage(rules *RulesTable, attacker, defender UnitKind, attackerHP, defenderHP float64, terrain Terrain) float64 {
	return DamageWith(rules, attacker, defender, attackerHP, defenderHP, terrain)
}

// DamageWith is Damage with an optional chain of modifiers applied in order.
func DamageWith(rules *RulesTable, attacker, defender UnitKind, attackerHP, defenderHP float64, terrain Terrain, mods ...Modifier) float64 {
	base := rules.BaseDamage(attacker, defender)
	if base == 0 {
		return 0
	}

	// defenderHP does not enter the expected damage formula
	hp := math.Ceil(NormalizeHP(attackerHP))
	attack := float64(base) * hp / 10

	stars := rules.Stars(terrain)
	if rules.Unit(defender).Class == Air {
		stars = 0
	}
	defense := DefenseFactor(stars)

	for _, mod := range mods {
		attack, defense = mod(attack, defense)
	}

	dmg := attack * defense
	if dmg <= 0 {
		return 0
	}
	return math.Round(dmg*10) / 10
}

// DefenseFactor converts terrain stars into the multiplier applied to attack power.
func DefenseFactor(stars int) float64 {
	return float64(100-stars*10) / 100
}
