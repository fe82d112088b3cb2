package engine

import (
	"sort"

	"warsoracle/game"
	"warsoracle/metrics"
	"warsoracle/searcher"
)

// threats ranks every attack an enemy unit can make against side this turn. Each enemy moves
// as if every other unit, allied or not, blocked its path.
func (a *Analyzer) threats(side game.Side, collector metrics.Collector) []ThreatRecord {
	mine := map[game.Position]game.Unit{}
	var enemies []game.Unit
	for _, u := range a.units {
		switch {
		case u.Side == side:
			mine[u.Pos] = u
		case a.teams.IsEnemy(side, u.Side):
			enemies = append(enemies, u)
		}
	}
	if len(mine) == 0 || len(enemies) == 0 {
		return []ThreatRecord{}
	}

	blocking := make(searcher.Blocking, len(a.occupied))
	for p := range a.occupied {
		blocking[p] = struct{}{}
	}

	perAttacker := make([][]ThreatRecord, len(enemies))
	a.forEach(len(enemies), func(i int) {
		perAttacker[i] = a.attacksBy(enemies[i], mine, blocking, collector)
	})

	threats := []ThreatRecord{}
	for _, records := range perAttacker {
		threats = append(threats, records...)
	}
	sort.SliceStable(threats, func(i, j int) bool {
		return threats[i].Damage > threats[j].Damage
	})
	return threats
}

// attacksBy lists the attacks attacker can make on victims, victims in row-major order.
func (a *Analyzer) attacksBy(attacker game.Unit, victims map[game.Position]game.Unit, blocking searcher.Blocking, collector metrics.Collector) []ThreatRecord {
	rule := a.rules.Unit(attacker.Kind)
	if !rule.Range.CanAttack() {
		return nil
	}

	// Indirect units fire from where they stand unless they may move and fire
	origins := []game.Position{attacker.Pos}
	if rule.Range.Direct() || rule.MoveAndFire {
		reach := a.Reachable(attacker, blocking)
		collector.AddSearch(len(reach))
		origins = reach.Positions()
	}

	targets := map[game.Position]bool{}
	for _, origin := range origins {
		for p := range inRange(origin, rule.Range) {
			if _, ok := victims[p]; ok {
				targets[p] = true
			}
		}
	}

	positions := make([]game.Position, 0, len(targets))
	for p := range targets {
		positions = append(positions, p)
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].Less(positions[j]) })

	var records []ThreatRecord
	for _, p := range positions {
		victim := victims[p]
		dmg := game.Damage(a.rules, attacker.Kind, victim.Kind, attacker.HP, victim.HP, a.grid.TerrainAt(p))
		if dmg == 0 {
			continue
		}
		records = append(records, ThreatRecord{
			Attacker: AttackerRef{
				Kind: attacker.Kind,
				ID:   attacker.ID,
				Pos:  attacker.Pos,
				Side: attacker.Side,
			},
			Victim: VictimRef{
				Kind: victim.Kind,
				ID:   victim.ID,
				Pos:  p,
			},
			Damage: dmg,
		})
	}
	return records
}

// inRange yields the cells whose manhattan distance from origin lies in r, scanning the
// square of radius r.Max around origin. Cells may lie outside the grid.
func inRange(origin game.Position, r game.Range) map[game.Position]struct{} {
	cells := map[game.Position]struct{}{}
	for dy := -r.Max; dy <= r.Max; dy++ {
		for dx := -r.Max; dx <= r.Max; dx++ {
			p := game.Position{X: origin.X + dx, Y: origin.Y + dy}
			if r.Contains(origin.Distance(p)) {
				cells[p] = struct{}{}
			}
		}
	}
	return cells
}
