package engine

import (
	"sort"

	"warsoracle/game"
	"warsoracle/meta"
)

// Economy summarizes funds, income and army size per side. Sides come from the team metadata,
// or from the units on the board when there is none.
func (a *Analyzer) Economy() map[game.Side]EconomyStat {
	counts := map[game.Side]int{}
	values := map[game.Side]int{}
	for _, u := range a.units {
		counts[u.Side]++
		values[u.Side] += a.rules.Unit(u.Kind).Cost * int(u.DisplayHP()) / 10
	}

	sides := a.teams.Sides()
	if sides == nil {
		for s := range counts {
			sides = append(sides, s)
		}
		sort.Slice(sides, func(i, j int) bool { return sides[i] < sides[j] })
	}

	stats := make(map[game.Side]EconomyStat, len(sides))
	for _, s := range sides {
		stat := EconomyStat{
			UnitCount: counts[s],
			UnitValue: values[s],
		}
		if p, ok := a.teams.Player(s); ok {
			stat.Username = p.Username
			stat.CO = p.CO
			stat.Funds = p.Funds
			stat.Income = p.Income
			if p.UnitValue != nil {
				stat.UnitValue = *p.UnitValue
			}
		}
		stats[s] = stat
	}
	return stats
}

// summarize counts high risk threats and compares side's army value to its strongest enemy.
func (a *Analyzer) summarize(side game.Side, threats []ThreatRecord, economy map[game.Side]EconomyStat) Summary {
	var summary Summary
	for _, t := range threats {
		if t.Damage > a.highRisk {
			summary.HighRisk++
		}
	}

	strongest := 0
	for s, stat := range economy {
		if a.teams.IsEnemy(side, s) && !a.teams.Eliminated(s) && stat.UnitValue > strongest {
			strongest = stat.UnitValue
		}
	}
	summary.MaterialDelta = economy[side].UnitValue - strongest
	switch {
	case summary.MaterialDelta > meta.MATERIAL_MARGIN:
		summary.Material = Ahead
	case summary.MaterialDelta < -meta.MATERIAL_MARGIN:
		summary.Material = Behind
	default:
		summary.Material = Even
	}
	return summary
}
