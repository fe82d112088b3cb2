package engine

import (
	"warsoracle/game"
	"warsoracle/metrics"
	"warsoracle/searcher"
)

// captures lists the properties side's capturing units can end their move on this turn.
// Only enemy units block movement; allies can be passed through but not stopped on.
func (a *Analyzer) captures(side game.Side, collector metrics.Collector) []CaptureRecord {
	var capturers []game.Unit
	blocking := searcher.Blocking{}
	for _, u := range a.units {
		if u.Side == side && u.Kind.CanCapture() {
			capturers = append(capturers, u)
		}
	}
	for p, u := range a.occupied {
		if a.teams.IsEnemy(side, u.Side) {
			blocking[p] = struct{}{}
		}
	}

	perUnit := make([][]CaptureRecord, len(capturers))
	a.forEach(len(capturers), func(i int) {
		u := capturers[i]
		reach := a.Reachable(u, blocking)
		collector.AddSearch(len(reach))
		perUnit[i] = a.capturesFrom(u, side, reach)
	})

	captures := []CaptureRecord{}
	for _, records := range perUnit {
		captures = append(captures, records...)
	}
	return captures
}

func (a *Analyzer) capturesFrom(u game.Unit, side game.Side, reach searcher.Reach) []CaptureRecord {
	var records []CaptureRecord
	for _, p := range reach.Positions() {
		if _, ok := a.unitAt(p); ok && p != u.Pos {
			continue
		}
		cell := a.grid.At(p)
		if !cell.Terrain.IsProperty() || cell.OwnedBy(side) {
			continue
		}
		records = append(records, CaptureRecord{
			UnitID:       u.ID,
			Pos:          p,
			Property:     cell.Terrain,
			Owner:        cell.Owner,
			TurnsToReach: 1,
		})
	}
	return records
}
