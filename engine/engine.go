package engine

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"warsoracle/game"
	"warsoracle/meta"
	"warsoracle/metrics"
	"warsoracle/searcher"
)

type Option func(a *Analyzer)

// Analyzer answers tactical questions about one immutable snapshot: a grid, the units on it,
// a rules table and the team metadata. It never modifies its inputs.
type Analyzer struct {
	grid       *game.Grid
	units      []game.Unit // units of players still in the game, in snapshot order
	rules      *game.RulesTable
	teams      *game.Teams
	occupied   map[game.Position]game.Unit // every unit on the board, eliminated or not
	goroutines int
	highRisk   float64
	collector  func() metrics.Collector
}

func WithGoroutines(goroutines int) Option {
	return func(a *Analyzer) {
		if goroutines > 0 {
			a.goroutines = goroutines
		}
	}
}

// WithHighRiskThreshold sets the damage percentage above which a threat counts as high risk.
func WithHighRiskThreshold(damage float64) Option {
	return func(a *Analyzer) {
		if damage > 0 {
			a.highRisk = damage
		}
	}
}

func WithMetrics() Option {
	return func(a *Analyzer) {
		a.collector = metrics.NewCollector
	}
}

// NewAnalyzer validates the snapshot and indexes it. Units outside the grid, two units on
// the same cell and units of sides missing from non-empty team metadata are rejected. Units
// of eliminated players keep blocking and occupying their cells but are otherwise left out.
func NewAnalyzer(grid *game.Grid, units []game.Unit, rules *game.RulesTable, teams *game.Teams, options ...Option) (*Analyzer, error) {
	if grid == nil {
		return nil, fmt.Errorf("%w: nil grid", game.ErrMalformedInput)
	}
	a := &Analyzer{ // Default values
		grid:       grid,
		rules:      rules,
		teams:      teams,
		occupied:   make(map[game.Position]game.Unit, len(units)),
		goroutines: meta.GO_ROUTINES,
		highRisk:   meta.HIGH_RISK_DAMAGE,
		collector:  metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(a)
	}
	if a.rules == nil {
		a.rules = &game.RulesTable{}
	}

	for _, u := range units {
		if !grid.Contains(u.Pos) {
			return nil, fmt.Errorf("%w: unit %s at %s is outside the %dx%d grid",
				game.ErrMalformedInput, u.ID, u.Pos, grid.Width(), grid.Height())
		}
		if !teams.Contains(u.Side) {
			return nil, fmt.Errorf("%w: unit %s: %w %s", game.ErrMalformedInput, u.ID, game.ErrUnknownSide, u.Side)
		}
		if other, ok := a.occupied[u.Pos]; ok {
			return nil, fmt.Errorf("%w: units %s and %s at %s: %w",
				game.ErrMalformedInput, other.ID, u.ID, u.Pos, game.ErrOccupied)
		}
		a.occupied[u.Pos] = u
		if teams.Eliminated(u.Side) {
			// Leftover units keep their cell and keep blocking movement.
			log.Debug().Msgf("unit %s of eliminated side %s only occupies its cell", u.ID, u.Side)
			continue
		}
		a.units = append(a.units, u)
	}

	missing := map[game.UnitKind]bool{}
	for _, u := range a.units {
		if _, ok := a.rules.Lookup(u.Kind); !ok && !missing[u.Kind] {
			missing[u.Kind] = true
			log.Debug().Msgf("no rules for unit kind %q, using defaults", u.Kind)
		}
	}

	return a, nil
}

// Analyze composes threats, captures and the economy summary for side.
func (a *Analyzer) Analyze(side game.Side) (*Report, error) {
	if !a.teams.Contains(side) {
		return nil, fmt.Errorf("%w: %w %s", game.ErrMalformedInput, game.ErrUnknownSide, side)
	}

	collector := a.collector()
	collector.Start(int(side), a.goroutines)

	threats := a.threats(side, collector)
	collector.SetThreats(len(threats))
	captures := a.captures(side, collector)
	collector.SetCaptures(len(captures))
	economy := a.Economy()

	report := &Report{
		Side:     side,
		Threats:  threats,
		Captures: captures,
		Economy:  economy,
		Summary:  a.summarize(side, threats, economy),
		Metric:   collector.Complete(),
	}

	log.Debug().Msgf("side %s: %d threats, %d captures", side, len(threats), len(captures))
	return report, nil
}

// Threats lists every attack enemy units can make on side's units this turn, most damaging first.
func (a *Analyzer) Threats(side game.Side) ([]ThreatRecord, error) {
	if !a.teams.Contains(side) {
		return nil, fmt.Errorf("%w: %w %s", game.ErrMalformedInput, game.ErrUnknownSide, side)
	}
	return a.threats(side, metrics.NewDummyCollector()), nil
}

// Captures lists every property side's infantry and mechs can reach and capture this turn.
func (a *Analyzer) Captures(side game.Side) ([]CaptureRecord, error) {
	if !a.teams.Contains(side) {
		return nil, fmt.Errorf("%w: %w %s", game.ErrMalformedInput, game.ErrUnknownSide, side)
	}
	return a.captures(side, metrics.NewDummyCollector()), nil
}

// Reachable returns the cells u can move to this turn, treating blocking as impassable.
func (a *Analyzer) Reachable(u game.Unit, blocking searcher.Blocking) searcher.Reach {
	rule := a.rules.Unit(u.Kind)
	return searcher.Reachable(a.grid, u.Pos, rule.Move, rule.Class, blocking)
}

// unitAt returns the unit standing at p, including units of eliminated players.
func (a *Analyzer) unitAt(p game.Position) (game.Unit, bool) {
	u, ok := a.occupied[p]
	return u, ok
}

// forEach runs work(i) for i in [0, n) on up to a.goroutines goroutines.
func (a *Analyzer) forEach(n int, work func(i int)) {
	task := make(chan int, n)
	for i := 0; i < n; i++ {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for g := 0; g < min(a.goroutines, n); g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				work(i)
			}
		}()
	}

	wg.Wait()
}
