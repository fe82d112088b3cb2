// meta/meta.go
package meta

// GO_ROUTINES defines the default number of goroutines used to fan out per-unit searches.
const GO_ROUTINES = 8

// IMPASSABLE_COST is the movement cost of terrain a class cannot enter, far above any
// movement budget.
const IMPASSABLE_COST = 999

// DEFAULT_MOVE is the movement budget of a unit kind missing from the rules table.
const DEFAULT_MOVE = 3

// HIGH_RISK_DAMAGE is the damage percentage above which a threat counts as high risk.
const HIGH_RISK_DAMAGE = 50.0

// MATERIAL_MARGIN is the unit value difference separating EVEN from AHEAD/BEHIND.
const MATERIAL_MARGIN = 5000
