package game

import "sort"

// Player is the per-slot metadata of a game.
type Player struct {
	Slot       Side
	Username   string
	CO         string
	Funds      int
	Income     int
	Eliminated bool
	IsTurn     bool
	UnitValue  *int // live unit value reported by the game, if known
}

// Teams maps every side to its team. A nil or empty Teams makes every side its own team.
type Teams struct {
	GameID  int
	ByTeam  map[string][]Player
	bySide  map[Side]string
	players map[Side]Player
}

// NewTeams indexes team membership by side.
func NewTeams(gameID int, byTeam map[string][]Player) *Teams {
	t := &Teams{
		GameID:  gameID,
		ByTeam:  byTeam,
		bySide:  make(map[Side]string),
		players: make(map[Side]Player),
	}
	for name, players := range byTeam {
		for _, p := range players {
			t.bySide[p.Slot] = name
			t.players[p.Slot] = p
		}
	}
	return t
}

func (t *Teams) empty() bool {
	return t == nil || len(t.bySide) == 0
}

// TeamOf returns the team name of side, falling back to the side's own id.
func (t *Teams) TeamOf(side Side) string {
	if t.empty() {
		return side.String()
	}
	if name, ok := t.bySide[side]; ok {
		return name
	}
	return side.String()
}

// IsEnemy reports whether a and b are on different teams.
func (t *Teams) IsEnemy(a, b Side) bool {
	return t.TeamOf(a) != t.TeamOf(b)
}

// Contains reports whether side is known. Without metadata every side is known.
func (t *Teams) Contains(side Side) bool {
	if t.empty() {
		return true
	}
	_, ok := t.bySide[side]
	return ok
}

// Eliminated reports whether the player in side has been knocked out.
func (t *Teams) Eliminated(side Side) bool {
	if t.empty() {
		return false
	}
	return t.players[side].Eliminated
}

// Player returns the metadata of side.
func (t *Teams) Player(side Side) (Player, bool) {
	if t.empty() {
		return Player{}, false
	}
	p, ok := t.players[side]
	return p, ok
}

// Sides returns all known sides in ascending order.
func (t *Teams) Sides() []Side {
	if t.empty() {
		return nil
	}
	sides := make([]Side, 0, len(t.players))
	for s := range t.players {
		sides = append(sides, s)
	}
	sort.Slice(sides, func(i, j int) bool { return sides[i] < sides[j] })
	return sides
}
