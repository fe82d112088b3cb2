package game

import (
	"math"
	"strconv"
)

// Side is a player's slot in the game, starting at 0.
type Side int

func (s Side) String() string {
	return strconv.Itoa(int(s))
}

// UnitKind names a unit type, e.g. "infantry" or "mediumTank".
type UnitKind string

const (
	Infantry        UnitKind = "infantry"
	MechInfantry    UnitKind = "mech"
	Recon           UnitKind = "recon"
	Tank            UnitKind = "tank"
	MediumTank      UnitKind = "mediumTank"
	NeoTank         UnitKind = "neoTank"
	APC             UnitKind = "apc"
	Artillery       UnitKind = "artillery"
	Rocket          UnitKind = "rocket"
	AntiAir         UnitKind = "antiAir"
	Missile         UnitKind = "missile"
	Fighter         UnitKind = "fighter"
	Bomber          UnitKind = "bomber"
	BattleCopter    UnitKind = "battleCopter"
	TransportCopter UnitKind = "transportCopter"
	Battleship      UnitKind = "battleship"
	Cruiser         UnitKind = "cruiser"
	Lander          UnitKind = "lander"
	Sub             UnitKind = "sub"
	BlackBoat       UnitKind = "blackBoat"
	Stealth         UnitKind = "stealth"
)

// CanCapture reports whether units of this kind can capture properties.
func (k UnitKind) CanCapture() bool {
	return k == Infantry || k == MechInfantry
}

// Unit is a snapshot of one unit on the board. The engine never mutates units.
type Unit struct {
	ID   string
	Kind UnitKind
	Pos  Position
	Side Side
	HP   float64 // 0-10 or 0-100
	Fuel *float64
}

// NormalizeHP maps a hit point value onto the 0-10 scale.
func NormalizeHP(hp float64) float64 {
	if hp > 10 {
		return hp / 10
	}
	return hp
}

// DisplayHP is the whole-number health shown in game, which is what combat uses.
func (u Unit) DisplayHP() float64 {
	return math.Ceil(NormalizeHP(u.HP))
}
