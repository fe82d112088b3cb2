package game

// NewStandardRules returns the Advance Wars 2 rules table: unit stats, primary/secondary weapon
// base damage and terrain defense stars. Every call returns a fresh table the caller may modify.
func NewStandardRules() *RulesTable {
	units := make(map[UnitKind]UnitRule, len(standardUnits))
	for kind, rule := range standardUnits {
		units[kind] = rule
	}
	matchups := make(map[UnitKind]map[UnitKind]int, len(standardMatchups))
	for attacker, row := range standardMatchups {
		copied := make(map[UnitKind]int, len(row))
		for defender, dmg := range row {
			copied[defender] = dmg
		}
		matchups[attacker] = copied
	}
	defense := make(map[Terrain]int, len(standardDefense))
	for t, stars := range standardDefense {
		defense[t] = stars
	}
	return &RulesTable{
		Units:          units,
		Matchups:       matchups,
		TerrainDefense: defense,
	}
}

var (
	direct   = Range{Min: 1, Max: 1}
	unarmed  = Range{}
	artRange = Range{Min: 2, Max: 3}
	longRng  = Range{Min: 3, Max: 5}
)

var standardUnits = map[UnitKind]UnitRule{
	Infantry:        {Move: 3, Class: Foot, Range: direct, Cost: 1000},
	MechInfantry:    {Move: 2, Class: Mech, Range: direct, Cost: 3000},
	Recon:           {Move: 8, Class: Tires, Range: direct, Cost: 4000},
	Tank:            {Move: 6, Class: Tread, Range: direct, Cost: 7000},
	MediumTank:      {Move: 5, Class: Tread, Range: direct, Cost: 16000},
	NeoTank:         {Move: 6, Class: Tread, Range: direct, Cost: 22000},
	APC:             {Move: 6, Class: Tread, Range: unarmed, Cost: 5000},
	Artillery:       {Move: 5, Class: Tread, Range: artRange, Cost: 6000},
	Rocket:          {Move: 5, Class: Tires, Range: longRng, Cost: 15000},
	AntiAir:         {Move: 6, Class: Tread, Range: direct, Cost: 8000},
	Missile:         {Move: 4, Class: Tires, Range: longRng, Cost: 12000},
	Fighter:         {Move: 9, Class: Air, Range: direct, Cost: 20000},
	Bomber:          {Move: 7, Class: Air, Range: direct, Cost: 22000},
	BattleCopter:    {Move: 6, Class: Air, Range: direct, Cost: 9000},
	TransportCopter: {Move: 6, Class: Air, Range: unarmed, Cost: 5000},
	Battleship:      {Move: 5, Class: Ship, Range: Range{Min: 2, Max: 6}, Cost: 28000},
	Cruiser:         {Move: 6, Class: Ship, Range: direct, Cost: 18000},
	Lander:          {Move: 6, Class: Transport, Range: unarmed, Cost: 12000},
	Sub:             {Move: 5, Class: Ship, Range: direct, Cost: 20000},
	BlackBoat:       {Move: 7, Class: Transport, Range: unarmed, Cost: 7500},
	Stealth:         {Move: 6, Class: Air, Range: direct, Cost: 24000},
}

// Best of primary and secondary weapon
var standardMatchups = map[UnitKind]map[UnitKind]int{
	Infantry: {
		Infantry: 55, MechInfantry: 45, Recon: 12, Tank: 5, MediumTank: 1, NeoTank: 1, APC: 14,
		Artillery: 15, Rocket: 25, AntiAir: 5, Missile: 25, BattleCopter: 7, TransportCopter: 30,
	},
	MechInfantry: {
		Infantry: 65, MechInfantry: 55, Recon: 85, Tank: 55, MediumTank: 15, NeoTank: 15, APC: 75,
		Artillery: 70, Rocket: 85, AntiAir: 65, Missile: 85, BattleCopter: 9, TransportCopter: 35,
	},
	Recon: {
		Infantry: 70, MechInfantry: 65, Recon: 35, Tank: 6, MediumTank: 1, NeoTank: 1, APC: 45,
		Artillery: 45, Rocket: 55, AntiAir: 4, Missile: 28, BattleCopter: 10, TransportCopter: 35,
	},
	Tank: {
		Infantry: 75, MechInfantry: 70, Recon: 85, Tank: 55, MediumTank: 15, NeoTank: 15, APC: 75,
		Artillery: 70, Rocket: 85, AntiAir: 65, Missile: 85, BattleCopter: 10, TransportCopter: 40,
		Battleship: 1, Cruiser: 5, Lander: 10, Sub: 1, BlackBoat: 10,
	},
	MediumTank: {
		Infantry: 105, MechInfantry: 95, Recon: 105, Tank: 85, MediumTank: 55, NeoTank: 45, APC: 105,
		Artillery: 105, Rocket: 105, AntiAir: 105, Missile: 105, BattleCopter: 12, TransportCopter: 45,
		Battleship: 10, Cruiser: 45, Lander: 35, Sub: 10, BlackBoat: 35,
	},
	NeoTank: {
		Infantry: 125, MechInfantry: 115, Recon: 125, Tank: 105, MediumTank: 75, NeoTank: 55, APC: 125,
		Artillery: 115, Rocket: 125, AntiAir: 115, Missile: 125, BattleCopter: 22, TransportCopter: 55,
		Battleship: 15, Cruiser: 50, Lander: 40, Sub: 15, BlackBoat: 40,
	},
	Artillery: {
		Infantry: 90, MechInfantry: 85, Recon: 80, Tank: 70, MediumTank: 45, NeoTank: 40, APC: 70,
		Artillery: 75, Rocket: 80, AntiAir: 75, Missile: 80,
		Battleship: 40, Cruiser: 50, Lander: 55, Sub: 60, BlackBoat: 55,
	},
	Rocket: {
		Infantry: 95, MechInfantry: 90, Recon: 90, Tank: 80, MediumTank: 55, NeoTank: 50, APC: 80,
		Artillery: 80, Rocket: 85, AntiAir: 85, Missile: 90,
		Battleship: 55, Cruiser: 60, Lander: 60, Sub: 85, BlackBoat: 60,
	},
	AntiAir: {
		Infantry: 105, MechInfantry: 105, Recon: 60, Tank: 25, MediumTank: 10, NeoTank: 5, APC: 50,
		Artillery: 50, Rocket: 55, AntiAir: 45, Missile: 55,
		BattleCopter: 120, TransportCopter: 120, Fighter: 65, Bomber: 75, Stealth: 75,
	},
	Missile: {
		Fighter: 100, Bomber: 100, BattleCopter: 120, TransportCopter: 120, Stealth: 100,
	},
	Fighter: {
		Fighter: 55, Bomber: 100, BattleCopter: 100, TransportCopter: 100, Stealth: 85,
	},
	Bomber: {
		Infantry: 110, MechInfantry: 110, Recon: 105, Tank: 105, MediumTank: 95, NeoTank: 90, APC: 105,
		Artillery: 105, Rocket: 105, AntiAir: 95, Missile: 105,
		Battleship: 85, Cruiser: 50, Lander: 95, Sub: 95, BlackBoat: 95,
	},
	BattleCopter: {
		Infantry: 75, MechInfantry: 75, Recon: 55, Tank: 55, MediumTank: 25, NeoTank: 20, APC: 60,
		Artillery: 65, Rocket: 65, AntiAir: 25, Missile: 65, BattleCopter: 65, TransportCopter: 95,
		Battleship: 25, Cruiser: 55, Lander: 25, Sub: 25, BlackBoat: 25,
	},
	Battleship: {
		Infantry: 95, MechInfantry: 90, Recon: 90, Tank: 80, MediumTank: 55, NeoTank: 50, APC: 80,
		Artillery: 80, Rocket: 85, AntiAir: 85, Missile: 90,
		Battleship: 50, Cruiser: 95, Lander: 95, Sub: 95, BlackBoat: 95,
	},
	Cruiser: {
		BattleCopter: 115, TransportCopter: 115, Fighter: 55, Bomber: 65, Stealth: 100,
		Cruiser: 25, Sub: 90,
	},
	Sub: {
		Battleship: 55, Cruiser: 25, Lander: 95, Sub: 55, BlackBoat: 95,
	},
	Stealth: {
		Infantry: 90, MechInfantry: 90, Recon: 85, Tank: 75, MediumTank: 70, NeoTank: 60, APC: 85,
		Artillery: 75, Rocket: 85, AntiAir: 50, Missile: 85,
		Fighter: 45, Bomber: 70, BattleCopter: 85, TransportCopter: 95, Stealth: 55,
		Battleship: 45, Cruiser: 35, Lander: 65, Sub: 55, BlackBoat: 65,
	},
}

var standardDefense = map[Terrain]int{
	Plain: 1, Mountain: 4, Wood: 2, River: 0, Road: 0, Sea: 0, Reef: 1, Shoal: 0,
	City: 3, Base: 3, Airport: 3, Port: 3, HQ: 4, Lab: 3, ComTower: 3, Pipe: 0, Silo: 3,
}
