package engine

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"warsoracle/game"
	"warsoracle/metrics"
)

type AttackerRef struct {
	Kind game.UnitKind `json:"type"`
	ID   string        `json:"id"`
	Pos  game.Position `json:"-"`
	Side game.Side     `json:"player"`
}

type VictimRef struct {
	Kind game.UnitKind `json:"type"`
	ID   string        `json:"id"`
	Pos  game.Position `json:"-"`
}

// ThreatRecord is one attack an enemy unit can make this turn.
type ThreatRecord struct {
	Attacker AttackerRef
	Victim   VictimRef
	Damage   float64 // expected damage in percent of the victim's health
}

// CaptureRecord is one property a unit can reach and start capturing this turn.
type CaptureRecord struct {
	UnitID       string
	Pos          game.Position
	Property     game.Terrain
	Owner        *game.Side // nil when neutral
	TurnsToReach int
}

type EconomyStat struct {
	Username  string `json:"username"`
	CO        string `json:"co"`
	Funds     int    `json:"funds"`
	Income    int    `json:"income"`
	UnitCount int    `json:"unit_count"`
	UnitValue int    `json:"unit_value"`
}

type Material string

const (
	Ahead  Material = "AHEAD"
	Behind Material = "BEHIND"
	Even   Material = "EVEN"
)

type Summary struct {
	HighRisk      int      `json:"high_risk"`
	Material      Material `json:"material"`
	MaterialDelta int      `json:"material_delta"`
}

// Report is the full analysis for one side.
type Report struct {
	Side     game.Side                 `json:"side"`
	Threats  []ThreatRecord            `json:"threats"`
	Captures []CaptureRecord           `json:"captures"`
	Economy  map[game.Side]EconomyStat `json:"economy"`
	Summary  Summary                   `json:"summary"`
	Metric   metrics.AnalysisMetric    `json:"-"`
}

func (p AttackerRef) MarshalJSON() ([]byte, error) {
	type alias AttackerRef
	return json.Marshal(struct {
		alias
		Pos [2]int `json:"pos"`
	}{alias(p), [2]int{p.Pos.X, p.Pos.Y}})
}

func (v VictimRef) MarshalJSON() ([]byte, error) {
	type alias VictimRef
	return json.Marshal(struct {
		alias
		Pos [2]int `json:"pos"`
	}{alias(v), [2]int{v.Pos.X, v.Pos.Y}})
}

func (t ThreatRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Attacker AttackerRef `json:"attacker"`
		Victim   VictimRef   `json:"victim"`
		Damage   float64     `json:"damage_pct"`
	}{t.Attacker, t.Victim, t.Damage})
}

func (c CaptureRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		UnitID       string       `json:"unit_id"`
		Pos          [2]int       `json:"pos"`
		Property     game.Terrain `json:"property_type"`
		Owner        int          `json:"current_owner"`
		TurnsToReach int          `json:"turns_to_reach"`
	}{c.UnitID, [2]int{c.Pos.X, c.Pos.Y}, c.Property, ownerID(c.Owner), c.TurnsToReach})
}

// ownerID renders a property owner the way the map feed does, -1 for neutral.
func ownerID(owner *game.Side) int {
	if owner == nil {
		return -1
	}
	return int(*owner)
}

// WriteCSV writes threats then captures as two CSV sections separated by a blank line.
func (r *Report) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	err := writer.Write([]string{"attacker_id", "attacker_type", "attacker_player", "attacker_x", "attacker_y",
		"victim_id", "victim_type", "victim_x", "victim_y", "damage_pct"})
	if err != nil {
		return fmt.Errorf("failed to write threats header: %w", err)
	}
	for _, t := range r.Threats {
		row := []string{
			t.Attacker.ID,
			string(t.Attacker.Kind),
			t.Attacker.Side.String(),
			strconv.Itoa(t.Attacker.Pos.X),
			strconv.Itoa(t.Attacker.Pos.Y),
			t.Victim.ID,
			string(t.Victim.Kind),
			strconv.Itoa(t.Victim.Pos.X),
			strconv.Itoa(t.Victim.Pos.Y),
			strconv.FormatFloat(t.Damage, 'f', 1, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write threat row: %w", err)
		}
	}

	writer.Flush()
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("failed to separate sections: %w", err)
	}

	err = writer.Write([]string{"unit_id", "x", "y", "property_type", "current_owner", "turns_to_reach"})
	if err != nil {
		return fmt.Errorf("failed to write captures header: %w", err)
	}
	for _, c := range r.Captures {
		row := []string{
			c.UnitID,
			strconv.Itoa(c.Pos.X),
			strconv.Itoa(c.Pos.Y),
			c.Property.String(),
			strconv.Itoa(ownerID(c.Owner)),
			strconv.Itoa(c.TurnsToReach),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write capture row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
