package snapshotfile

import (
	"time"

	"github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
)

// document is the on-disk layout of a galaxy snapshot (YAML, JSON or TOML)
type document struct {
	GameID          string               `mapstructure:"game_id"`
	Constants       *constantsDocument   `mapstructure:"constants"`
	FormalAlliances bool                 `mapstructure:"formal_alliances"`
	Alliances       [][]string           `mapstructure:"alliances"`
	Specialists     []specialistDocument `mapstructure:"specialists"`
	Stars           []starDocument       `mapstructure:"stars"`
	Carriers        []carrierDocument    `mapstructure:"carriers"`
}

type constantsDocument struct {
	LightYear           float64       `mapstructure:"light_year"`
	CarrierSpeed        float64       `mapstructure:"carrier_speed"`
	WarpSpeedMultiplier float64       `mapstructure:"warp_speed_multiplier"`
	TickInterval        time.Duration `mapstructure:"tick_interval"`
}

type specialistDocument struct {
	ID      int              `mapstructure:"id"`
	Name    string           `mapstructure:"name"`
	Effects []effectDocument `mapstructure:"effects"`
}

type effectDocument struct {
	Kind  string  `mapstructure:"kind"`
	Value float64 `mapstructure:"value"`
}

type starDocument struct {
	ID         string  `mapstructure:"id"`
	Name       string  `mapstructure:"name"`
	X          float64 `mapstructure:"x"`
	Y          float64 `mapstructure:"y"`
	Owner      string  `mapstructure:"owner"`
	WarpGate   bool    `mapstructure:"warp_gate"`
	WormholeTo string  `mapstructure:"wormhole_to"`
	Specialist *int    `mapstructure:"specialist"`
}

type carrierDocument struct {
	ID              string             `mapstructure:"id"`
	Name            string             `mapstructure:"name"`
	Owner           string             `mapstructure:"owner"`
	X               float64            `mapstructure:"x"`
	Y               float64            `mapstructure:"y"`
	Orbiting        string             `mapstructure:"orbiting"`
	HyperspaceLevel int                `mapstructure:"hyperspace_level"`
	Specialist      *int               `mapstructure:"specialist"`
	Waypoints       []waypointDocument `mapstructure:"waypoints"`
}

type waypointDocument struct {
	Source      string `mapstructure:"source"`
	Destination string `mapstructure:"destination"`
	Delay       int    `mapstructure:"delay"`
}

// toSnapshot validates the document and builds the domain snapshot
func (d *document) toSnapshot(defaults galaxy.Constants) (*galaxy.Snapshot, error) {
	constants := defaults
	if d.Constants != nil {
		constants = mergeConstants(defaults, *d.Constants)
	}

	specialists := make(map[int]*galaxy.Specialist, len(d.Specialists))
	for _, sd := range d.Specialists {
		if _, dup := specialists[sd.ID]; dup {
			return nil, shared.NewInvalidInputError("specialists.id", "duplicate specialist")
		}
		s := &galaxy.Specialist{ID: sd.ID, Name: sd.Name}
		for _, ed := range sd.Effects {
			effect, err := galaxy.ParseSpecialistEffect(ed.Kind, ed.Value)
			if err != nil {
				return nil, err
			}
			s.Effects = append(s.Effects, effect)
		}
		specialists[sd.ID] = s
	}

	stars := make([]galaxy.Star, 0, len(d.Stars))
	for _, sd := range d.Stars {
		specialist, err := lookup(specialists, sd.Specialist)
		if err != nil {
			return nil, err
		}
		stars = append(stars, galaxy.Star{
			ID:         galaxy.StarID(sd.ID),
			Name:       sd.Name,
			Location:   shared.Location{X: sd.X, Y: sd.Y},
			Owner:      shared.PlayerIDOrZero(sd.Owner),
			WarpGate:   sd.WarpGate,
			WormholeTo: galaxy.StarID(sd.WormholeTo),
			Specialist: specialist,
		})
	}

	carriers := make([]galaxy.Carrier, 0, len(d.Carriers))
	for _, cd := range d.Carriers {
		specialist, err := lookup(specialists, cd.Specialist)
		if err != nil {
			return nil, err
		}
		carrier := galaxy.Carrier{
			ID:                       galaxy.CarrierID(cd.ID),
			Name:                     cd.Name,
			Owner:                    shared.PlayerIDOrZero(cd.Owner),
			Location:                 shared.Location{X: cd.X, Y: cd.Y},
			Orbiting:                 galaxy.StarID(cd.Orbiting),
			Specialist:               specialist,
			EffectiveHyperspaceLevel: cd.HyperspaceLevel,
		}
		for _, wd := range cd.Waypoints {
			carrier.Waypoints = append(carrier.Waypoints, galaxy.Waypoint{
				Source:      galaxy.StarID(wd.Source),
				Destination: galaxy.StarID(wd.Destination),
				DelayTicks:  wd.Delay,
			})
		}
		carriers = append(carriers, carrier)
	}

	alliances := galaxy.NewAllianceTable(d.FormalAlliances)
	for _, pair := range d.Alliances {
		if len(pair) != 2 || pair[0] == "" || pair[1] == "" {
			return nil, shared.NewInvalidInputError("alliances", "each alliance must name two players")
		}
		alliances.Ally(shared.PlayerIDOrZero(pair[0]), shared.PlayerIDOrZero(pair[1]))
	}

	return galaxy.NewSnapshot(d.GameID, stars, carriers, alliances, constants)
}

func mergeConstants(defaults galaxy.Constants, cd constantsDocument) galaxy.Constants {
	out := defaults
	if cd.LightYear != 0 {
		out.LightYear = cd.LightYear
	}
	if cd.CarrierSpeed != 0 {
		out.CarrierSpeed = cd.CarrierSpeed
	}
	if cd.WarpSpeedMultiplier != 0 {
		out.WarpSpeedMultiplier = cd.WarpSpeedMultiplier
	}
	if cd.TickInterval != 0 {
		out.TickInterval = cd.TickInterval
	}
	return out
}

func lookup(specialists map[int]*galaxy.Specialist, id *int) (*galaxy.Specialist, error) {
	if id == nil {
		return nil, nil
	}
	s, ok := specialists[*id]
	if !ok {
		return nil, shared.NewInvalidInputError("specialist", "references an undeclared specialist")
	}
	return s, nil
}

// fromSnapshot flattens a snapshot into the generic map form viper writes
func fromSnapshot(snapshot *galaxy.Snapshot) map[string]interface{} {
	c := snapshot.Constants()
	out := map[string]interface{}{
		"game_id": snapshot.GameID(),
		"constants": map[string]interface{}{
			"light_year":            c.LightYear,
			"carrier_speed":         c.CarrierSpeed,
			"warp_speed_multiplier": c.WarpSpeedMultiplier,
			"tick_interval":         c.TickInterval.String(),
		},
	}

	if table, ok := snapshot.Diplomacy().(*galaxy.AllianceTable); ok {
		out["formal_alliances"] = table.FormalAlliancesEnabled()
		var pairs [][]string
		for _, p := range table.Pairs() {
			pairs = append(pairs, []string{p[0].Value(), p[1].Value()})
		}
		if len(pairs) > 0 {
			out["alliances"] = pairs
		}
	}

	seen := make(map[int]bool)
	var specialists []map[string]interface{}
	addSpecialist := func(s *galaxy.Specialist) {
		if s == nil || seen[s.ID] {
			return
		}
		seen[s.ID] = true
		var effects []map[string]interface{}
		for _, e := range s.Effects {
			kind, value := galaxy.EffectKind(e)
			effects = append(effects, map[string]interface{}{"kind": kind, "value": value})
		}
		specialists = append(specialists, map[string]interface{}{"id": s.ID, "name": s.Name, "effects": effects})
	}

	var stars []map[string]interface{}
	for _, s := range snapshot.Stars() {
		addSpecialist(s.Specialist)
		entry := map[string]interface{}{
			"id":        string(s.ID),
			"name":      s.Name,
			"x":         s.Location.X,
			"y":         s.Location.Y,
			"owner":     s.Owner.Value(),
			"warp_gate": s.WarpGate,
		}
		if s.WormholeTo != "" {
			entry["wormhole_to"] = string(s.WormholeTo)
		}
		if s.Specialist != nil {
			entry["specialist"] = s.Specialist.ID
		}
		stars = append(stars, entry)
	}

	var carriers []map[string]interface{}
	for _, c := range snapshot.Carriers() {
		addSpecialist(c.Specialist)
		entry := map[string]interface{}{
			"id":               string(c.ID),
			"name":             c.Name,
			"owner":            c.Owner.Value(),
			"x":                c.Location.X,
			"y":                c.Location.Y,
			"orbiting":         string(c.Orbiting),
			"hyperspace_level": c.EffectiveHyperspaceLevel,
		}
		if c.Specialist != nil {
			entry["specialist"] = c.Specialist.ID
		}
		var waypoints []map[string]interface{}
		for _, w := range c.Waypoints {
			waypoints = append(waypoints, map[string]interface{}{
				"source":      string(w.Source),
				"destination": string(w.Destination),
				"delay":       w.DelayTicks,
			})
		}
		if len(waypoints) > 0 {
			entry["waypoints"] = waypoints
		}
		carriers = append(carriers, entry)
	}

	out["specialists"] = specialists
	out["stars"] = stars
	out["carriers"] = carriers
	return out
}
