package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
)

// GormSnapshotRepository implements galaxy.SnapshotRepository using GORM
type GormSnapshotRepository struct {
	db *gorm.DB
}

// NewGormSnapshotRepository creates a new GORM snapshot repository
func NewGormSnapshotRepository(db *gorm.DB) *GormSnapshotRepository {
	return &GormSnapshotRepository{db: db}
}

type effectRecord struct {
	Kind  string  `json:"kind"`
	Value float64 `json:"value,omitempty"`
}

// Load assembles the galaxy snapshot of a game
func (r *GormSnapshotRepository) Load(ctx context.Context, gameID string) (*galaxy.Snapshot, error) {
	db := r.db.WithContext(ctx)

	var game GameModel
	if err := db.Where("id = ?", gameID).First(&game).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("game", gameID)
		}
		return nil, fmt.Errorf("failed to find game: %w", err)
	}

	var specialistModels []SpecialistModel
	if err := db.Where("game_id = ?", gameID).Find(&specialistModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load specialists: %w", err)
	}
	specialists, err := modelsToSpecialists(specialistModels)
	if err != nil {
		return nil, err
	}

	var starModels []StarModel
	if err := db.Where("game_id = ?", gameID).Order("position").Find(&starModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load stars: %w", err)
	}

	var carrierModels []CarrierModel
	if err := db.Where("game_id = ?", gameID).Order("position").Find(&carrierModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load carriers: %w", err)
	}

	var waypointModels []CarrierWaypointModel
	if err := db.Where("game_id = ?", gameID).Order("carrier_id, sequence").Find(&waypointModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load waypoints: %w", err)
	}

	var allianceModels []AllianceModel
	if err := db.Where("game_id = ?", gameID).Find(&allianceModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load alliances: %w", err)
	}

	stars := make([]galaxy.Star, 0, len(starModels))
	for _, m := range starModels {
		specialist, err := lookupSpecialist(specialists, m.SpecialistID)
		if err != nil {
			return nil, fmt.Errorf("star %s: %w", m.StarID, err)
		}
		stars = append(stars, galaxy.Star{
			ID:         galaxy.StarID(m.StarID),
			Name:       m.Name,
			Location:   shared.Location{X: m.X, Y: m.Y},
			Owner:      shared.PlayerIDOrZero(m.OwnerID),
			WarpGate:   m.WarpGate,
			WormholeTo: galaxy.StarID(m.WormholeTo),
			Specialist: specialist,
		})
	}

	waypoints := make(map[string][]galaxy.Waypoint)
	for _, m := range waypointModels {
		waypoints[m.CarrierID] = append(waypoints[m.CarrierID], galaxy.Waypoint{
			Source:      galaxy.StarID(m.Source),
			Destination: galaxy.StarID(m.Destination),
			DelayTicks:  m.DelayTicks,
		})
	}

	carriers := make([]galaxy.Carrier, 0, len(carrierModels))
	for _, m := range carrierModels {
		specialist, err := lookupSpecialist(specialists, m.SpecialistID)
		if err != nil {
			return nil, fmt.Errorf("carrier %s: %w", m.CarrierID, err)
		}
		carriers = append(carriers, galaxy.Carrier{
			ID:                       galaxy.CarrierID(m.CarrierID),
			Name:                     m.Name,
			Owner:                    shared.PlayerIDOrZero(m.OwnerID),
			Location:                 shared.Location{X: m.X, Y: m.Y},
			Orbiting:                 galaxy.StarID(m.OrbitingStarID),
			Waypoints:                waypoints[m.CarrierID],
			Specialist:               specialist,
			EffectiveHyperspaceLevel: m.HyperspaceLevel,
		})
	}

	alliances := galaxy.NewAllianceTable(game.FormalAlliances)
	for _, m := range allianceModels {
		alliances.Ally(shared.PlayerIDOrZero(m.PlayerA), shared.PlayerIDOrZero(m.PlayerB))
	}

	constants := galaxy.Constants{
		LightYear:           game.LightYear,
		CarrierSpeed:        game.CarrierSpeed,
		WarpSpeedMultiplier: game.WarpSpeedMultiplier,
		TickInterval:        time.Duration(game.TickIntervalMS) * time.Millisecond,
	}

	snapshot, err := galaxy.NewSnapshot(game.ID, stars, carriers, alliances, constants)
	if err != nil {
		return nil, fmt.Errorf("game %s has invalid galaxy data: %w", gameID, err)
	}
	return snapshot, nil
}

// Save replaces everything stored for the snapshot's game in one transaction
func (r *GormSnapshotRepository) Save(ctx context.Context, name string, snapshot *galaxy.Snapshot) error {
	gameID := snapshot.GameID()
	if gameID == "" {
		return shared.NewInvalidInputError("game_id", "is required")
	}

	specialists, err := collectSpecialists(snapshot)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&CarrierWaypointModel{}, &CarrierModel{}, &StarModel{}, &SpecialistModel{}, &AllianceModel{},
		} {
			if err := tx.Where("game_id = ?", gameID).Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear game %s: %w", gameID, err)
			}
		}

		constants := snapshot.Constants()
		alliances, _ := snapshot.Diplomacy().(*galaxy.AllianceTable)
		game := &GameModel{
			ID:                  gameID,
			Name:                name,
			LightYear:           constants.LightYear,
			CarrierSpeed:        constants.CarrierSpeed,
			WarpSpeedMultiplier: constants.WarpSpeedMultiplier,
			TickIntervalMS:      constants.TickInterval.Milliseconds(),
			FormalAlliances:     alliances.FormalAlliancesEnabled(),
		}
		var existing GameModel
		err := tx.Where("id = ?", gameID).First(&existing).Error
		switch {
		case err == nil:
			game.CreatedAt = existing.CreatedAt
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return fmt.Errorf("failed to find game: %w", err)
		}
		if err := tx.Save(game).Error; err != nil {
			return fmt.Errorf("failed to save game: %w", err)
		}

		for _, s := range specialists {
			model, err := specialistToModel(gameID, s)
			if err != nil {
				return err
			}
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to save specialist %d: %w", s.ID, err)
			}
		}

		for i, star := range snapshot.Stars() {
			model := &StarModel{
				GameID:       gameID,
				StarID:       string(star.ID),
				Position:     i,
				Name:         star.Name,
				X:            star.Location.X,
				Y:            star.Location.Y,
				OwnerID:      star.Owner.Value(),
				WarpGate:     star.WarpGate,
				WormholeTo:   string(star.WormholeTo),
				SpecialistID: specialistID(star.Specialist),
			}
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to save star %s: %w", star.ID, err)
			}
		}

		for i, carrier := range snapshot.Carriers() {
			model := &CarrierModel{
				GameID:          gameID,
				CarrierID:       string(carrier.ID),
				Position:        i,
				Name:            carrier.Name,
				OwnerID:         carrier.Owner.Value(),
				X:               carrier.Location.X,
				Y:               carrier.Location.Y,
				OrbitingStarID:  string(carrier.Orbiting),
				HyperspaceLevel: carrier.EffectiveHyperspaceLevel,
				SpecialistID:    specialistID(carrier.Specialist),
			}
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to save carrier %s: %w", carrier.ID, err)
			}
			for seq, wp := range carrier.Waypoints {
				waypoint := &CarrierWaypointModel{
					GameID:      gameID,
					CarrierID:   string(carrier.ID),
					Sequence:    seq,
					Source:      string(wp.Source),
					Destination: string(wp.Destination),
					DelayTicks:  wp.DelayTicks,
				}
				if err := tx.Create(waypoint).Error; err != nil {
					return fmt.Errorf("failed to save waypoint %d of carrier %s: %w", seq, carrier.ID, err)
				}
			}
		}

		for _, pair := range alliances.Pairs() {
			model := &AllianceModel{GameID: gameID, PlayerA: pair[0].Value(), PlayerB: pair[1].Value()}
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to save alliance: %w", err)
			}
		}

		return nil
	})
}

// ListGameIDs returns the ids of all stored games
func (r *GormSnapshotRepository) ListGameIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).Model(&GameModel{}).Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return ids, nil
}

func modelsToSpecialists(models []SpecialistModel) (map[int]*galaxy.Specialist, error) {
	specialists := make(map[int]*galaxy.Specialist, len(models))
	for _, m := range models {
		var records []effectRecord
		if m.Effects != "" {
			if err := json.Unmarshal([]byte(m.Effects), &records); err != nil {
				return nil, fmt.Errorf("specialist %d has malformed effects: %w", m.SpecialistID, err)
			}
		}
		specialist := &galaxy.Specialist{ID: m.SpecialistID, Name: m.Name}
		for _, record := range records {
			effect, err := galaxy.ParseSpecialistEffect(record.Kind, record.Value)
			if err != nil {
				return nil, fmt.Errorf("specialist %d: %w", m.SpecialistID, err)
			}
			specialist.Effects = append(specialist.Effects, effect)
		}
		specialists[m.SpecialistID] = specialist
	}
	return specialists, nil
}

func specialistToModel(gameID string, s *galaxy.Specialist) (*SpecialistModel, error) {
	records := make([]effectRecord, 0, len(s.Effects))
	for _, effect := range s.Effects {
		kind, value := galaxy.EffectKind(effect)
		records = append(records, effectRecord{Kind: kind, Value: value})
	}
	effects, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal specialist %d effects: %w", s.ID, err)
	}
	return &SpecialistModel{
		GameID:       gameID,
		SpecialistID: s.ID,
		Name:         s.Name,
		Effects:      string(effects),
	}, nil
}

func lookupSpecialist(specialists map[int]*galaxy.Specialist, id *int) (*galaxy.Specialist, error) {
	if id == nil {
		return nil, nil
	}
	specialist, ok := specialists[*id]
	if !ok {
		return nil, shared.NewNotFoundError("specialist", fmt.Sprintf("%d", *id))
	}
	return specialist, nil
}

func specialistID(s *galaxy.Specialist) *int {
	if s == nil {
		return nil
	}
	id := s.ID
	return &id
}

// collectSpecialists gathers the distinct specialists referenced by stars and
// carriers. Two different specialists sharing an id are rejected.
func collectSpecialists(snapshot *galaxy.Snapshot) ([]*galaxy.Specialist, error) {
	seen := make(map[int]*galaxy.Specialist)
	var ordered []*galaxy.Specialist

	add := func(s *galaxy.Specialist) error {
		if s == nil {
			return nil
		}
		if existing, ok := seen[s.ID]; ok {
			if existing != s && !sameEffects(existing, s) {
				return shared.NewInvalidInputError("specialist.id",
					fmt.Sprintf("specialist id %d is used for different specialists", s.ID))
			}
			return nil
		}
		seen[s.ID] = s
		ordered = append(ordered, s)
		return nil
	}

	stars := snapshot.Stars()
	for i := range stars {
		if err := add(stars[i].Specialist); err != nil {
			return nil, err
		}
	}
	carriers := snapshot.Carriers()
	for i := range carriers {
		if err := add(carriers[i].Specialist); err != nil {
			return nil, err
		}
	}
	return ordered, nil
}

func sameEffects(a, b *galaxy.Specialist) bool {
	if a.Name != b.Name || len(a.Effects) != len(b.Effects) {
		return false
	}
	for i := range a.Effects {
		if a.Effects[i] != b.Effects[i] {
			return false
		}
	}
	return true
}
