package persistence

import (
	"time"
)

// GameModel represents the games table: one row per game with its galaxy
// travel constants
type GameModel struct {
	ID                  string    `gorm:"column:id;primaryKey"`
	Name                string    `gorm:"column:name"`
	LightYear           float64   `gorm:"column:light_year;not null"`
	CarrierSpeed        float64   `gorm:"column:carrier_speed;not null"`
	WarpSpeedMultiplier float64   `gorm:"column:warp_speed_multiplier;not null"`
	TickIntervalMS      int64     `gorm:"column:tick_interval_ms;not null;default:0"`
	FormalAlliances     bool      `gorm:"column:formal_alliances;not null;default:false"`
	CreatedAt           time.Time `gorm:"column:created_at;not null"`
	UpdatedAt           time.Time `gorm:"column:updated_at;not null"`
}

func (GameModel) TableName() string {
	return "games"
}

// StarModel represents the stars table
type StarModel struct {
	GameID       string     `gorm:"column:game_id;primaryKey;not null"`
	Game         *GameModel `gorm:"foreignKey:GameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	StarID       string     `gorm:"column:star_id;primaryKey;not null"`
	Position     int        `gorm:"column:position;not null"` // order within the galaxy
	Name         string     `gorm:"column:name"`
	X            float64    `gorm:"column:x;not null"`
	Y            float64    `gorm:"column:y;not null"`
	OwnerID      string     `gorm:"column:owner_id"` // empty when unowned
	WarpGate     bool       `gorm:"column:warp_gate;not null;default:false"`
	WormholeTo   string     `gorm:"column:wormhole_to"`
	SpecialistID *int       `gorm:"column:specialist_id"`
}

func (StarModel) TableName() string {
	return "stars"
}

// CarrierModel represents the carriers table
type CarrierModel struct {
	GameID          string     `gorm:"column:game_id;primaryKey;not null"`
	Game            *GameModel `gorm:"foreignKey:GameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CarrierID       string     `gorm:"column:carrier_id;primaryKey;not null"`
	Position        int        `gorm:"column:position;not null"`
	Name            string     `gorm:"column:name"`
	OwnerID         string     `gorm:"column:owner_id;not null"`
	X               float64    `gorm:"column:x;not null"`
	Y               float64    `gorm:"column:y;not null"`
	OrbitingStarID  string     `gorm:"column:orbiting_star_id"` // empty while in transit
	HyperspaceLevel int        `gorm:"column:hyperspace_level;not null;default:1"`
	SpecialistID    *int       `gorm:"column:specialist_id"`
}

func (CarrierModel) TableName() string {
	return "carriers"
}

// CarrierWaypointModel represents the carrier_waypoints table
type CarrierWaypointModel struct {
	ID          int    `gorm:"column:id;primaryKey;autoIncrement"`
	GameID      string `gorm:"column:game_id;not null;index:idx_carrier_waypoints_carrier"`
	CarrierID   string `gorm:"column:carrier_id;not null;index:idx_carrier_waypoints_carrier"`
	Sequence    int    `gorm:"column:sequence;not null"`
	Source      string `gorm:"column:source_star_id;not null"`
	Destination string `gorm:"column:destination_star_id;not null"`
	DelayTicks  int    `gorm:"column:delay_ticks;not null;default:0"`
}

func (CarrierWaypointModel) TableName() string {
	return "carrier_waypoints"
}

// SpecialistModel represents the specialists table
type SpecialistModel struct {
	GameID       string `gorm:"column:game_id;primaryKey;not null"`
	SpecialistID int    `gorm:"column:specialist_id;primaryKey;not null"`
	Name         string `gorm:"column:name"`
	Effects      string `gorm:"column:effects;type:text"` // JSON array of {kind, value}
}

func (SpecialistModel) TableName() string {
	return "specialists"
}

// AllianceModel represents the alliances table. PlayerA sorts before PlayerB.
type AllianceModel struct {
	GameID  string `gorm:"column:game_id;primaryKey;not null"`
	PlayerA string `gorm:"column:player_a;primaryKey;not null"`
	PlayerB string `gorm:"column:player_b;primaryKey;not null"`
}

func (AllianceModel) TableName() string {
	return "alliances"
}
