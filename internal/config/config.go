// Package config provides YAML-based game configuration loading for the
// Doodle Jump game and its hosts.
package config

import (
	"errors"
	"fmt"
)

// DoodleConfig contains all configuration for the Doodle Jump game.
type DoodleConfig struct {
	Physics DoodlePhysics `yaml:"physics"`
	World   DoodleWorld   `yaml:"world"`
	Spawn   DoodleSpawn   `yaml:"spawn"`
	Player  EntitySize    `yaml:"player"`
	Tile    EntitySize    `yaml:"tile"`
	Scoring DoodleScoring `yaml:"scoring"`
	Host    HostConfig    `yaml:"host"`
}

// DoodlePhysics defines movement and collision parameters.
// Velocities are in world units per second, y-up.
type DoodlePhysics struct {
	Gravity         float64 `yaml:"gravity"`          // Vertical acceleration (negative = down)
	LaunchVelocity  float64 `yaml:"launch_velocity"`  // Vertical velocity after a bounce
	HorizontalSpeed float64 `yaml:"horizontal_speed"` // Speed while a direction key is held
	CeilingY        float64 `yaml:"ceiling_y"`        // Player y is clamped to this from above
	DeathY          float64 `yaml:"death_y"`          // Player dies below this
	LandingBand     float64 `yaml:"landing_band"`     // Height of the landing window above tile contact
}

// DoodleWorld defines playfield geometry and scrolling thresholds.
type DoodleWorld struct {
	HalfWidth        float64 `yaml:"half_width"`          // Horizontal wraparound bound
	HalfHeight       float64 `yaml:"half_height"`         // Visible extent above and below the origin
	TileBoundary     float64 `yaml:"tile_boundary"`       // Tiles spawn with |x| <= this
	SpawnLineY       float64 `yaml:"spawn_line_y"`        // New tiles appear here
	DespawnY         float64 `yaml:"despawn_y"`           // Tiles below this are removed
	ScrollMinPlayerY float64 `yaml:"scroll_min_player_y"` // No scrolling while the player is below this
	MaxHeightFloor   float64 `yaml:"max_height_floor"`    // Tallest-tile scan starts here
}

// DoodleSpawn defines the initial layout and spawn cadence.
type DoodleSpawn struct {
	GapMin         float64 `yaml:"gap_min"`
	GapMax         float64 `yaml:"gap_max"`
	PlayerX        float64 `yaml:"player_x"`
	PlayerY        float64 `yaml:"player_y"`
	FirstTileY     float64 `yaml:"first_tile_y"`    // Tile directly under the player, x = player_x
	InitialTiles   int     `yaml:"initial_tiles"`   // Additional random tiles above the first
	InitialSpacing float64 `yaml:"initial_spacing"` // Vertical distance between initial tiles
}

// EntitySize defines the half extents of an entity's bounding box.
type EntitySize struct {
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
}

// DoodleScoring defines score accrual and the score label.
type DoodleScoring struct {
	VelocityDivisor float64 `yaml:"velocity_divisor"` // Score += velocity / divisor per frame
	LabelX          float64 `yaml:"label_x"`
	LabelY          float64 `yaml:"label_y"`
}

// HostConfig defines how hosts drive the frame loop.
type HostConfig struct {
	MaxFrameDT   float64 `yaml:"max_frame_dt"`   // Seconds; longer frames are clamped
	HoldWindowMS int     `yaml:"hold_window_ms"` // Terminal key-hold emulation window
}

// Validate reports configurations the game cannot run with.
func (c DoodleConfig) Validate() error {
	var errs []error

	if c.Spawn.GapMin <= 0 || c.Spawn.GapMin > c.Spawn.GapMax {
		errs = append(errs, fmt.Errorf("spawn: gap range [%v, %v] is invalid", c.Spawn.GapMin, c.Spawn.GapMax))
	}
	if c.Player.HalfWidth <= 0 || c.Player.HalfHeight <= 0 {
		errs = append(errs, errors.New("player: half extents must be positive"))
	}
	if c.Tile.HalfWidth <= 0 || c.Tile.HalfHeight <= 0 {
		errs = append(errs, errors.New("tile: half extents must be positive"))
	}
	if c.World.HalfWidth <= 0 || c.World.HalfHeight <= 0 {
		errs = append(errs, errors.New("world: half extents must be positive"))
	}
	if c.World.TileBoundary < 0 || c.World.TileBoundary > c.World.HalfWidth {
		errs = append(errs, fmt.Errorf("world: tile_boundary %v must be within [0, half_width]", c.World.TileBoundary))
	}
	if c.World.SpawnLineY <= c.Physics.DeathY {
		errs = append(errs, errors.New("world: spawn_line_y must be above physics.death_y"))
	}
	if c.Physics.LaunchVelocity <= 0 {
		errs = append(errs, errors.New("physics: launch_velocity must be positive"))
	}
	if c.Physics.LandingBand <= 0 {
		errs = append(errs, errors.New("physics: landing_band must be positive"))
	}
	if c.Scoring.VelocityDivisor == 0 {
		errs = append(errs, errors.New("scoring: velocity_divisor must not be zero"))
	}
	if c.Spawn.InitialTiles < 0 {
		errs = append(errs, errors.New("spawn: initial_tiles must not be negative"))
	}
	if c.Host.MaxFrameDT <= 0 {
		errs = append(errs, errors.New("host: max_frame_dt must be positive"))
	}

	return errors.Join(errs...)
}
