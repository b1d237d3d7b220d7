package config

import (
	_ "embed"
)

//go:embed defaults/doodle.yaml
var defaultDoodleYAML []byte

// DefaultDoodleConfig returns the default Doodle Jump configuration.
func DefaultDoodleConfig() DoodleConfig {
	return DoodleConfig{
		Physics: DoodlePhysics{
			Gravity:         -900,
			LaunchVelocity:  500,
			HorizontalSpeed: 500,
			CeilingY:        0,
			DeathY:          -256,
			LandingBand:     15,
		},
		World: DoodleWorld{
			HalfWidth:        160,
			HalfHeight:       256,
			TileBoundary:     130,
			SpawnLineY:       266,
			DespawnY:         -265,
			ScrollMinPlayerY: -5,
			MaxHeightFloor:   -256,
		},
		Spawn: DoodleSpawn{
			GapMin:         90,
			GapMax:         140,
			PlayerX:        0,
			PlayerY:        -195,
			FirstTileY:     -235,
			InitialTiles:   3,
			InitialSpacing: 120,
		},
		Player: EntitySize{
			HalfWidth:  20,
			HalfHeight: 30,
		},
		Tile: EntitySize{
			HalfWidth:  30,
			HalfHeight: 10,
		},
		Scoring: DoodleScoring{
			VelocityDivisor: 200,
			LabelX:          -90,
			LabelY:          240,
		},
		Host: HostConfig{
			MaxFrameDT:   0.05,
			HoldWindowMS: 150,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDoodleYAML
}
