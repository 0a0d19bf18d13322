package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds per-transform parameter defaults loaded from a TOML file.
// Values set here apply only where the matching command-line flag was not
// given.
type Config struct {
	Skew    SkewDefaults    `toml:"skew"`
	Rotate  RotateDefaults  `toml:"rotate"`
	Shear   ShearDefaults   `toml:"shear"`
	Distort DistortDefaults `toml:"distort"`
}

// SkewDefaults configures the skew command.
type SkewDefaults struct {
	Mode      string  `toml:"mode"`
	Magnitude float64 `toml:"magnitude"`
}

// RotateDefaults configures the rotate command.
type RotateDefaults struct {
	Angle    float64 `toml:"angle"`
	MaxLeft  float64 `toml:"max_left"`
	MaxRight float64 `toml:"max_right"`
	Fill     string  `toml:"fill"`
}

// ShearDefaults configures the shear command.
type ShearDefaults struct {
	Angle    float64 `toml:"angle"`
	MaxLeft  float64 `toml:"max_left"`
	MaxRight float64 `toml:"max_right"`
	Axis     string  `toml:"axis"`
}

// DistortDefaults configures the distort command.
type DistortDefaults struct {
	GridWidth  int `toml:"grid_width"`
	GridHeight int `toml:"grid_height"`
	Magnitude  int `toml:"magnitude"`
}

// loadConfig parses the TOML defaults file at path. An empty path returns a
// zero Config.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}
