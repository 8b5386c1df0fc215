// Package config holds the runtime settings, loaded from an optional TOML
// file with compiled-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Settings is the full runtime configuration.
type Settings struct {
	Window WindowSettings `toml:"window"`
	Render RenderSettings `toml:"render"`
	Assets AssetSettings  `toml:"assets"`
}

type WindowSettings struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type RenderSettings struct {
	// FPSLimit caps the frame rate; zero or negative disables the cap.
	FPSLimit int `toml:"fps_limit"`
	// JitterSeed seeds the berry instance generator, so a given seed
	// always produces the same piles.
	JitterSeed int64      `toml:"jitter_seed"`
	ClearColor [4]float32 `toml:"clear_color"`
}

type AssetSettings struct {
	// Dir is the root for shaders and textures.
	Dir string `toml:"dir"`
}

// Default returns the compiled-in settings.
func Default() Settings {
	return Settings{
		Window: WindowSettings{
			Width:  900,
			Height: 600,
			Title:  "still-life",
		},
		Render: RenderSettings{
			FPSLimit:   60,
			JitterSeed: 1,
			ClearColor: [4]float32{0.05, 0.05, 0.08, 1.0},
		},
		Assets: AssetSettings{
			Dir: "assets",
		},
	}
}

// Load reads path and overlays it onto the defaults. A missing file is not
// an error; the defaults apply unchanged.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, err
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}
