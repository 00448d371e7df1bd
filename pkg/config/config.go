// Package config holds rtgx render settings and reads them from TOML or
// YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/taigrr/rtgx/pkg/math3d"
	"github.com/taigrr/rtgx/pkg/render"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// ErrUnknownExt is returned by Load for files that are neither TOML nor YAML.
var ErrUnknownExt = errors.New("unknown config file extension")

// Config describes one render pass.
type Config struct {
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`

	// Light is the direction light travels. It is normalized on Apply.
	Light [3]float64 `toml:"light" yaml:"light"`

	Shading    string `toml:"shading" yaml:"shading"` // clamp, cull or unlit
	Style      string `toml:"style" yaml:"style"`     // fill or wireframe
	Color      string `toml:"color" yaml:"color"`     // base color, #rrggbb
	Background string `toml:"background" yaml:"background"`

	// Palette is "" for the base color, "random" for a seeded random
	// color per face, or "gradient" to blend Color into Background.
	// Case is ignored.
	Palette string `toml:"palette" yaml:"palette"`
	Seed    int64  `toml:"seed" yaml:"seed"`

	Fit                    bool `toml:"fit" yaml:"fit"`
	DisableBackfaceCulling bool `toml:"disable_backface_culling" yaml:"disable_backface_culling"`

	// Bounds and Axes draw the mesh's bounding box and the world axes
	// over the shaded faces.
	Bounds bool `toml:"bounds" yaml:"bounds"`
	Axes   bool `toml:"axes" yaml:"axes"`

	Scale  int    `toml:"scale" yaml:"scale"`
	Output string `toml:"output" yaml:"output"`
}

// Default returns the built-in settings: a 720x720 canvas, light along -Z,
// white faces on black, clamped shading and filled triangles.
func Default() Config {
	return Config{
		Width:      720,
		Height:     720,
		Light:      [3]float64{0, 0, -1},
		Shading:    "clamp",
		Style:      "fill",
		Color:      "#ffffff",
		Background: "#000000",
		Scale:      1,
	}
}

// Load reads a config file on top of Default. The decoder is chosen by
// extension: .toml, or .yaml/.yml.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%s: %w", path, ErrUnknownExt)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: resolution %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.Scale < 1 {
		return fmt.Errorf("%w: scale %d", ErrInvalid, c.Scale)
	}
	if c.LightVec() == math3d.Zero3() {
		return fmt.Errorf("%w: zero light vector", ErrInvalid)
	}
	if _, err := render.ParseShadingMode(c.Shading); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := render.ParseStyle(c.Style); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	for _, s := range []string{c.Color, c.Background} {
		if _, err := render.ParseColor(s); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	switch strings.ToLower(c.Palette) {
	case "", "random", "gradient":
	default:
		return fmt.Errorf("%w: unknown palette %q", ErrInvalid, c.Palette)
	}
	return nil
}

// LightVec returns Light as a vector.
func (c Config) LightVec() math3d.Vec3 {
	return math3d.V3(c.Light[0], c.Light[1], c.Light[2])
}

// BackgroundColor returns the parsed background color, black if invalid.
func (c Config) BackgroundColor() render.Color {
	bg, err := render.ParseColor(c.Background)
	if err != nil {
		return render.ColorBlack
	}
	return bg
}

// Apply copies the settings into r. faces sizes generated palettes and is
// usually the mesh's triangle count.
func (c Config) Apply(r *render.Renderer, faces int) error {
	if err := c.Validate(); err != nil {
		return err
	}
	mode, _ := render.ParseShadingMode(c.Shading)
	style, _ := render.ParseStyle(c.Style)
	base, _ := render.ParseColor(c.Color)

	r.Light = c.LightVec().Normalize()
	r.Mode = mode
	r.Style = style
	r.Base = base
	r.DisableBackfaceCulling = c.DisableBackfaceCulling

	switch strings.ToLower(c.Palette) {
	case "random":
		r.Palette = render.RandomPalette(c.Seed, max(faces, 1))
	case "gradient":
		r.Palette = render.Gradient(base, c.BackgroundColor(), max(faces, 1))
	default:
		r.Palette = nil
	}
	return nil
}
