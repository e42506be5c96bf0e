package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	AssetsDir     string `json:"assets_dir"`
	SphereMesh    string `json:"sphere_mesh"`
	MoonMesh      string `json:"moon_mesh"`
	CraftMesh     string `json:"craft_mesh"`
	SkyboxTexture string `json:"skybox_texture"`
	OutputDir     string `json:"output_dir"`

	// Render settings
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	DepthMode    string `json:"depth_mode"`    // "zbuffer" or "painter"
	SkyboxFilter string `json:"skybox_filter"` // "nearest" or "bilinear"
	NoiseSeed    int64  `json:"noise_seed"`
	FrameDelayMS int    `json:"frame_delay_ms"`

	// Export settings (cmd/frames)
	Frames      int `json:"frames"`
	Supersample int `json:"supersample"`
	Workers     int `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	AssetsDir string
	OutputDir string
	Frames    int
	Workers   int
}

// Resolve fills in any empty fields with auto-detected defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.AssetsDir != "" {
		c.AssetsDir = flags.AssetsDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.AssetsDir == "" {
		c.AssetsDir = detectAssetsDir()
	}

	// Resolve relative paths against the assets dir.
	if c.AssetsDir != "" {
		if c.SphereMesh == "" {
			c.SphereMesh = filepath.Join(c.AssetsDir, "models", "sphere.obj")
		} else if !filepath.IsAbs(c.SphereMesh) {
			c.SphereMesh = filepath.Join(c.AssetsDir, c.SphereMesh)
		}

		if c.MoonMesh == "" {
			c.MoonMesh = filepath.Join(c.AssetsDir, "models", "moon.obj")
		} else if !filepath.IsAbs(c.MoonMesh) {
			c.MoonMesh = filepath.Join(c.AssetsDir, c.MoonMesh)
		}

		if c.CraftMesh == "" {
			c.CraftMesh = filepath.Join(c.AssetsDir, "models", "spaceship.obj")
		} else if !filepath.IsAbs(c.CraftMesh) {
			c.CraftMesh = filepath.Join(c.AssetsDir, c.CraftMesh)
		}

		if c.SkyboxTexture == "" {
			c.SkyboxTexture = filepath.Join(c.AssetsDir, "textures", "sky.jpg")
		} else if !filepath.IsAbs(c.SkyboxTexture) {
			c.SkyboxTexture = filepath.Join(c.AssetsDir, c.SkyboxTexture)
		}

		if c.OutputDir == "" {
			c.OutputDir = filepath.Join(c.AssetsDir, "..", "frames")
		} else if !filepath.IsAbs(c.OutputDir) {
			c.OutputDir = filepath.Join(c.AssetsDir, c.OutputDir)
		}
	}

	// Defaults for render settings
	if c.Width <= 0 {
		c.Width = 1000
	}
	if c.Height <= 0 {
		c.Height = 800
	}
	if c.DepthMode == "" {
		c.DepthMode = "zbuffer"
	}
	if c.SkyboxFilter == "" {
		c.SkyboxFilter = "nearest"
	}
	if c.FrameDelayMS <= 0 {
		c.FrameDelayMS = 16
	}
	if c.Frames <= 0 {
		c.Frames = 300
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

func detectAssetsDir() string {
	// Try relative to executable
	exe, _ := os.Executable()
	if exe != "" {
		dir := filepath.Dir(exe)
		for _, base := range []string{dir, filepath.Dir(dir), filepath.Join(dir, "..", "..")} {
			if _, err := os.Stat(filepath.Join(base, "assets", "models")); err == nil {
				return filepath.Join(base, "assets")
			}
		}
	}

	// Try current working directory
	cwd, _ := os.Getwd()
	if _, err := os.Stat(filepath.Join(cwd, "assets", "models")); err == nil {
		return filepath.Join(cwd, "assets")
	}

	// Try parent of cwd
	parent := filepath.Dir(cwd)
	if _, err := os.Stat(filepath.Join(parent, "assets", "models")); err == nil {
		return filepath.Join(parent, "assets")
	}

	return ""
}
