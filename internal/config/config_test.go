package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.json"); err == nil {
		t.Error("want error for missing file")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("want error for invalid JSON")
	}
}

func TestLoadAndResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"assets_dir": "/data/assets",
		"width": 640,
		"height": 480,
		"depth_mode": "painter",
		"noise_seed": 99
	}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Resolve(Flags{})

	if cfg.Width != 640 || cfg.Height != 480 {
		t.Errorf("size = %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.DepthMode != "painter" {
		t.Errorf("depth mode = %q", cfg.DepthMode)
	}
	if cfg.NoiseSeed != 99 {
		t.Errorf("seed = %d", cfg.NoiseSeed)
	}

	// Unset paths resolve under the assets dir.
	if cfg.SphereMesh != filepath.Join("/data/assets", "models", "sphere.obj") {
		t.Errorf("sphere mesh = %q", cfg.SphereMesh)
	}
	if cfg.SkyboxTexture != filepath.Join("/data/assets", "textures", "sky.jpg") {
		t.Errorf("skybox = %q", cfg.SkyboxTexture)
	}
}

func TestResolveDefaults(t *testing.T) {
	cfg := Config{AssetsDir: "/data/assets"}
	cfg.Resolve(Flags{})

	if cfg.Width != 1000 || cfg.Height != 800 {
		t.Errorf("default size = %dx%d, want 1000x800", cfg.Width, cfg.Height)
	}
	if cfg.DepthMode != "zbuffer" {
		t.Errorf("default depth mode = %q", cfg.DepthMode)
	}
	if cfg.SkyboxFilter != "nearest" {
		t.Errorf("default skybox filter = %q", cfg.SkyboxFilter)
	}
	if cfg.FrameDelayMS != 16 {
		t.Errorf("default frame delay = %d", cfg.FrameDelayMS)
	}
	if cfg.Frames != 300 {
		t.Errorf("default frames = %d", cfg.Frames)
	}
	if cfg.Supersample != 1 {
		t.Errorf("default supersample = %d", cfg.Supersample)
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("default workers = %d", cfg.Workers)
	}
}

func TestResolveFlagOverrides(t *testing.T) {
	cfg := Config{
		AssetsDir: "/data/assets",
		OutputDir: "/data/out",
		Frames:    100,
		Workers:   2,
	}
	cfg.Resolve(Flags{
		AssetsDir: "/override/assets",
		OutputDir: "/override/out",
		Frames:    50,
		Workers:   8,
	})

	if cfg.AssetsDir != "/override/assets" {
		t.Errorf("assets dir = %q", cfg.AssetsDir)
	}
	if cfg.OutputDir != "/override/out" {
		t.Errorf("output dir = %q", cfg.OutputDir)
	}
	if cfg.Frames != 50 {
		t.Errorf("frames = %d", cfg.Frames)
	}
	if cfg.Workers != 8 {
		t.Errorf("workers = %d", cfg.Workers)
	}
}

func TestResolveRelativePaths(t *testing.T) {
	cfg := Config{
		AssetsDir:  "/data/assets",
		SphereMesh: "custom/ball.obj",
	}
	cfg.Resolve(Flags{})

	if cfg.SphereMesh != filepath.Join("/data/assets", "custom", "ball.obj") {
		t.Errorf("relative mesh path = %q", cfg.SphereMesh)
	}
}
