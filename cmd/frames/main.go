package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"solar-renderer/internal/camera"
	"solar-renderer/internal/config"
	"solar-renderer/internal/export"
	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/noise"
	"solar-renderer/internal/objfile"
	"solar-renderer/internal/raster"
	"solar-renderer/internal/scene"
	"solar-renderer/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	assetsDir := flag.String("assets", "", "Path to assets directory (default: auto-detect)")
	outputDir := flag.String("output", "", "Output directory (default: <assets>/../frames)")
	frames := flag.Int("frames", 0, "Number of frames to render (default: 300)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		AssetsDir: *assetsDir,
		OutputDir: *outputDir,
		Frames:    *frames,
		Workers:   *workers,
	})

	if cfg.AssetsDir == "" {
		fmt.Fprintln(os.Stderr, "Error: cannot find assets directory. Use -assets flag or config.json.")
		os.Exit(1)
	}

	depthMode, err := raster.ParseDepthMode(cfg.DepthMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sc, err := buildScene(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Print summary
	fmt.Println("Solar System Renderer → WebP frames")
	fmt.Printf("Frames: %d, Workers: %d, %dx%d @ %dx supersample\n",
		cfg.Frames, cfg.Workers, cfg.Width, cfg.Height, cfg.Supersample)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := export.Run(export.Config{
		Scene:       sc,
		OutputDir:   cfg.OutputDir,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		DepthMode:   depthMode,
	}, cfg.Frames)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []export.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := export.WriteManifest(manifestPath, export.Manifest{
		Width:      cfg.Width,
		Height:     cfg.Height,
		FrameCount: cfg.Frames,
		FrameDelay: cfg.FrameDelayMS,
		NoiseSeed:  cfg.NoiseSeed,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %05d: %s\n", e.Frame, e.Error)
		}
		os.Exit(1)
	}
}

// buildScene loads the meshes and skybox and assembles the scene at the
// stock camera position.
func buildScene(cfg config.Config) (*scene.Scene, error) {
	sphere, err := objfile.Load(cfg.SphereMesh)
	if err != nil {
		return nil, err
	}
	moon, err := objfile.Load(cfg.MoonMesh)
	if err != nil {
		return nil, err
	}
	craft, err := objfile.Load(cfg.CraftMesh)
	if err != nil {
		return nil, err
	}
	sky, err := texture.Load(cfg.SkyboxTexture)
	if err != nil {
		return nil, err
	}

	cam := camera.New(
		mathutil.Vec3{0, 100, 100},
		mathutil.Vec3{0, 0, 0},
		mathutil.WorldUp,
	)

	sc := scene.New(cfg.Width, cfg.Height, cam, noise.New(cfg.NoiseSeed))
	sc.SphereMesh = sphere
	sc.MoonMesh = moon
	sc.CraftMesh = craft
	sc.Skybox = sky
	sc.BilinearSky = cfg.SkyboxFilter == "bilinear"
	return sc, nil
}
