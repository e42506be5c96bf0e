package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"solar-renderer/internal/camera"
	"solar-renderer/internal/config"
	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/noise"
	"solar-renderer/internal/objfile"
	"solar-renderer/internal/raster"
	"solar-renderer/internal/scene"
	"solar-renderer/internal/texture"
)

// keyIntents maps held keys to camera intents. WASD pans the orbit center
// on the horizontal plane, arrows orbit, Q/E zooms, R/F moves vertically.
var keyIntents = []struct {
	key    ebiten.Key
	intent scene.Intent
}{
	{ebiten.KeyW, scene.PanForward},
	{ebiten.KeyS, scene.PanBack},
	{ebiten.KeyA, scene.PanLeft},
	{ebiten.KeyD, scene.PanRight},
	{ebiten.KeyArrowLeft, scene.OrbitLeft},
	{ebiten.KeyArrowRight, scene.OrbitRight},
	{ebiten.KeyArrowUp, scene.OrbitUp},
	{ebiten.KeyArrowDown, scene.OrbitDown},
	{ebiten.KeyQ, scene.ZoomOut},
	{ebiten.KeyE, scene.ZoomIn},
	{ebiten.KeyR, scene.MoveUp},
	{ebiten.KeyF, scene.MoveDown},
}

// Game owns the scene and a reusable framebuffer and adapts them to the
// ebiten update/draw loop.
type Game struct {
	scene   *scene.Scene
	fb      *raster.FrameBuffer
	intents []scene.Intent
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.intents = g.intents[:0]
	for _, ki := range keyIntents {
		if ebiten.IsKeyPressed(ki.key) {
			g.intents = append(g.intents, ki.intent)
		}
	}
	g.scene.Apply(g.intents)
	g.scene.Advance()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.RenderFrame(g.fb)
	g.scene.Camera.Changed = false
	screen.WritePixels(g.fb.Pix())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width, g.fb.Height
}

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	assetsDir := flag.String("assets", "", "Path to assets directory (default: auto-detect)")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{AssetsDir: *assetsDir})

	if cfg.AssetsDir == "" {
		fmt.Fprintln(os.Stderr, "Error: cannot find assets directory. Use -assets flag or config.json.")
		os.Exit(1)
	}

	depthMode, err := raster.ParseDepthMode(cfg.DepthMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sphere, err := objfile.Load(cfg.SphereMesh)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	moon, err := objfile.Load(cfg.MoonMesh)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	craft, err := objfile.Load(cfg.CraftMesh)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	sky, err := texture.Load(cfg.SkyboxTexture)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
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

	fb := raster.NewFrameBuffer(cfg.Width, cfg.Height)
	fb.SetDepthMode(depthMode)

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Solar System")
	ebiten.SetTPS(1000 / cfg.FrameDelayMS)

	if err := ebiten.RunGame(&Game{scene: sc, fb: fb}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
