// Package export renders an animation frame sequence offscreen and encodes
// it to WebP. Frames parallelize across a worker pool because scene state is
// a pure function of the frame counter; nothing inside a single frame is
// ever parallelized.
package export

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"solar-renderer/internal/pipeline"
	"solar-renderer/internal/raster"
	"solar-renderer/internal/scene"

	"github.com/HugoSmits86/nativewebp"
)

// Config holds all shared resources for an export run.
type Config struct {
	Scene       *scene.Scene
	OutputDir   string
	Width       int
	Height      int
	Supersample int
	Workers     int
	DepthMode   raster.DepthMode
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Success bool
	Error   string
}

// Run renders frames [0, frames) using a worker pool and reports per-frame
// outcomes in frame order.
func Run(cfg Config, frames int) []Result {
	results := make([]Result, frames)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, frames, rate)
				}
			}
		}
	}()

	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = processFrame(cfg, idx)
				processed.Add(1)
			}
		}()
	}

	for i := 0; i < frames; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

// processFrame renders one frame at the supersampled resolution, downsamples
// and encodes it. Each worker renders on its own scene copy and framebuffer;
// the shared mesh and noise data are read-only.
func processFrame(cfg Config, idx int) Result {
	ss := cfg.Supersample
	if ss < 1 {
		ss = 1
	}
	rw := cfg.Width * ss
	rh := cfg.Height * ss

	sc := *cfg.Scene
	sc.Time = idx
	sc.Width = rw
	sc.Height = rh
	sc.Projection = pipeline.ProjectionMatrix(float64(rw), float64(rh))
	sc.Viewport = pipeline.ViewportMatrix(float64(rw), float64(rh))

	fb := raster.NewFrameBuffer(rw, rh)
	fb.SetDepthMode(cfg.DepthMode)
	sc.RenderFrame(fb)

	img := toNRGBA(fb)
	if ss > 1 {
		img = Downsample(img, cfg.Width, cfg.Height)
	}

	outPath := filepath.Join(cfg.OutputDir, frameName(idx))
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return Result{Frame: idx, Error: err.Error()}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return Result{Frame: idx, Error: err.Error()}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return Result{Frame: idx, Error: fmt.Sprintf("WebP encode: %v", err)}
	}

	return Result{Frame: idx, Success: true}
}

// frameName is the zero-padded file name of one frame, keeping an
// alphabetical directory listing in playback order.
func frameName(idx int) string {
	return fmt.Sprintf("%05d.webp", idx)
}

// toNRGBA copies the framebuffer into an image. The layouts match: both are
// flat row-major RGBA bytes.
func toNRGBA(fb *raster.FrameBuffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Pix())
	return img
}
