package renderer

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
	"github.com/df07/go-weekend-raytracer/pkg/log"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Random seed (0 = pick one at construction)
	NumWorkers      int   // Number of rows rendered in parallel (0 = CPU count)
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// MergeSamplingConfig returns base with every non-zero field of override applied
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	result := base
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}
	if override.NumWorkers != 0 {
		result.NumWorkers = override.NumWorkers
	}
	return result
}

// Validate reports configurations that cannot produce an image
func (c SamplingConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("invalid samples per pixel %d", c.SamplesPerPixel)
	}
	return nil
}

// Raytracer renders a world through a camera. Rows are rendered in parallel;
// each row draws from its own generator seeded from (seed, row), so a fixed
// seed gives the same image regardless of scheduling.
type Raytracer struct {
	world      geometry.Hittable
	camera     *Camera
	integrator integrator.Integrator
	config     SamplingConfig
	workers    *WorkerPool
	logger     log.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(world geometry.Hittable, camera *Camera, integ integrator.Integrator, config SamplingConfig) *Raytracer {
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integ,
		config:     config,
		workers:    NewWorkerPool(config.NumWorkers),
		logger:     log.New("renderer"),
	}
}

// Config returns the effective sampling configuration, including the chosen seed
func (rt *Raytracer) Config() SamplingConfig {
	return rt.config
}

// rowSeed derives the generator seed for one row
func (rt *Raytracer) rowSeed(row int) int64 {
	return rt.config.Seed*1_000_003 + int64(row)
}

// Render renders the full image. Pixels hold averaged linear color;
// gamma and quantization happen when the framebuffer is encoded.
func (rt *Raytracer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	start := time.Now()
	fb := NewFramebuffer(rt.config.Width, rt.config.Height)

	rt.logger.Infof("rendering %dx%d at %d spp, depth %d, seed %d (%d workers)",
		rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel, rt.config.MaxDepth,
		rt.config.Seed, rt.workers.NumWorkers())

	var rowsDone, totalSamples atomic.Int64
	progressEvery := max(rt.config.Height/10, 1)

	err := rt.workers.Run(ctx, rt.config.Height, func(ctx context.Context, row int) error {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(rt.rowSeed(row))))
		totalSamples.Add(int64(rt.RenderRow(row, fb, sampler)))

		if done := rowsDone.Add(1); done%int64(progressEvery) == 0 {
			rt.logger.Debugf("%d/%d rows done", done, rt.config.Height)
		}
		return nil
	})
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("render: %w", err)
	}

	stats := RenderStats{
		TotalPixels:     rt.config.Width * rt.config.Height,
		TotalSamples:    int(totalSamples.Load()),
		SamplesPerPixel: rt.config.SamplesPerPixel,
		Workers:         rt.workers.NumWorkers(),
		Duration:        time.Since(start),
	}
	rt.logger.Infof("rendered %d samples in %s", stats.TotalSamples, stats.Duration)

	return fb, stats, nil
}

// RenderRow renders image row y (0 = top) into fb and returns the number of samples taken
func (rt *Raytracer) RenderRow(y int, fb *Framebuffer, sampler core.Sampler) int {
	width, height := rt.config.Width, rt.config.Height
	// Viewport t runs bottom to top
	j := height - 1 - y

	samples := 0
	for i := 0; i < width; i++ {
		var ps PixelStats
		for s := 0; s < rt.config.SamplesPerPixel; s++ {
			jitter := sampler.Get2D()
			u := (float64(i) + jitter.X) / float64(max(width-1, 1))
			v := (float64(j) + jitter.Y) / float64(max(height-1, 1))

			ray := rt.camera.GetRay(u, v, sampler)
			ps.AddSample(rt.integrator.Trace(ray, rt.world, sampler))
		}
		fb.Set(i, y, ps.GetColor())
		samples += ps.SampleCount
	}
	return samples
}
