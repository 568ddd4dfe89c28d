package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/df07/go-weekend-raytracer/pkg/integrator"
	"github.com/df07/go-weekend-raytracer/pkg/metrics"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
	"github.com/urfave/cli"
)

// ErrUnsupportedFormat is returned for output files that are neither .ppm nor .png
var ErrUnsupportedFormat = errors.New("unsupported image format")

// RenderFlags are the flags accepted by the render command
var RenderFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "scene",
		Value: "simple",
		Usage: "built-in scene to render (see the scenes command)",
	},
	cli.IntFlag{
		Name:  "width",
		Usage: "image width; height follows the scene's aspect ratio (0 = scene default)",
	},
	cli.IntFlag{
		Name:  "spp",
		Usage: "samples per pixel (0 = scene default)",
	},
	cli.IntFlag{
		Name:  "depth",
		Usage: "maximum ray bounce depth (0 = scene default)",
	},
	cli.Int64Flag{
		Name:  "seed",
		Usage: "random seed; the same seed renders the same image (0 = random)",
	},
	cli.IntFlag{
		Name:  "workers",
		Usage: "rows rendered in parallel (0 = number of CPUs)",
	},
	cli.StringFlag{
		Name:  "out, o",
		Value: "frame.png",
		Usage: "image filename; the extension selects .png or .ppm output",
	},
	cli.BoolFlag{
		Name:  "metrics",
		Usage: "count intersection tests and display a metrics table",
	},
	cli.StringFlag{
		Name:  "mesh",
		Usage: "glTF or GLB file for the mesh scene",
	},
}

// RenderFrame renders a still frame of a built-in scene.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	out := ctx.String("out")
	if _, err := imageWriter(out); err != nil {
		return exitError(err)
	}

	timers := metrics.NewTimers()
	var counters *metrics.Counters
	if ctx.Bool("metrics") {
		counters = metrics.NewCounters()
		metrics.Install(counters)
		defer metrics.Install(nil)
	}

	timers.StartTimer("load scene")
	sc, err := scene.New(ctx.String("scene"), scene.Options{
		MeshPath: ctx.String("mesh"),
		Seed:     ctx.Int64("seed"),
	})
	timers.StopTimer()
	if err != nil {
		return exitError(err)
	}

	sc.SamplingConfig = renderer.MergeSamplingConfig(sc.SamplingConfig, samplingOverrides(ctx, sc.SamplingConfig))

	timers.StartTimer("build bvh")
	err = sc.Preprocess()
	timers.StopTimer()
	if err != nil {
		return exitError(err)
	}
	logger.Infof("scene %q: %d objects", sc.Name, sc.PrimitiveCount())

	// Ctrl-C stops the render after the rows in flight
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rt := renderer.NewRaytracer(sc.World(), sc.NewCamera(), integrator.NewPathTracingIntegrator(sc.SamplingConfig.MaxDepth), sc.SamplingConfig)

	timers.StartTimer("render")
	fb, stats, err := rt.Render(runCtx)
	timers.StopTimer()
	if err != nil {
		return exitError(err)
	}

	timers.StartTimer("write image")
	err = writeImage(fb, out)
	timers.StopTimer()
	if err != nil {
		return exitError(err)
	}

	logger.Noticef("rendered %dx%d at %d spp in %s (%.0f samples/sec, seed %d) to %s",
		fb.Width, fb.Height, stats.SamplesPerPixel, stats.Duration, stats.SamplesPerSecond(), rt.Config().Seed, out)

	if counters != nil {
		var buf bytes.Buffer
		if err := metrics.WriteReport(&buf, counters, timers); err != nil {
			return exitError(err)
		}
		logger.Noticef("render metrics\n%s", buf.String())
	}

	return nil
}

// samplingOverrides collects the flags that override a scene's sampling
// config. A width override keeps the scene's aspect ratio.
func samplingOverrides(ctx *cli.Context, base renderer.SamplingConfig) renderer.SamplingConfig {
	overrides := renderer.SamplingConfig{
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("depth"),
		Seed:            ctx.Int64("seed"),
		NumWorkers:      ctx.Int("workers"),
	}

	if width := ctx.Int("width"); width > 0 {
		overrides.Width = width
		overrides.Height = max(int(math.Round(float64(width)*float64(base.Height)/float64(base.Width))), 1)
	}
	return overrides
}

type encodeFunc func(fb *renderer.Framebuffer, w io.Writer) error

// imageWriter selects the encoder for the output file's extension
func imageWriter(path string) (encodeFunc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return (*renderer.Framebuffer).WritePNG, nil
	case ".ppm":
		return (*renderer.Framebuffer).WritePPM, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

func writeImage(fb *renderer.Framebuffer, path string) (err error) {
	encode, err := imageWriter(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("write image: %w", closeErr)
		}
	}()

	if err := encode(fb, f); err != nil {
		return fmt.Errorf("write image %s: %w", path, err)
	}
	return nil
}
