package cmd

import (
	"fmt"

	"github.com/df07/go-weekend-raytracer/pkg/metrics"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// BVHStatsFlags are the flags accepted by the bvh-stats command
var BVHStatsFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "scene",
		Value: "simple",
		Usage: "built-in scene to compile",
	},
	cli.Int64Flag{
		Name:  "seed",
		Usage: "layout seed for the random scene",
	},
	cli.StringFlag{
		Name:  "mesh",
		Usage: "glTF or GLB file for the mesh scene",
	},
}

// ShowBVHStats builds the BVH for a scene and displays its shape.
func ShowBVHStats(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := scene.New(ctx.String("scene"), scene.Options{
		MeshPath: ctx.String("mesh"),
		Seed:     ctx.Int64("seed"),
	})
	if err != nil {
		return exitError(err)
	}

	timers := metrics.NewTimers()
	timers.StartTimer("build bvh")
	err = sc.Preprocess()
	timers.StopTimer()
	if err != nil {
		return exitError(err)
	}

	stats := sc.BVH.Stats()
	box := sc.BVH.BoundingBox()
	buildTime := timers.Timers()[0].Elapsed()

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Objects", "Nodes", "Leaves", "Max depth", "Bounds", "Build time"})
	table.Append([]string{
		sc.Name,
		fmt.Sprintf("%d", stats.Objects),
		fmt.Sprintf("%d", stats.Nodes),
		fmt.Sprintf("%d", stats.Leaves),
		fmt.Sprintf("%d", stats.MaxDepth),
		fmt.Sprintf("(%.2f, %.2f, %.2f) - (%.2f, %.2f, %.2f)", box.Min.X, box.Min.Y, box.Min.Z, box.Max.X, box.Max.Y, box.Max.Z),
		buildTime.String(),
	})
	table.Render()

	return nil
}
