package main

import (
	"os"

	"github.com/df07/go-weekend-raytracer/cmd"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	// Frees -v for verbose logging
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "weekend-raytracer"
	app.Usage = "render scenes using BVH accelerated path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to a png or ppm image",
			Description: `
Build the BVH for a built-in scene and path trace a still frame. Rows are
rendered in parallel; a fixed --seed renders the same image for any number
of workers.`,
			Flags:  cmd.RenderFlags,
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:   "bvh-stats",
			Usage:  "build the BVH for a scene and display its shape",
			Flags:  cmd.BVHStatsFlags,
			Action: cmd.ShowBVHStats,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
