package cmd

import (
	"github.com/df07/go-weekend-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ListScenes displays the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Name", "Description"})
	for _, info := range scene.List() {
		table.Append([]string{info.ID, info.DisplayName, info.Description})
	}
	table.Render()

	return nil
}
