package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	logger.Noticef("available scenes\n%s", scenesTable(scene.ListScenes()))
	return nil
}

func scenesTable(scenes []scene.SceneInfo) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Name", "Background", "Default spp", "Description"})
	for _, info := range scenes {
		table.Append([]string{
			info.ID,
			info.DisplayName,
			info.Background,
			fmt.Sprintf("%d", info.Samples),
			info.Description,
		})
	}
	table.Render()
	return buf.String()
}
