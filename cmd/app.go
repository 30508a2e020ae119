package cmd

import (
	"github.com/urfave/cli"
)

// NewApp assembles the command tree for the pathtracer binary.
func NewApp() *cli.App {
	// -v is taken by the verbosity flag
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "pathtracer"
	app.Usage = "render scenes with a progressive Monte Carlo path tracer"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable very verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "log level (debug, info, notice, warning, error)",
		},
	}

	sceneFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "scene",
			Value: "default",
			Usage: "built-in scene to render (see the scenes command)",
		},
		cli.IntFlag{
			Name:  "width",
			Value: 400,
			Usage: "image width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: 225,
			Usage: "image height",
		},
		cli.IntFlag{
			Name:  "depth",
			Value: 0,
			Usage: "max bounces per path; 0 keeps the scene default",
		},
		cli.IntFlag{
			Name:  "workers",
			Value: 0,
			Usage: "number of render bands; 0 uses one per CPU",
		},
		cli.Int64Flag{
			Name:  "seed",
			Value: 42,
			Usage: "base seed for the per-band random generators",
		},
		cli.StringFlag{
			Name:  "out",
			Value: "frame.png",
			Usage: "image filename for the rendered frame",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene",
			Subcommands: []cli.Command{
				{
					Name:        "frame",
					Usage:       "render a single frame",
					Description: "Render a single frame of the scene and save it as a PNG.",
					Flags: append([]cli.Flag{
						cli.IntFlag{
							Name:  "spp",
							Value: 0,
							Usage: "samples per pixel; 0 keeps the scene default",
						},
					}, sceneFlags...),
					Action: RenderFrame,
				},
				{
					Name:        "progressive",
					Usage:       "render frames and blend them until interrupted",
					Description: "Render passes and blend each one into an accumulation buffer, rewriting the PNG after every pass.",
					Flags: append([]cli.Flag{
						cli.IntFlag{
							Name:  "passes",
							Value: 50,
							Usage: "number of passes to accumulate",
						},
						cli.IntFlag{
							Name:  "spp",
							Value: 1,
							Usage: "samples per pixel rendered in each pass",
						},
					}, sceneFlags...),
					Action: RenderProgressive,
				},
			},
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: ListScenes,
		},
		{
			Name:  "serve",
			Usage: "serve the browser viewer",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port",
					Value: 8080,
					Usage: "port to listen on",
				},
			},
			Action: Serve,
		},
	}

	return app
}
