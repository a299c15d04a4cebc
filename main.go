package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func newApp() *cli.App {
	// -v is taken by verbose logging
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "raito"
	app.Usage = "render sphere scenes with a bucketed CPU ray tracer"
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
		cli.StringFlag{
			Name:  "log-level",
			Usage: "log level: debug, info, notice, warning or error (overrides -v and -vv)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to a PNG image",
			Description: `
Render a built-in scene or an XML scene description. The frame is split into
square buckets which are rendered concurrently and merged into the image.

Without --out the image is written to output/<scene>/render_<timestamp>.png.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "built-in scene name or path to an .xml scene file",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "image filename for the rendered frame",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width, height follows the scene's aspect ratio (0 = scene value)",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel (0 = scene value)",
				},
				cli.IntFlag{
					Name:  "bounces",
					Value: -1,
					Usage: "maximum ray bounces (-1 = scene value)",
				},
				cli.IntFlag{
					Name:  "tile",
					Value: 50,
					Usage: "bucket size in pixels",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 8,
					Usage: "concurrent render workers (0 = CPU count)",
				},
				cli.StringFlag{
					Name:  "mode",
					Value: "raster",
					Usage: "bucket order: raster or center",
				},
				cli.IntFlag{
					Name:  "pass-samples",
					Usage: "samples per bucket pass, buckets are revisited until they reach spp (0 = single pass)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "base seed for the samplers",
				},
			},
			Action: renderAction,
		},
		{
			Name:  "scenes",
			Usage: "list built-in scenes and the XML scenes in a directory",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "dir, d",
					Value: "scenes",
					Usage: "directory holding .xml scene files",
				},
			},
			Action: listScenesAction,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
