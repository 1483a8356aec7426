package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/hotaru-render/go-hybrid-raytracer/cmd"
	"github.com/hotaru-render/go-hybrid-raytracer/pkg/log"
)

var logger = log.New("hotaru")

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "hotaru"
	app.Usage = "render scenes with the hybrid surface+volume raytracer"
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
			Usage: "render a built-in scene to a png file",
			Description: `
Build one of the built-in demo scenes, trace it with the tile-parallel
hybrid surface+volume engine and write the result to a png file.`,
			Action: cmd.RenderFrame,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene",
					Usage: "scene to render (default, volume)",
					Value: "default",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width",
					Value: 640,
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height",
					Value: 480,
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "pixel sample rate per axis",
					Value: 3,
				},
				cli.IntFlag{
					Name:  "tile-size",
					Usage: "tile size in pixels",
					Value: 64,
				},
				cli.Float64Flag{
					Name:  "jitter",
					Usage: "sample jitter amount in [0,1]",
					Value: 1,
				},
				cli.Float64Flag{
					Name:  "filter-width",
					Usage: "pixel filter width",
					Value: 1,
				},
				cli.IntFlag{
					Name:  "max-reflect-depth",
					Usage: "reflection bounce limit",
					Value: 5,
				},
				cli.IntFlag{
					Name:  "max-refract-depth",
					Usage: "refraction bounce limit",
					Value: 5,
				},
				cli.Float64Flag{
					Name:  "raymarch-step",
					Usage: "volume raymarch step size",
					Value: 0.05,
				},
				cli.Float64Flag{
					Name:  "shutter",
					Usage: "shutter interval for motion blur",
					Value: 0,
				},
				cli.BoolFlag{
					Name:  "no-shadows",
					Usage: "disable shadow rays",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "worker count (0 = cpu count)",
					Value: 0,
				},
				cli.StringFlag{
					Name:  "out",
					Usage: "output png file",
					Value: "frame.png",
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
