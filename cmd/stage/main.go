// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Command stage builds a sample scene and either
// prints its graphs or runs draw passes over it.
package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/gviegas/stage/light"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

// newApp creates the command line application.
func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "stage"
	app.Usage = "inspect and draw a sample scene"
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
			Name:   "tree",
			Usage:  "print the 3D and 2D graphs of the sample scene",
			Action: showTree,
		},
		{
			Name:  "draw",
			Usage: "run draw passes over the sample scene",
			Description: `
Traverse and draw the sample scene once per frame, then print
how many nodes and lights each frame visited.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "frames, n",
					Value: 4,
					Usage: "number of frames",
				},
				cli.IntFlag{
					Name:  "max-lights",
					Value: light.MaxLight,
					Usage: "maximum number of lights per frame",
				},
			},
			Action: drawFrames,
		},
	}
	return app
}
