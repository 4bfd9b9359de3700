// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package main

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/urfave/cli"

	"github.com/gviegas/stage"
	"github.com/gviegas/stage/internal/demo"
	"github.com/gviegas/stage/internal/log"
)

var logger = log.New("cmd")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}
	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

// showTree prints the graphs of the sample scene.
func showTree(ctx *cli.Context) error {
	setupLogging(ctx)

	var rec demo.Recorder
	config := stage.DefaultConfig()
	fmt.Fprintln(ctx.App.Writer, demo.Tree(demo.Build(&rec, &config)))
	return nil
}

// drawFrames runs draw passes over the sample scene
// and prints per-frame stats.
func drawFrames(ctx *cli.Context) error {
	setupLogging(ctx)

	n := ctx.Int("frames")
	if n <= 0 {
		return errors.New("frames must be greater than zero")
	}
	config := stage.DefaultConfig()
	config.MaxLight = ctx.Int("max-lights")

	var rec demo.Recorder
	s := demo.Build(&rec, &config)
	cam := &demo.Camera{
		Eye: mgl32.Vec3{0, 2, 8},
		Up:  mgl32.Vec3{0, 1, 0},
	}
	logger.Noticef("drawing %d frame(s), up to %d light(s) each", n, s.MaxLight())

	demo.Report(ctx.App.Writer, demo.Run(s, cam, &rec, n))
	return nil
}
