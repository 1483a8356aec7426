package cmd

import (
	"github.com/urfave/cli"

	"github.com/hotaru-render/go-hybrid-raytracer/pkg/log"
)

var logger = log.New("hotaru")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
