package cmd

import (
	"github.com/df07/go-weekend-raytracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("weekend-raytracer")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

// exitError logs err and converts it into a non-zero process exit
func exitError(err error) error {
	logger.Error(err)
	return cli.NewExitError(err.Error(), 1)
}
