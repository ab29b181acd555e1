package cmd

import (
	"github.com/urfave/cli"

	"github.com/feitianyiren/appleseed-max/log"
)

var logger = log.New("glassmtl")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
