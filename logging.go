package main

import (
	"github.com/df07/raito/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("raito")

// setupLogging applies -v/-vv, or --log-level when given
func setupLogging(ctx *cli.Context) error {
	level := log.Notice
	if ctx.GlobalBool("v") {
		level = log.Info
	}
	if ctx.GlobalBool("vv") {
		level = log.Debug
	}

	if name := ctx.GlobalString("log-level"); name != "" {
		parsed, err := log.ParseLevel(name)
		if err != nil {
			return err
		}
		level = parsed
	}

	log.SetLevel(level)
	return nil
}
