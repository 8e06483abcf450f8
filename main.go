// Package main is the entry point for marquee.
package main

import (
	"time"

	"github.com/marquee-cli/marquee/cmd"
	"github.com/marquee-cli/marquee/config"
	"github.com/marquee-cli/marquee/internal/sweep"
	"github.com/marquee-cli/marquee/log"
	"github.com/marquee-cli/marquee/where"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	sweep.CollectGarbage(map[string]time.Duration{
		where.Logs(): sweep.LogsTTL,
		where.Temp(): sweep.SocketsTTL,
	})

	cmd.Execute()
}
