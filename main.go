// Package main is the entry point for swatchport.
package main

import (
	"github.com/bulmaswatch/swatchport/cmd"
	"github.com/bulmaswatch/swatchport/config"
	"github.com/bulmaswatch/swatchport/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	if log.Enabled() {
		log.PruneDefault()
	}

	cmd.Execute()
}
