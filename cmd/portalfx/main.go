package main

import (
	"github.com/ThatOtherAndrew/portalfx/cmd"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("portalfx")
	}
}
