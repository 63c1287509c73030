package main

import "github.com/rs/zerolog/log"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("stemcheck")
	}
}
