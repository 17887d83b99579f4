package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordlelab/internal/cli"
)

func main() {
	if err := cli.Execute(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("wordlelab exited")
	}
}
