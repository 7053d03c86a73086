package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyper-fast/go-web-benchmarks/cmd"
)

func main() {
	// Default to pretty console logger; `run --log-format json` switches to JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	cmd.Execute()
}
