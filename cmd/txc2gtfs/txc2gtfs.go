package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/txc2gtfs/pkg/converter"
	"github.com/travigo/txc2gtfs/pkg/naptan"
	"github.com/travigo/txc2gtfs/pkg/util"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	env := util.GetEnvironmentVariables()

	if env["TXC2GTFS_LOG_FORMAT"] != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if env["TXC2GTFS_DEBUG"] == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	commands := converter.RegisterCLI()
	commands = append(commands, naptan.RegisterCLI(), registerReprojectCLI())

	app := &cli.App{
		Name:        "txc2gtfs",
		Description: "Convert TransXChange timetables and NaPTAN stops into GTFS",
		Commands:    commands,
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
