package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/travigo/txc2gtfs/pkg/geo"
	"github.com/urfave/cli/v2"
)

func registerReprojectCLI() *cli.Command {
	return &cli.Command{
		Name:      "reproject",
		Usage:     "Convert an OS grid position into WGS84 longitude and latitude",
		ArgsUsage: "<easting northing | grid reference>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "to-grid",
				Usage: "Convert a WGS84 longitude and latitude into an OS easting and northing instead",
			},
		},
		Action: func(c *cli.Context) error {
			reference := strings.Join(c.Args().Slice(), " ")
			if reference == "" {
				return errors.New("no grid reference given")
			}

			if c.Bool("to-grid") {
				return printGrid(c, reference)
			}

			longitude, latitude, err := geo.FromGridReference(reference)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "%.6f,%.6f\n", longitude, latitude)
			return nil
		},
	}
}

func printGrid(c *cli.Context, position string) error {
	fields := strings.FieldsFunc(position, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) != 2 {
		return errors.Errorf("expected longitude and latitude, got %q", position)
	}

	longitude, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return errors.Wrap(err, "parsing longitude")
	}
	latitude, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return errors.Wrap(err, "parsing latitude")
	}

	easting, northing := geo.ToOSGB36(longitude, latitude)
	fmt.Fprintf(c.App.Writer, "%.0f %.0f\n", easting, northing)
	return nil
}
