package naptan

import (
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "naptan",
		Usage: "Download the national NaPTAN stop list for use by convert",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "url",
				Value: DefaultURL,
				Usage: "NaPTAN export to download",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "Stops.csv",
				Usage:   "Where to write the stop list",
			},
		},
		Action: func(c *cli.Context) error {
			_, err := Download(c.Context, c.String("url"), c.String("output"))
			return err
		},
	}
}
