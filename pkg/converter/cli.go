package converter

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/travigo/txc2gtfs/pkg/calendar"
	"github.com/travigo/txc2gtfs/pkg/config"
	"github.com/travigo/txc2gtfs/pkg/gtfs"
	"github.com/travigo/txc2gtfs/pkg/holidays"
	"github.com/travigo/txc2gtfs/pkg/journeys"
	"github.com/travigo/txc2gtfs/pkg/naptan"
	"github.com/urfave/cli/v2"
)

func loadConfig(c *cli.Context) (*config.Config, error) {
	appConfig := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		if appConfig, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	if c.IsSet("output") {
		appConfig.Output = c.String("output")
	}
	if c.IsSet("naptan") {
		appConfig.NaPTAN.Path = c.String("naptan")
	}
	if c.IsSet("holidays") {
		appConfig.Holidays.Path = c.String("holidays")
	}
	if c.IsSet("holidays-url") {
		appConfig.Holidays.URL = c.String("holidays-url")
	}
	if c.IsSet("workers") {
		appConfig.Workers = c.Int("workers")
	}
	if c.IsSet("strict") {
		appConfig.Strict = c.Bool("strict")
	}
	if c.IsSet("agency-url") {
		appConfig.Agency.URL = c.String("agency-url")
	}
	if c.IsSet("timezone") {
		appConfig.Agency.Timezone = c.String("timezone")
	}

	return appConfig, appConfig.Validate()
}

func loadHolidays(c *cli.Context, appConfig *config.Config) (calendar.BankHolidays, error) {
	if appConfig.Holidays.Path != "" {
		return holidays.LoadFile(appConfig.Holidays.Path)
	}

	return holidays.FetchGovUK(c.Context, appConfig.Holidays.URL)
}

func loadNaPTAN(appConfig *config.Config) (*naptan.Index, error) {
	if appConfig.NaPTAN.Path == "" {
		log.Warn().Msg("No NaPTAN file set, stops will be named from the documents only")
		return nil, nil
	}

	return naptan.Load(appConfig.NaPTAN.Path)
}

func RegisterCLI() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "convert",
			Usage:     "Convert TransXChange documents, directories or zip bundles into a GTFS feed",
			ArgsUsage: "<input> [input...]",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "config", Usage: "YAML config file"},
				&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output directory, or a path ending .zip for an archive"},
				&cli.StringFlag{Name: "naptan", Usage: "NaPTAN Stops.csv, NaPTAN xml or a zip of either"},
				&cli.StringFlag{Name: "holidays", Usage: "YAML bank holiday file, used instead of the gov.uk feed"},
				&cli.StringFlag{Name: "holidays-url", Usage: "gov.uk bank holiday feed"},
				&cli.IntFlag{Name: "workers", Usage: "Number of documents converted at once"},
				&cli.BoolFlag{Name: "strict", Usage: "Fail if any document cannot be converted"},
				&cli.StringFlag{Name: "agency-url", Usage: "agency_url for every agency"},
				&cli.StringFlag{Name: "timezone", Usage: "agency_timezone for every agency"},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() == 0 {
					return errors.New("no inputs given")
				}

				appConfig, err := loadConfig(c)
				if err != nil {
					return err
				}

				bankHolidays, err := loadHolidays(c, appConfig)
				if err != nil {
					return errors.Wrap(err, "loading bank holidays")
				}
				naptanIndex, err := loadNaPTAN(appConfig)
				if err != nil {
					return err
				}

				inputs, err := Collect(c.Args().Slice())
				if err != nil {
					return err
				}
				defer inputs.Close()

				converter := &Converter{
					Holidays: bankHolidays,
					Options: gtfs.Options{
						AgencyURL: appConfig.Agency.URL,
						Timezone:  appConfig.Agency.Timezone,
						Language:  appConfig.Agency.Language,
						NaPTAN:    naptanIndex,
					},
					Workers: appConfig.Workers,
					Strict:  appConfig.Strict,
				}

				result, err := converter.Convert(c.Context, inputs.Documents)
				if err != nil {
					return err
				}

				if err := result.Feed.Write(appConfig.Output); err != nil {
					return err
				}
				log.Info().Str("output", appConfig.Output).Msg("Wrote GTFS feed")

				return nil
			},
		},
		{
			Name:      "inspect",
			Usage:     "Print the normalised form of a single TransXChange document",
			ArgsUsage: "<document.xml>",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "journeys", Usage: "Also print the journeys built from the document"},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return errors.New("inspect takes exactly one document")
				}

				doc, err := ParseSchedule(FileInput(c.Args().First()))
				if err != nil {
					return err
				}
				fmt.Fprintln(c.App.Writer, pretty.Sprint(doc))

				if c.Bool("journeys") {
					// Holidays are not loaded so bank holiday dates are left out of the calendars
					documentJourneys, err := journeys.NewProcessor(calendar.BankHolidays{}).Process(doc)
					if err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, pretty.Sprint(documentJourneys))
				}

				return nil
			},
		},
	}
}
