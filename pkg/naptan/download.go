package naptan

import (
	"archive/zip"
	"bytes"
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/travigo/txc2gtfs/pkg/util"
)

const DefaultURL = "https://naptan.api.dft.gov.uk/v1/access-nodes?dataFormat=csv"

// Download fetches the national NaPTAN export and writes the kept columns of every stop to outputPath.
// The export may be served as plain csv or as a zip containing Stops.csv.
func Download(ctx context.Context, url string, outputPath string) (int, error) {
	log.Info().Str("url", url).Msg("Downloading NaPTAN")

	body, err := util.Download(ctx, url)
	if err != nil {
		return 0, err
	}

	var stops []*Stop
	if bytes.HasPrefix(body, []byte("PK")) {
		archive, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
		if err != nil {
			return 0, errors.Wrap(err, "opening NaPTAN archive")
		}
		stops, err = parseArchive(archive)
		if err != nil {
			return 0, err
		}
	} else {
		stops, err = ParseCSV(bytes.NewReader(body))
		if err != nil {
			return 0, err
		}
	}

	output, err := os.Create(outputPath)
	if err != nil {
		return 0, errors.Wrap(err, "creating NaPTAN output")
	}
	defer output.Close()

	if err := WriteCSV(output, stops); err != nil {
		return 0, errors.Wrap(err, "writing NaPTAN output")
	}

	log.Info().Str("path", outputPath).Int("stops", len(stops)).Msg("Wrote NaPTAN stops")

	return len(stops), nil
}
