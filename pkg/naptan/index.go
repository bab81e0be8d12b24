package naptan

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Index is the NaPTAN stop table keyed by ATCO code. It is never written to after it is built
// so one Index can be read by every conversion worker.
type Index struct {
	stops map[string]*Stop
}

func NewIndex(stops []*Stop) *Index {
	index := &Index{stops: make(map[string]*Stop, len(stops))}

	for _, stop := range stops {
		if stop.AtcoCode == "" {
			continue
		}
		// The national file lists a handful of codes twice, keep the first
		if _, exists := index.stops[stop.AtcoCode]; !exists {
			index.stops[stop.AtcoCode] = stop
		}
	}

	return index
}

// Lookup returns the NaPTAN row for an ATCO code
func (i *Index) Lookup(atcoCode string) (*Stop, bool) {
	if i == nil {
		return nil, false
	}

	stop, ok := i.stops[atcoCode]
	return stop, ok
}

func (i *Index) Len() int {
	if i == nil {
		return 0
	}

	return len(i.stops)
}

// Load builds an Index from a Stops.csv, a NaPTAN XML document or a zip holding either
func Load(path string) (*Index, error) {
	var stops []*Stop
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		stops, err = loadZip(path)
	case ".xml":
		stops, err = loadFile(path, ParseXML)
	default:
		stops, err = loadFile(path, ParseCSV)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "loading NaPTAN from %s", path)
	}

	index := NewIndex(stops)
	log.Info().Str("path", path).Int("stops", index.Len()).Msg("Loaded NaPTAN")

	return index, nil
}

func loadFile(path string, parse func(io.Reader) ([]*Stop, error)) ([]*Stop, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return parse(file)
}

func loadZip(path string) ([]*Stop, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer archive.Close()

	return parseArchive(&archive.Reader)
}

// parseArchive reads the first Stops.csv, or failing that the first xml file, in the archive
func parseArchive(archive *zip.Reader) ([]*Stop, error) {
	var xmlFile *zip.File

	for _, file := range archive.File {
		name := filepath.Base(file.Name)

		if strings.EqualFold(name, "Stops.csv") {
			return parseArchiveFile(file, ParseCSV)
		}
		if xmlFile == nil && strings.EqualFold(filepath.Ext(name), ".xml") {
			xmlFile = file
		}
	}

	if xmlFile != nil {
		return parseArchiveFile(xmlFile, ParseXML)
	}

	return nil, errors.New("archive contains no Stops.csv or xml file")
}

func parseArchiveFile(file *zip.File, parse func(io.Reader) ([]*Stop, error)) ([]*Stop, error) {
	reader, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return parse(reader)
}
