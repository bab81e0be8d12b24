package gtfs

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type feedTable struct {
	fileName string
	rows     interface{}
	count    int
}

func (f *Feed) tables() []feedTable {
	return []feedTable{
		{"agency.txt", f.Agencies, len(f.Agencies)},
		{"stops.txt", f.Stops, len(f.Stops)},
		{"routes.txt", f.Routes, len(f.Routes)},
		{"trips.txt", f.Trips, len(f.Trips)},
		{"stop_times.txt", f.StopTimes, len(f.StopTimes)},
		{"calendar.txt", f.Calendars, len(f.Calendars)},
		{"calendar_dates.txt", f.CalendarDates, len(f.CalendarDates)},
		{"shapes.txt", f.Shapes, len(f.Shapes)},
	}
}

// Write saves the feed as a zip archive when path ends in .zip, otherwise as a directory of .txt files
func (f *Feed) Write(path string) error {
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return f.WriteZip(path)
	}
	return f.WriteDirectory(path)
}

func (f *Feed) WriteDirectory(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return errors.Wrap(err, "creating feed directory")
	}

	for _, table := range f.tables() {
		if err := writeTableFile(filepath.Join(path, table.fileName), table); err != nil {
			return err
		}
	}

	return nil
}

func writeTableFile(path string, table feedTable) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", table.fileName)
	}

	if err := writeTable(file, table); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

func (f *Feed) WriteZip(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating feed archive")
	}
	defer file.Close()

	archive := zip.NewWriter(file)
	for _, table := range f.tables() {
		entry, err := archive.Create(table.fileName)
		if err != nil {
			return errors.Wrapf(err, "adding %s to archive", table.fileName)
		}
		if err := writeTable(entry, table); err != nil {
			return err
		}
	}

	if err := archive.Close(); err != nil {
		return errors.Wrap(err, "closing feed archive")
	}

	return file.Close()
}

func writeTable(writer io.Writer, table feedTable) error {
	if err := gocsv.Marshal(table.rows, writer); err != nil {
		return errors.Wrapf(err, "writing %s", table.fileName)
	}

	log.Debug().Str("file", table.fileName).Int("rows", table.count).Msg("Wrote GTFS table")

	return nil
}
