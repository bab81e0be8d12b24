package naptan

import (
	"bufio"
	"bytes"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

var byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

// ParseCSV reads NaPTAN stops from either the full national Stops.csv or a file written by WriteCSV
func ParseCSV(reader io.Reader) ([]*Stop, error) {
	buffered := bufio.NewReader(reader)
	if prefix, err := buffered.Peek(len(byteOrderMark)); err == nil && bytes.Equal(prefix, byteOrderMark) {
		_, _ = buffered.Discard(len(byteOrderMark))
	}

	var stops []*Stop
	if err := gocsv.UnmarshalCSV(gocsv.LazyCSVReader(buffered), &stops); err != nil {
		return nil, errors.Wrap(err, "parsing NaPTAN csv")
	}

	return stops, nil
}

// WriteCSV writes the stops with just the columns kept by Stop
func WriteCSV(writer io.Writer, stops []*Stop) error {
	return gocsv.Marshal(stops, writer)
}
