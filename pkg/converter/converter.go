package converter

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/txc2gtfs/pkg/calendar"
	"github.com/travigo/txc2gtfs/pkg/gtfs"
	"github.com/travigo/txc2gtfs/pkg/journeys"
	"github.com/travigo/txc2gtfs/pkg/schedule"
	"github.com/travigo/txc2gtfs/pkg/transxchange"
)

// Converter turns TransXChange documents into one GTFS feed. Holidays and the NaPTAN index in Options
// are shared by all workers and only ever read.
type Converter struct {
	Holidays calendar.BankHolidays
	Options  gtfs.Options
	Workers  int
	Strict   bool
}

type Result struct {
	Feed      *gtfs.Feed
	Converted int
	Failed    int
}

type documentResult struct {
	index    int
	document gtfs.Document
	err      error
}

// Convert processes the inputs in parallel and adds them to the feed in input order, so the feed does not
// depend on which worker finished first. A document that fails is logged and left out, unless Strict is set
// in which case the first failure is returned.
func (c *Converter) Convert(ctx context.Context, inputs []Input) (*Result, error) {
	workers := c.Workers
	if workers < 1 {
		workers = 1
	}

	p := pool.NewWithResults[documentResult]().WithMaxGoroutines(workers)

	for index, input := range inputs {
		index, input := index, input
		p.Go(func() documentResult {
			if err := ctx.Err(); err != nil {
				return documentResult{index: index, err: err}
			}

			document, err := c.convertDocument(fmt.Sprint(index+1), input)
			return documentResult{index: index, document: document, err: err}
		})
	}

	results := make([]documentResult, len(inputs))
	for _, result := range p.Wait() {
		results[result.index] = result
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	feed := gtfs.NewFeed(c.Options)
	result := &Result{Feed: feed}

	for index, documentResult := range results {
		if documentResult.err != nil {
			result.Failed++
			log.Error().Err(documentResult.err).Str("document", inputs[index].Name).Msg("Failed to convert document")

			if c.Strict {
				return nil, errors.Wrapf(documentResult.err, "converting %s", inputs[index].Name)
			}
			continue
		}

		feed.Add(documentResult.document)
		result.Converted++
	}

	log.Info().
		Int("converted", result.Converted).
		Int("failed", result.Failed).
		Int("trips", len(feed.Trips)).
		Msg("Converted documents")

	return result, nil
}

// convertDocument runs one document through parsing, normalisation and journey processing with state of its own
func (c *Converter) convertDocument(key string, input Input) (gtfs.Document, error) {
	doc, err := ParseSchedule(input)
	if err != nil {
		return gtfs.Document{}, err
	}

	processor := journeys.NewProcessor(c.Holidays)
	documentJourneys, err := processor.Process(doc)
	if err != nil {
		return gtfs.Document{}, err
	}

	log.Debug().
		Str("document", input.Name).
		Int("journeys", len(documentJourneys)).
		Msg("Processed document")

	return gtfs.Document{
		Key:       key,
		Schedule:  doc,
		Journeys:  documentJourneys,
		Calendars: processor.Calendars(),
	}, nil
}

// ParseSchedule reads and normalises a single document
func ParseSchedule(input Input) (*schedule.Schedule, error) {
	reader, err := input.Open()
	if err != nil {
		return nil, errors.Wrap(err, "opening document")
	}
	defer reader.Close()

	doc, err := transxchange.ParseXMLFile(reader)
	if err != nil {
		return nil, err
	}

	return transxchange.Normalize(doc)
}
