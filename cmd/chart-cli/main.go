package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"notion-chart-api/internal/chart"
	"notion-chart-api/internal/model"
)

// chart-cli runs the aggregation pipeline against a JSON dump of pages, so
// chart configurations can be tried out without a live Notion token.
func main() {
	input := flag.String("input", "", "path to a JSON array of pages")
	xField := flag.String("x", "", "x-axis property id")
	xType := flag.String("x-type", "select", "x-axis property type")
	yField := flag.String("y", "", "y-axis property id (sum and avg)")
	aggregation := flag.String("agg", "count", "aggregation: count, sum or avg")
	sortOrder := flag.String("sort", "asc", "sort order: asc or desc")
	accumulate := flag.Bool("accumulate", false, "return running totals")
	flag.Parse()

	if *input == "" || *xField == "" {
		flag.Usage()
		os.Exit(2)
	}

	raw, err := os.ReadFile(*input)
	if err != nil {
		logrus.WithError(err).Fatal("could not read input")
	}
	var pages []model.Page
	if err := json.Unmarshal(raw, &pages); err != nil {
		logrus.WithError(err).Fatal("could not parse pages")
	}

	data, err := chart.Process(pages, chart.Request{
		XAxisFieldID: *xField,
		XAxisKind:    model.PropertyKind(*xType),
		Aggregation:  model.Aggregation(*aggregation),
		YAxisFieldID: *yField,
		SortOrder:    model.SortOrder(*sortOrder),
		Accumulate:   *accumulate,
	})
	if err != nil {
		logrus.WithError(err).Fatal("chart build failed")
	}

	out := json.NewEncoder(os.Stdout)
	out.SetIndent("", "  ")
	out.Encode(data)
}
