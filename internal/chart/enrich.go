package chart

import (
	"context"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"notion-chart-api/internal/model"
)

// relationLookupConcurrency bounds the fan-out of page retrievals during
// relation enrichment.
const relationLookupConcurrency = 8

// PageResolver loads a single page by id. The Notion client implements it;
// tests substitute fakes.
type PageResolver interface {
	RetrievePage(ctx context.Context, pageID string) (model.Page, error)
}

// ResolveRelationTitles fetches each distinct referenced page once and
// returns an id -> title map for the pages that carry a title-typed
// property. Ids whose page cannot be loaded, or whose page has no
// title-bearing property, are simply absent from the map — enrichment never
// fails a chart. Lookups run concurrently but bounded, and stop when ctx is
// cancelled.
func ResolveRelationTitles(ctx context.Context, ids []string, resolver PageResolver) map[string]string {
	distinct := make(map[string]bool, len(ids))
	var queue []string
	for _, id := range ids {
		if id != "" && !distinct[id] {
			distinct[id] = true
			queue = append(queue, id)
		}
	}
	if len(queue) == 0 {
		return nil
	}

	titles := make(map[string]string, len(queue))
	var mu sync.Mutex

	p := pool.New().WithMaxGoroutines(relationLookupConcurrency)
	for _, id := range queue {
		p.Go(func() {
			if ctx.Err() != nil {
				return
			}
			page, err := resolver.RetrievePage(ctx, id)
			if err != nil {
				return
			}
			title, ok := titleOf(page)
			if !ok {
				return
			}
			mu.Lock()
			titles[id] = title
			mu.Unlock()
		})
	}
	p.Wait()

	return titles
}

// EnrichRelationData replaces relation group keys (page ids) with the titles
// of the referenced pages. Keys without a resolved title keep the raw id.
func EnrichRelationData(ctx context.Context, data model.ChartData, resolver PageResolver) model.ChartData {
	ids := make([]string, 0, len(data.Data))
	for _, point := range data.Data {
		ids = append(ids, point.Name)
	}
	titles := ResolveRelationTitles(ctx, ids, resolver)
	if len(titles) == 0 {
		return data
	}

	enriched := make([]model.DataPoint, len(data.Data))
	for i, point := range data.Data {
		enriched[i] = point
		if title, ok := titles[point.Name]; ok {
			enriched[i].Name = title
		}
	}
	data.Data = enriched
	return data
}

// EnrichRelationDataMultiSeries is EnrichRelationData for merged rows.
func EnrichRelationDataMultiSeries(ctx context.Context, data model.MultiSeriesChartData, resolver PageResolver) model.MultiSeriesChartData {
	ids := make([]string, 0, len(data.Data))
	for _, row := range data.Data {
		ids = append(ids, row.Name)
	}
	titles := ResolveRelationTitles(ctx, ids, resolver)
	if len(titles) == 0 {
		return data
	}

	enriched := make([]model.MultiSeriesPoint, len(data.Data))
	for i, row := range data.Data {
		enriched[i] = row
		if title, ok := titles[row.Name]; ok {
			enriched[i].Name = title
		}
	}
	data.Data = enriched
	return data
}

// titleOf returns the plain text of the page's title-typed property.
func titleOf(page model.Page) (string, bool) {
	for _, property := range page.Properties {
		if property.Type != model.KindTitle {
			continue
		}
		if len(property.Title) == 0 || property.Title[0].PlainText == "" {
			return "", false
		}
		return property.Title[0].PlainText, true
	}
	return "", false
}
