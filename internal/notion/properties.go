package notion

import (
	"context"
	"sort"

	"notion-chart-api/internal/model"
)

// FindTitleProperty returns the id of the page's title-typed property.
func FindTitleProperty(properties map[string]model.PropertyValue) (string, bool) {
	for id, property := range properties {
		if property.Type == model.KindTitle {
			return id, true
		}
	}
	return "", false
}

// EnrichRelationOptions fills each relation property's option list with the
// ids and titles of the pages in the referenced data source, so the
// configuration UI can offer them as filter values. Enrichment is best
// effort: a failing lookup leaves that property without options.
func (c *Client) EnrichRelationOptions(ctx context.Context, db *model.Database) {
	for id, property := range db.Properties {
		if property.Type != model.KindRelation || property.Relation == nil {
			continue
		}
		if property.Relation.DataSourceID == "" {
			continue
		}

		pages, err := c.QueryPages(ctx, property.Relation.DataSourceID, PageQuery{
			FilterProperties: []string{"title"},
		})
		if err != nil {
			c.log.WithError(err).WithField("property", id).
				Warn("could not enrich relation property")
			continue
		}

		options := make([]model.PropertyOption, 0, len(pages))
		for _, page := range pages {
			option := model.PropertyOption{ID: page.ID}
			if titleID, ok := FindTitleProperty(page.Properties); ok {
				segments := page.Properties[titleID].Title
				if len(segments) > 0 {
					option.Name = segments[0].PlainText
				}
			}
			options = append(options, option)
		}

		property.Relation.Options = options
		db.Properties[id] = property
	}
}

// ParsedProperty is the schema entry shape served to the dashboard.
type ParsedProperty struct {
	ID      string                 `json:"id"`
	Name    string                 `json:"name"`
	Type    model.PropertyKind     `json:"type"`
	Options []model.PropertyOption `json:"options,omitempty"`
}

// ParsedDatabase is a database summary for the picker UI.
type ParsedDatabase struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	URL        string           `json:"url"`
	Properties []ParsedProperty `json:"properties"`
}

// ParseDatabase flattens a schema into the picker shape: id, display title,
// and per-property option lists for the option-bearing types.
func ParseDatabase(db model.Database) ParsedDatabase {
	properties := make([]ParsedProperty, 0, len(db.Properties))
	for id, property := range db.Properties {
		parsed := ParsedProperty{ID: id, Name: property.Name, Type: property.Type}
		switch {
		case property.Type == model.KindSelect && property.Select != nil:
			parsed.Options = property.Select.Options
		case property.Type == model.KindStatus && property.Status != nil:
			parsed.Options = property.Status.Options
		case property.Type == model.KindRelation && property.Relation != nil:
			parsed.Options = property.Relation.Options
		}
		properties = append(properties, parsed)
	}
	sort.Slice(properties, func(i, j int) bool { return properties[i].Name < properties[j].Name })

	return ParsedDatabase{
		ID:         db.ID,
		Title:      db.TitleText(),
		URL:        db.URL,
		Properties: properties,
	}
}
