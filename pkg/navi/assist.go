package navi

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/linkalls/norikae/pkg/ctdf"
)

// Assist returns completion candidates for partially typed station or place names
func (c *Client) Assist(ctx context.Context, query string, results int) (*ctdf.Suggestions, error) {
	if results <= 0 {
		results = 10
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("results", strconv.Itoa(results))

	var data AssistData
	if err := c.get(ctx, c.config.PoiURL, "/v1/assist", params, &data); err != nil {
		return nil, err
	}

	return data.Suggestions(), nil
}

// Suggestions splits the features into stations (anything with a code) and other spots
func (d AssistData) Suggestions() *ctdf.Suggestions {
	suggestions := &ctdf.Suggestions{
		Stations: []ctdf.SuggestedStation{},
		Spots:    []ctdf.SuggestedSpot{},
	}

	for _, feature := range d.Feature {
		name := strings.TrimSpace(feature.Name.String())
		if name == "" {
			continue
		}

		var address string
		var stationType string
		if feature.Property != nil {
			address = feature.Property.Address.String()
			stationType = feature.Property.StationType.String()
		}

		if feature.Code != "" {
			station := ctdf.SuggestedStation{
				ID:      feature.Code.String(),
				Name:    name,
				Yomi:    feature.Yomi.String(),
				Address: address,
				Type:    stationType,
			}

			if feature.Geometry != nil {
				coordinates := strings.Split(feature.Geometry.Coordinates.String(), ",")
				if len(coordinates) == 2 {
					station.Longitude = strings.TrimSpace(coordinates[0])
					station.Latitude = strings.TrimSpace(coordinates[1])
				}
			}

			suggestions.Stations = append(suggestions.Stations, station)
		} else {
			id := feature.Gid.String()
			if id == "" {
				id = feature.Id.String()
			}

			suggestions.Spots = append(suggestions.Spots, ctdf.SuggestedSpot{
				ID:      id,
				Name:    name,
				Address: address,
			})
		}
	}

	return suggestions
}
