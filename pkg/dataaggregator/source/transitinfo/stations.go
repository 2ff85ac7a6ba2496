package transitinfo

import (
	"context"
	"strings"

	"github.com/linkalls/norikae/pkg/ctdf"
	"github.com/linkalls/norikae/pkg/dataaggregator/query"
)

func (s Source) StationsQuery(ctx context.Context, q query.Stations) ([]ctdf.StationSearchResult, error) {
	name := strings.TrimSpace(q.Name)
	if name == "" {
		return []ctdf.StationSearchResult{}, nil
	}

	var stations []ctdf.StationSearchResult
	if s.getCached(ctx, q.CacheKey(), &stations) {
		return stations, nil
	}

	stations, err := s.Upstream.StationsByName(ctx, name)
	if err != nil {
		return nil, err
	}

	s.setCached(ctx, q.CacheKey(), stations, s.SuggestTTL)

	return stations, nil
}
