package transitinfo

import (
	"context"
	"strings"

	"github.com/linkalls/norikae/pkg/ctdf"
	"github.com/linkalls/norikae/pkg/dataaggregator/query"
)

func (s Source) SuggestQuery(ctx context.Context, q query.Suggest) (*ctdf.Suggestions, error) {
	if strings.TrimSpace(q.Query) == "" {
		return &ctdf.Suggestions{
			Stations: []ctdf.SuggestedStation{},
			Spots:    []ctdf.SuggestedSpot{},
		}, nil
	}

	var suggestions *ctdf.Suggestions
	if s.getCached(ctx, q.CacheKey(), &suggestions) && suggestions != nil {
		return suggestions, nil
	}

	suggestions, err := s.Upstream.Assist(ctx, strings.TrimSpace(q.Query), q.Results)
	if err != nil {
		return nil, err
	}

	s.setCached(ctx, q.CacheKey(), suggestions, s.SuggestTTL)

	return suggestions, nil
}
