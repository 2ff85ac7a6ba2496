package transitinfo

import (
	"context"
	"encoding/json"

	"github.com/linkalls/norikae/pkg/ctdf"
	"github.com/linkalls/norikae/pkg/dataaggregator/query"
	"github.com/linkalls/norikae/pkg/transforms"
	"github.com/rs/zerolog/log"
)

const lineStatusCacheKey = "cachedresults/linestatus"

func (s Source) LineStatusQuery(ctx context.Context, q query.LineStatus) ([]ctdf.LineStatus, error) {
	if !q.SkipCache {
		if lineStatuses, ok := s.cachedLineStatus(ctx); ok {
			return lineStatuses, nil
		}
	}

	lineStatuses, err := s.Upstream.DiainfoCheck(ctx)
	if err != nil {
		return nil, err
	}

	transforms.Transform(lineStatuses)

	if s.CachedResults != nil {
		lineStatusesJSON, _ := json.Marshal(lineStatuses)
		if err := s.CachedResults.Set(ctx, lineStatusCacheKey, string(lineStatusesJSON), s.LineStatusTTL); err != nil {
			log.Error().Err(err).Msg("Failed to cache line status")
		}
	}

	return lineStatuses, nil
}

func (s Source) cachedLineStatus(ctx context.Context) ([]ctdf.LineStatus, bool) {
	if s.CachedResults == nil {
		return nil, false
	}

	cachedObject, err := s.CachedResults.Get(ctx, lineStatusCacheKey)
	if err != nil {
		return nil, false
	}

	var lineStatuses []ctdf.LineStatus
	if err := json.Unmarshal([]byte(cachedObject), &lineStatuses); err != nil {
		log.Error().Err(err).Msg("Discarding unreadable cached line status")
		return nil, false
	}

	return lineStatuses, true
}
