package transitinfo

import (
	"context"
	"encoding/json"
	"reflect"
	"time"

	"github.com/linkalls/norikae/pkg/ctdf"
	"github.com/linkalls/norikae/pkg/dataaggregator/query"
	"github.com/linkalls/norikae/pkg/dataaggregator/source"
	"github.com/linkalls/norikae/pkg/dataaggregator/source/cachedresults"
	"github.com/linkalls/norikae/pkg/navi"
	"github.com/rs/zerolog/log"
)

type Upstream interface {
	DiainfoCheck(ctx context.Context) ([]ctdf.LineStatus, error)
	Assist(ctx context.Context, query string, results int) (*ctdf.Suggestions, error)
	StationsByName(ctx context.Context, name string) ([]ctdf.StationSearchResult, error)
	StationTimetable(ctx context.Context, request navi.TimetableRequest) (*ctdf.StationTimetable, error)
}

type StationNameResolver interface {
	Resolve(ctx context.Context, stationIDs []string) map[string]ctdf.StationNameInfo
}

// Source answers the station, line status, suggestion and timetable lookups
type Source struct {
	Upstream      Upstream
	Resolver      StationNameResolver
	CachedResults *cachedresults.Cache

	LineStatusTTL time.Duration
	SuggestTTL    time.Duration
	TimetableTTL  time.Duration
}

func (s Source) GetName() string {
	return "Transit Info"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(map[string]ctdf.StationNameInfo{}),
		reflect.TypeOf([]ctdf.LineStatus{}),
		reflect.TypeOf(ctdf.Suggestions{}),
		reflect.TypeOf([]ctdf.StationSearchResult{}),
		reflect.TypeOf(ctdf.StationTimetable{}),
	}
}

func (s Source) Lookup(ctx context.Context, q any) (interface{}, error) {
	switch q := q.(type) {
	case query.StationNames:
		return s.StationNamesQuery(ctx, q)
	case query.LineStatus:
		return s.LineStatusQuery(ctx, q)
	case query.Suggest:
		return s.SuggestQuery(ctx, q)
	case query.Stations:
		return s.StationsQuery(ctx, q)
	case query.Timetable:
		return s.TimetableQuery(ctx, q)
	default:
		return nil, source.UnsupportedSourceError
	}
}

func (s Source) StationNamesQuery(ctx context.Context, q query.StationNames) (map[string]ctdf.StationNameInfo, error) {
	return s.Resolver.Resolve(ctx, q.StationIDs), nil
}

// getCached decodes a cached JSON value into target, false on a miss
func (s Source) getCached(ctx context.Context, key string, target any) bool {
	if s.CachedResults == nil {
		return false
	}

	cachedObject, err := s.CachedResults.Get(ctx, key)
	if err != nil {
		return false
	}

	if err := json.Unmarshal([]byte(cachedObject), target); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Discarding unreadable cached result")
		return false
	}

	return true
}

func (s Source) setCached(ctx context.Context, key string, value any, expiration time.Duration) {
	if s.CachedResults == nil {
		return
	}

	valueJSON, _ := json.Marshal(value)
	if err := s.CachedResults.Set(ctx, key, string(valueJSON), expiration); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to cache result")
	}
}
