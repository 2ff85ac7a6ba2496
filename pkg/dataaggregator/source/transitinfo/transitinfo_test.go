package transitinfo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/linkalls/norikae/pkg/ctdf"
	"github.com/linkalls/norikae/pkg/dataaggregator/query"
	"github.com/linkalls/norikae/pkg/dataaggregator/source"
	"github.com/linkalls/norikae/pkg/dataaggregator/source/cachedresults"
	"github.com/linkalls/norikae/pkg/navi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUpstream struct {
	diainfoCalls int
	assistCalls  int
	assistQuery  string
	err          error

	stationCalls   int
	timetableCalls int
	timetables     map[string]*ctdf.StationTimetable
}

func (f *fakeUpstream) DiainfoCheck(ctx context.Context) ([]ctdf.LineStatus, error) {
	f.diainfoCalls++
	if f.err != nil {
		return nil, f.err
	}

	return []ctdf.LineStatus{
		{RailCode: "1", RailName: "山手線", Status: ctdf.LineStatusDelay, Message: "遅延"},
	}, nil
}

func (f *fakeUpstream) Assist(ctx context.Context, q string, results int) (*ctdf.Suggestions, error) {
	f.assistCalls++
	f.assistQuery = q
	if f.err != nil {
		return nil, f.err
	}

	return &ctdf.Suggestions{
		Stations: []ctdf.SuggestedStation{{ID: "22715", Name: "渋谷", Type: "st"}},
		Spots:    []ctdf.SuggestedSpot{},
	}, nil
}

func (f *fakeUpstream) StationsByName(ctx context.Context, name string) ([]ctdf.StationSearchResult, error) {
	f.stationCalls++
	if f.err != nil {
		return nil, f.err
	}

	return []ctdf.StationSearchResult{{ID: "22715", Name: name}}, nil
}

func (f *fakeUpstream) StationTimetable(ctx context.Context, request navi.TimetableRequest) (*ctdf.StationTimetable, error) {
	f.timetableCalls++
	if f.err != nil {
		return nil, f.err
	}

	timetable, exists := f.timetables[request.StationCode]
	if !exists {
		return nil, navi.ErrNotFound
	}

	return timetable, nil
}

type fakeResolver struct {
	stationIDs []string
}

func (f *fakeResolver) Resolve(ctx context.Context, stationIDs []string) map[string]ctdf.StationNameInfo {
	f.stationIDs = stationIDs

	names := map[string]ctdf.StationNameInfo{}
	for _, stationID := range stationIDs {
		names[stationID] = ctdf.StationNameInfo{Name: "station " + stationID}
	}

	return names
}

func newSource(upstream *fakeUpstream) Source {
	cache := &cachedresults.Cache{}
	cache.Setup(time.Minute, 10)

	return Source{
		Upstream:      upstream,
		Resolver:      &fakeResolver{},
		CachedResults: cache,
		LineStatusTTL: time.Minute,
		SuggestTTL:    time.Minute,
		TimetableTTL:  time.Minute,
	}
}

func TestLineStatusIsCached(t *testing.T) {
	upstream := &fakeUpstream{}
	s := newSource(upstream)

	first, err := s.LineStatusQuery(context.Background(), query.LineStatus{})
	require.NoError(t, err)
	second, err := s.LineStatusQuery(context.Background(), query.LineStatus{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, upstream.diainfoCalls)

	_, err = s.LineStatusQuery(context.Background(), query.LineStatus{SkipCache: true})
	require.NoError(t, err)
	assert.Equal(t, 2, upstream.diainfoCalls)
}

func TestLineStatusFailureIsNotCached(t *testing.T) {
	upstream := &fakeUpstream{err: errors.New("timeout")}
	s := newSource(upstream)

	_, err := s.LineStatusQuery(context.Background(), query.LineStatus{})
	assert.Error(t, err)

	upstream.err = nil
	statuses, err := s.LineStatusQuery(context.Background(), query.LineStatus{})
	require.NoError(t, err)
	assert.Len(t, statuses, 1)
	assert.Equal(t, 2, upstream.diainfoCalls)
}

func TestSuggestIsCachedPerQuery(t *testing.T) {
	upstream := &fakeUpstream{}
	s := newSource(upstream)

	suggestions, err := s.SuggestQuery(context.Background(), query.Suggest{Query: " 渋谷 ", Results: 10})
	require.NoError(t, err)
	assert.Equal(t, "渋谷", suggestions.Stations[0].Name)
	assert.Equal(t, "渋谷", upstream.assistQuery)

	_, err = s.SuggestQuery(context.Background(), query.Suggest{Query: "渋谷", Results: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, upstream.assistCalls)

	_, err = s.SuggestQuery(context.Background(), query.Suggest{Query: "新宿", Results: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, upstream.assistCalls)
}

func TestSuggestBlankQuery(t *testing.T) {
	upstream := &fakeUpstream{}
	s := newSource(upstream)

	suggestions, err := s.SuggestQuery(context.Background(), query.Suggest{Query: "  "})
	require.NoError(t, err)
	assert.NotNil(t, suggestions.Stations)
	assert.Empty(t, suggestions.Stations)
	assert.Equal(t, 0, upstream.assistCalls)
}

func TestWithoutCache(t *testing.T) {
	upstream := &fakeUpstream{}
	s := Source{Upstream: upstream, Resolver: &fakeResolver{}}

	_, err := s.LineStatusQuery(context.Background(), query.LineStatus{})
	require.NoError(t, err)
	_, err = s.LineStatusQuery(context.Background(), query.LineStatus{})
	require.NoError(t, err)

	assert.Equal(t, 2, upstream.diainfoCalls)
}

func TestLookupDispatch(t *testing.T) {
	s := newSource(&fakeUpstream{})

	names, err := s.Lookup(context.Background(), query.StationNames{StationIDs: []string{"22715"}})
	require.NoError(t, err)
	assert.Equal(t, "station 22715", names.(map[string]ctdf.StationNameInfo)["22715"].Name)

	_, err = s.Lookup(context.Background(), query.JourneyPlan{})
	assert.ErrorIs(t, err, source.UnsupportedSourceError)
}

func TestStationsAreCachedPerName(t *testing.T) {
	upstream := &fakeUpstream{}
	s := newSource(upstream)

	stations, err := s.StationsQuery(context.Background(), query.Stations{Name: " 渋谷 "})
	require.NoError(t, err)
	require.Len(t, stations, 1)
	assert.Equal(t, "渋谷", stations[0].Name)

	_, err = s.StationsQuery(context.Background(), query.Stations{Name: "渋谷"})
	require.NoError(t, err)
	assert.Equal(t, 1, upstream.stationCalls)

	blank, err := s.StationsQuery(context.Background(), query.Stations{Name: " "})
	require.NoError(t, err)
	assert.NotNil(t, blank)
	assert.Empty(t, blank)
	assert.Equal(t, 1, upstream.stationCalls)
}

func TestTimetableIsCached(t *testing.T) {
	upstream := &fakeUpstream{timetables: map[string]*ctdf.StationTimetable{
		"22715": {StationCode: "22715", Direction: 1, Departures: []ctdf.TimetableDeparture{{Time: "05:04"}}},
	}}
	s := newSource(upstream)

	first, err := s.TimetableQuery(context.Background(), query.Timetable{StationCode: "22715", Direction: 1})
	require.NoError(t, err)
	second, err := s.TimetableQuery(context.Background(), query.Timetable{StationCode: "22715", Direction: 1})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, upstream.timetableCalls)

	_, err = s.TimetableQuery(context.Background(), query.Timetable{StationCode: "22715", Direction: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, upstream.timetableCalls)
}

func TestTimetableNotFound(t *testing.T) {
	s := newSource(&fakeUpstream{})

	_, err := s.Lookup(context.Background(), query.Timetable{StationCode: "1", Direction: 1})
	assert.ErrorIs(t, err, navi.ErrNotFound)
}
