package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/linkalls/norikae/pkg/config"
	"github.com/linkalls/norikae/pkg/ctdf"
	"github.com/linkalls/norikae/pkg/dataaggregator"
	"github.com/linkalls/norikae/pkg/dataaggregator/source/cachedresults"
	"github.com/linkalls/norikae/pkg/dataaggregator/source/journeyplanner"
	"github.com/linkalls/norikae/pkg/dataaggregator/source/transitinfo"
	planner "github.com/linkalls/norikae/pkg/journeyplanner"
	"github.com/linkalls/norikae/pkg/navi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	requests []navi.SearchRequest
	err      error
}

func (f *fakeSearcher) Search(ctx context.Context, request navi.SearchRequest) (*navi.NaviData, error) {
	f.requests = append(f.requests, request)
	if f.err != nil {
		return nil, f.err
	}

	return &navi.NaviData{
		Feature: []navi.NaviFeature{
			{
				Name: "ルート1",
				RouteInfo: &navi.RouteInfo{
					Property: &navi.RouteProperty{
						TotalTime:         12,
						TransferCount:     0,
						PassStation:       navi.FlexStrings{"22715", "22497", "22454", "22741"},
						DepartureDatetime: "202602251400",
						ArrivalDatetime:   "202602251412",
						IsFast:            true,
					},
				},
			},
		},
	}, nil
}

type fakeUpstream struct{}

func (fakeUpstream) DiainfoCheck(ctx context.Context) ([]ctdf.LineStatus, error) {
	return []ctdf.LineStatus{{RailCode: "1", RailName: "JR山手線", Status: ctdf.LineStatusNormal}}, nil
}

func (fakeUpstream) Assist(ctx context.Context, q string, results int) (*ctdf.Suggestions, error) {
	return &ctdf.Suggestions{
		Stations: []ctdf.SuggestedStation{{ID: "22715", Name: q, Type: "st"}},
		Spots:    []ctdf.SuggestedSpot{},
	}, nil
}

func (fakeUpstream) StationsByName(ctx context.Context, name string) ([]ctdf.StationSearchResult, error) {
	return []ctdf.StationSearchResult{{ID: "22741", Name: name, RailCode: "22608"}}, nil
}

func (fakeUpstream) StationTimetable(ctx context.Context, request navi.TimetableRequest) (*ctdf.StationTimetable, error) {
	if request.StationCode != "22715" {
		return nil, navi.ErrNotFound
	}

	return &ctdf.StationTimetable{
		StationCode: request.StationCode,
		RailCode:    request.RailCode,
		Direction:   request.Direction,
		Departures:  []ctdf.TimetableDeparture{{Time: "05:04", Destination: "大崎"}},
	}, nil
}

type fakeResolver struct{}

func (fakeResolver) Resolve(ctx context.Context, stationIDs []string) map[string]ctdf.StationNameInfo {
	names := map[string]ctdf.StationNameInfo{
		"22715": {Name: "渋谷", LineName: "JR山手線", CompanyName: "JR東日本"},
		"22497": {Name: "原宿", LineName: "JR山手線", CompanyName: "JR東日本"},
		"22454": {Name: "代々木", LineName: "JR山手線", CompanyName: "JR東日本"},
		"22741": {Name: "新宿", LineName: "JR山手線", CompanyName: "JR東日本"},
	}

	resolved := map[string]ctdf.StationNameInfo{}
	for _, stationID := range stationIDs {
		if info, exists := names[stationID]; exists {
			resolved[stationID] = info
		} else {
			resolved[stationID] = ctdf.FallbackStationName(stationID)
		}
	}

	return resolved
}

type apiResponse struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func setupTestApp(t *testing.T, searcher *fakeSearcher) *fiber.App {
	t.Helper()

	cache := &cachedresults.Cache{}
	cache.Setup(time.Minute, 10)

	dataaggregator.GlobalAggregator = dataaggregator.Aggregator{}
	dataaggregator.GlobalAggregator.RegisterSource(journeyplanner.Source{
		Searcher:   searcher,
		Normalizer: &planner.Normalizer{Resolver: fakeResolver{}},
	})
	dataaggregator.GlobalAggregator.RegisterSource(transitinfo.Source{
		Upstream:      fakeUpstream{},
		Resolver:      fakeResolver{},
		CachedResults: cache,
		LineStatusTTL: time.Minute,
		SuggestTTL:    time.Minute,
		TimetableTTL:  time.Minute,
	})

	cfg := config.Default()
	cfg.Resolver.MaxStationCodes = 3

	return NewApp(cfg)
}

func doRequest(t *testing.T, app *fiber.App, request *http.Request) (int, apiResponse) {
	t.Helper()

	response, err := app.Test(request, -1)
	require.NoError(t, err)
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)

	var decoded apiResponse
	require.NoError(t, json.Unmarshal(body, &decoded), string(body))

	return response.StatusCode, decoded
}

func searchRequest(path string, body string) *http.Request {
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	return request
}

func TestSearch(t *testing.T) {
	searcher := &fakeSearcher{}
	app := setupTestApp(t, searcher)

	status, response := doRequest(t, app, searchRequest("/api/search", `{"from":"渋谷","to":"新宿","date":"202602251400","sort":0}`))
	require.Equal(t, http.StatusOK, status)
	require.True(t, response.OK)

	var results ctdf.JourneyPlanResults
	require.NoError(t, json.Unmarshal(response.Data, &results))

	assert.Equal(t, "202602251400", results.SearchDate)
	assert.Equal(t, "渋谷", results.Origin)
	require.Len(t, results.JourneyPlans, 1)

	plan := results.JourneyPlans[0]
	assert.Equal(t, ctdf.BadgeFastest, plan.Badge)
	require.Len(t, plan.Legs, 1)
	assert.Equal(t, "JR山手線", plan.Legs[0].Transit.LineName)
	assert.Len(t, plan.Legs[0].Transit.Stops, 4)

	require.Len(t, searcher.requests, 1)
	assert.Equal(t, "渋谷", searcher.requests[0].From)
	assert.True(t, searcher.requests[0].Detail)
}

func TestSearchBasicDetail(t *testing.T) {
	app := setupTestApp(t, &fakeSearcher{})

	status, response := doRequest(t, app, searchRequest("/api/search?detail=basic", `{"from":"渋谷","to":"新宿"}`))
	require.Equal(t, http.StatusOK, status)

	var results struct {
		JourneyPlans []map[string]any
		SearchDate   string
	}
	require.NoError(t, json.Unmarshal(response.Data, &results))

	assert.NotEmpty(t, results.SearchDate)
	require.Len(t, results.JourneyPlans, 1)
	assert.Contains(t, results.JourneyPlans[0], "TotalOnBoardMinutes")
	assert.NotContains(t, results.JourneyPlans[0], "Legs")
	assert.NotContains(t, results.JourneyPlans[0], "PassStationIDs")
}

func TestSearchValidation(t *testing.T) {
	app := setupTestApp(t, &fakeSearcher{})

	tests := []struct {
		name string
		body string
	}{
		{"not json", `from=渋谷`},
		{"missing destination", `{"from":"渋谷"}`},
		{"short date", `{"from":"渋谷","to":"新宿","date":"20260225"}`},
		{"bad sort", `{"from":"渋谷","to":"新宿","sort":7}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, response := doRequest(t, app, searchRequest("/api/search", tt.body))
			assert.Equal(t, http.StatusBadRequest, status)
			assert.False(t, response.OK)
			assert.NotEmpty(t, response.Error)
		})
	}
}

func TestSearchUpstreamFailure(t *testing.T) {
	app := setupTestApp(t, &fakeSearcher{err: errors.New("connection reset")})

	status, response := doRequest(t, app, searchRequest("/api/search", `{"from":"渋谷","to":"新宿"}`))
	assert.Equal(t, http.StatusBadGateway, status)
	assert.False(t, response.OK)
	assert.Contains(t, response.Error, "connection reset")
}

func TestStationNames(t *testing.T) {
	app := setupTestApp(t, &fakeSearcher{})

	status, response := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/station-names?codes=22715,22741,,22715", nil))
	require.Equal(t, http.StatusOK, status)

	var names map[string]ctdf.StationNameInfo
	require.NoError(t, json.Unmarshal(response.Data, &names))

	assert.Len(t, names, 2)
	assert.Equal(t, "渋谷", names["22715"].Name)
	assert.Equal(t, "新宿", names["22741"].Name)
}

func TestStationNamesLimits(t *testing.T) {
	app := setupTestApp(t, &fakeSearcher{})

	status, response := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/station-names?codes=1,2,3,4", nil))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, response.OK)

	status, _ = doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/station-names", nil))
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestLineStatus(t *testing.T) {
	app := setupTestApp(t, &fakeSearcher{})

	status, response := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/diainfo", nil))
	require.Equal(t, http.StatusOK, status)

	var data struct {
		TrainInfo []ctdf.LineStatus `json:"traininfo"`
	}
	require.NoError(t, json.Unmarshal(response.Data, &data))
	require.Len(t, data.TrainInfo, 1)
	assert.Equal(t, ctdf.LineStatusNormal, data.TrainInfo[0].Status)
}

func TestSuggest(t *testing.T) {
	app := setupTestApp(t, &fakeSearcher{})

	status, response := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/suggest?q=shibuya", nil))
	require.Equal(t, http.StatusOK, status)

	var data struct {
		Stations []ctdf.SuggestedStation `json:"stations"`
		Spots    []ctdf.SuggestedSpot    `json:"spots"`
	}
	require.NoError(t, json.Unmarshal(response.Data, &data))
	require.Len(t, data.Stations, 1)
	assert.Equal(t, "shibuya", data.Stations[0].Name)
	assert.NotNil(t, data.Spots)

	status, _ = doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/suggest?q=shibuya&results=500", nil))
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestStations(t *testing.T) {
	app := setupTestApp(t, &fakeSearcher{})

	status, response := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/stations?q=%E6%96%B0%E5%AE%BF", nil))
	require.Equal(t, http.StatusOK, status)

	var data struct {
		Stations []ctdf.StationSearchResult `json:"stations"`
	}
	require.NoError(t, json.Unmarshal(response.Data, &data))
	require.Len(t, data.Stations, 1)
	assert.Equal(t, "新宿", data.Stations[0].Name)
	assert.Equal(t, "22608", data.Stations[0].RailCode)

	status, response = doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/stations?q=%20", nil))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, response.OK)
}

func TestStationTimetable(t *testing.T) {
	app := setupTestApp(t, &fakeSearcher{})

	status, response := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/timetable/station?stationCode=22715&railCode=22608", nil))
	require.Equal(t, http.StatusOK, status)

	var timetable ctdf.StationTimetable
	require.NoError(t, json.Unmarshal(response.Data, &timetable))
	assert.Equal(t, "22715", timetable.StationCode)
	assert.Equal(t, "22608", timetable.RailCode)
	assert.Equal(t, 1, timetable.Direction)
	require.Len(t, timetable.Departures, 1)
	assert.Equal(t, "大崎", timetable.Departures[0].Destination)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"missing station", "/api/timetable/station?railCode=22608", http.StatusBadRequest},
		{"bad direction", "/api/timetable/station?stationCode=22715&direction=0", http.StatusBadRequest},
		{"bad date", "/api/timetable/station?stationCode=22715&date=2026", http.StatusBadRequest},
		{"unknown station", "/api/timetable/station?stationCode=1", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, response := doRequest(t, app, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, status)
			assert.False(t, response.OK)
		})
	}
}

func TestHealthAndUnknownRoutes(t *testing.T) {
	app := setupTestApp(t, &fakeSearcher{})

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.NotEmpty(t, response.Header.Get("X-Request-ID"))

	status, decoded := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/missing", nil))
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, decoded.OK)
}

func TestRequestIDIsPropagated(t *testing.T) {
	app := setupTestApp(t, &fakeSearcher{})

	request := httptest.NewRequest(http.MethodGet, "/version", nil)
	request.Header.Set("X-Request-ID", "abc-123")

	response, err := app.Test(request, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", response.Header.Get("X-Request-ID"))
}
