package query

import (
	"testing"

	"github.com/linkalls/norikae/pkg/navi"
	"github.com/stretchr/testify/assert"
)

func TestJourneyPlanToSearchRequest(t *testing.T) {
	q := JourneyPlan{
		From:     "渋谷",
		To:       "新宿",
		FromCode: "22715",
		Date:     "202602251425",
		Type:     2,
		Sort:     1,
	}

	request := q.ToSearchRequest()

	assert.Equal(t, "渋谷", request.From)
	assert.Equal(t, "新宿", request.To)
	assert.Equal(t, "22715", request.FromCode)
	assert.Equal(t, navi.TimeTypeArrival, request.Type)
	assert.Equal(t, navi.SortFewestTransfers, request.Sort)
	assert.True(t, request.Detail)

	q.Basic = true
	assert.False(t, q.ToSearchRequest().Detail)
}

func TestSuggestCacheKey(t *testing.T) {
	a := Suggest{Query: " Shibuya ", Results: 10}
	b := Suggest{Query: "shibuya", Results: 10}
	c := Suggest{Query: "shibuya", Results: 5}

	assert.Equal(t, a.CacheKey(), b.CacheKey())
	assert.NotEqual(t, b.CacheKey(), c.CacheKey())
}

func TestTimetableQuery(t *testing.T) {
	q := Timetable{StationCode: "22715", RailCode: "22608", Direction: 2, Date: "20260225"}

	assert.Equal(t, navi.TimetableRequest{
		StationCode: "22715",
		RailCode:    "22608",
		Direction:   2,
		Date:        "20260225",
	}, q.ToTimetableRequest())

	other := q
	other.Direction = 1
	assert.NotEqual(t, q.CacheKey(), other.CacheKey())
}

func TestStationsCacheKey(t *testing.T) {
	a := Stations{Name: " 渋谷 "}
	b := Stations{Name: "渋谷"}

	assert.Equal(t, a.CacheKey(), b.CacheKey())
}
