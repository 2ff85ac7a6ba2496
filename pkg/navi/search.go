package navi

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"time"
)

var ErrMissingEndpoint = errors.New("search needs an origin and a destination")

// TimeType is the meaning of the search date
type TimeType int

const (
	TimeTypeDeparture  TimeType = 1
	TimeTypeArrival    TimeType = 2
	TimeTypeFirstTrain TimeType = 3
	TimeTypeLastTrain  TimeType = 4
	TimeTypeNow        TimeType = 5
)

type SortOrder int

const (
	SortFastest         SortOrder = 0
	SortFewestTransfers SortOrder = 1
	SortCheapest        SortOrder = 2
)

type SearchRequest struct {
	From string
	To   string
	Via  string

	FromCode string
	ToCode   string

	// Date is YYYYMMDDHHmm in Tokyo wall clock time, the current time when empty
	Date string
	Type TimeType
	Sort SortOrder

	// Detail asks for the precise per leg Edge data
	Detail bool
}

// Tokyo is the wall clock every upstream time is expressed in
var Tokyo = loadTokyo()

func loadTokyo() *time.Location {
	location, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		return time.FixedZone("JST", 9*60*60)
	}

	return location
}

// SearchDate returns the request date, defaulting to now
func (r SearchRequest) SearchDate(now time.Time) string {
	if r.Date != "" {
		return r.Date
	}

	return now.In(Tokyo).Format("200601021504")
}

func (r SearchRequest) params(now time.Time) url.Values {
	params := url.Values{}
	params.Set("from", r.From)
	params.Set("to", r.To)
	params.Set("via", r.Via)
	params.Set("fcode", r.FromCode)
	params.Set("tcode", r.ToCode)
	params.Set("date", r.SearchDate(now))

	timeType := r.Type
	if timeType == 0 {
		timeType = TimeTypeDeparture
	}
	params.Set("type", strconv.Itoa(int(timeType)))
	params.Set("sort", strconv.Itoa(int(r.Sort)))

	if r.Detail {
		params.Set("detail", "full")
	}

	return params
}

// Search runs a journey planner search and returns the raw route features
func (c *Client) Search(ctx context.Context, request SearchRequest) (*NaviData, error) {
	if (request.From == "" && request.FromCode == "") || (request.To == "" && request.ToCode == "") {
		return nil, ErrMissingEndpoint
	}

	var data NaviData
	if err := c.get(ctx, c.config.NaviURL, "/v3/naviSearch", request.params(time.Now()), &data); err != nil {
		return nil, err
	}

	return &data, nil
}
