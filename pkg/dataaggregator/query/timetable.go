package query

import (
	"fmt"

	"github.com/linkalls/norikae/pkg/navi"
)

type Timetable struct {
	StationCode string
	RailCode    string
	Direction   int
	Date        string
}

func (t *Timetable) CacheKey() string {
	return fmt.Sprintf("cachedresults/timetable/%s/%s/%d/%s", t.StationCode, t.RailCode, t.Direction, t.Date)
}

func (t *Timetable) ToTimetableRequest() navi.TimetableRequest {
	return navi.TimetableRequest{
		StationCode: t.StationCode,
		RailCode:    t.RailCode,
		Direction:   t.Direction,
		Date:        t.Date,
	}
}
