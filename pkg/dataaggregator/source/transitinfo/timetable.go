package transitinfo

import (
	"context"

	"github.com/linkalls/norikae/pkg/ctdf"
	"github.com/linkalls/norikae/pkg/dataaggregator/query"
)

func (s Source) TimetableQuery(ctx context.Context, q query.Timetable) (*ctdf.StationTimetable, error) {
	var timetable *ctdf.StationTimetable
	if s.getCached(ctx, q.CacheKey(), &timetable) && timetable != nil {
		return timetable, nil
	}

	timetable, err := s.Upstream.StationTimetable(ctx, q.ToTimetableRequest())
	if err != nil {
		return nil, err
	}

	s.setCached(ctx, q.CacheKey(), timetable, s.TimetableTTL)

	return timetable, nil
}
