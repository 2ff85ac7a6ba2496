package navi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/linkalls/norikae/pkg/ctdf"
)

type TimetableRequest struct {
	StationCode string
	RailCode    string
	Direction   int

	// Date is YYYYMMDD, empty for today
	Date string
}

// StationTimetable returns the departures of one line and direction at a station
func (c *Client) StationTimetable(ctx context.Context, request TimetableRequest) (*ctdf.StationTimetable, error) {
	params := url.Values{}
	params.Set("stationCode", request.StationCode)
	params.Set("railCode", request.RailCode)
	params.Set("direction", strconv.Itoa(request.Direction))
	params.Set("date", request.Date)

	var data TimetableStationData
	if err := c.get(ctx, c.config.TimetableURL, "/v2/timetable/station", params, &data); err != nil {
		return nil, err
	}

	if data.Timetable == nil {
		return nil, ErrNotFound
	}

	timetable := data.Timetable.StationTimetable()
	timetable.StationCode = request.StationCode
	timetable.RailCode = request.RailCode
	timetable.Direction = request.Direction
	timetable.Date = request.Date

	return timetable, nil
}

// StationTimetable flattens the hour and minute grid into departures in upstream order
func (d *TimetableData) StationTimetable() *ctdf.StationTimetable {
	timetable := &ctdf.StationTimetable{
		Departures: []ctdf.TimetableDeparture{},
	}

	var master TimetableMaster
	if d.Master != nil {
		master = *d.Master
	}

	for _, hour := range d.TimeTable {
		for _, minute := range hour.MinuteItem {
			timetable.Departures = append(timetable.Departures, ctdf.TimetableDeparture{
				Time:        fmt.Sprintf("%02d:%02d", hour.Hour.Int(), minute.Minute.Int()),
				Destination: masterName(master.Destination, minute.Destination),
				Kind:        masterName(master.Kind, minute.Kind),
				Originates:  bool(minute.FirstStation),
				Extra:       bool(minute.ExtraTrain),
			})
		}
	}

	return timetable
}

// masterName looks an entry up by id, then by position when no id matches
func masterName(entries []TimetableMasterEntry, reference *FlexInt) string {
	if reference == nil {
		return ""
	}

	id := strconv.Itoa(reference.Int())
	for _, entry := range entries {
		if strings.TrimSpace(entry.Id.String()) == id {
			return entry.Name.String()
		}
	}

	if index := reference.Int(); index >= 0 && index < len(entries) {
		return entries[index].Name.String()
	}

	return ""
}
