package ctdf

// StationTimetable is the departure board of one line and direction at a station
type StationTimetable struct {
	StationCode string
	RailCode    string `json:",omitempty"`
	Direction   int
	Date        string `json:",omitempty"`

	Departures []TimetableDeparture
}

type TimetableDeparture struct {
	// Time is HH:mm
	Time        string
	Destination string `json:",omitempty"`
	Kind        string `json:",omitempty"`

	// Originates marks trains that start at this station
	Originates bool `json:",omitempty"`
	Extra      bool `json:",omitempty"`
}
