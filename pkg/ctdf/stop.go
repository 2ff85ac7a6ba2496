package ctdf

type Stop struct {
	Name string `groups:"basic,detailed"`
	Code string `groups:"basic,detailed" json:",omitempty"`

	ArrivalTime   string `groups:"basic,detailed" json:",omitempty"`
	DepartureTime string `groups:"basic,detailed" json:",omitempty"`
}

// StationNameInfo is the resolved identity of a single upstream station identifier
type StationNameInfo struct {
	Name           string
	LineName       string `json:",omitempty"`
	CompanyName    string `json:",omitempty"`
	Yomi           string `json:",omitempty"`
	PlatformNumber string `json:",omitempty"`
}

// FallbackStationName is used for identifiers whose lookup failed
func FallbackStationName(identifier string) StationNameInfo {
	return StationNameInfo{Name: identifier}
}

// StationSearchResult is a station matched by name
type StationSearchResult struct {
	ID          string
	Name        string
	Yomi        string `json:",omitempty"`
	LineName    string `json:",omitempty"`
	RailCode    string `json:",omitempty"`
	CompanyName string `json:",omitempty"`
}
