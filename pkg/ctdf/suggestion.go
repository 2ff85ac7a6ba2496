package ctdf

type Suggestions struct {
	Stations []SuggestedStation
	Spots    []SuggestedSpot
}

type SuggestedStation struct {
	ID   string
	Name string
	Yomi string `json:",omitempty"`

	Latitude  string `json:",omitempty"`
	Longitude string `json:",omitempty"`
	Address   string `json:",omitempty"`

	// Type is st for a station, bu for a bus stop and lm for a landmark
	Type string `json:",omitempty"`
}

type SuggestedSpot struct {
	ID      string
	Name    string
	Address string `json:",omitempty"`
}
