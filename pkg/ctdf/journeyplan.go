package ctdf

type JourneyPlanResults struct {
	JourneyPlans []*JourneyPlan `groups:"basic"`

	SearchDate  string `groups:"basic"`
	Origin      string `groups:"basic"`
	Destination string `groups:"basic"`
}

// JourneyPlan is a single itinerary option returned by the upstream planner after normalisation.
// Legs and RawSections are mutually exclusive: Legs holds either the precise Edge based legs or the
// reconstruction from the pass-station list, RawSections holds the legacy section format.
type JourneyPlan struct {
	Name string `groups:"basic" json:",omitempty"`

	TotalOnBoardMinutes     int `groups:"basic"`
	TransferWaitMinutes     int `groups:"basic"`
	TotalWalkMinutes        int `groups:"basic"`
	UnattributedWalkMinutes int `groups:"detailed" json:",omitempty"`
	TransferCount           int `groups:"basic"`

	Fare Fare `groups:"basic"`

	PassStationIDs []string `groups:"detailed"`

	DistanceKm float64 `groups:"basic" json:",omitempty"`
	CO2Grams   float64 `groups:"basic" json:",omitempty"`

	Badge Badge `groups:"basic" json:",omitempty"`

	DepartureTime     string `groups:"basic" json:",omitempty"`
	ArrivalTime       string `groups:"basic" json:",omitempty"`
	DepartureDateTime string `groups:"basic" json:",omitempty"`
	ArrivalDateTime   string `groups:"basic" json:",omitempty"`

	Legs        []Leg     `groups:"detailed" json:",omitempty"`
	RawSections []Section `groups:"detailed" json:",omitempty"`
}

func (j *JourneyPlan) HasLegs() bool {
	return len(j.Legs) > 0
}

// TransitLegs returns the indices of every transit leg in travel order
func (j *JourneyPlan) TransitLegs() []int {
	var indices []int
	for i, leg := range j.Legs {
		if leg.Type == LegTypeTransit {
			indices = append(indices, i)
		}
	}

	return indices
}

type Fare struct {
	Total  *int `groups:"basic" json:",omitempty"`
	Teiki1 *int `groups:"detailed" json:",omitempty"`
	Teiki3 *int `groups:"detailed" json:",omitempty"`
	Teiki6 *int `groups:"detailed" json:",omitempty"`
}

type Badge string

const (
	BadgeNone            Badge = ""
	BadgeFastest         Badge = "fastest"
	BadgeFewestTransfers Badge = "fewestTransfers"
	BadgeCheapest        Badge = "cheapest"
)
