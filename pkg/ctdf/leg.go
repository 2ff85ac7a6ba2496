package ctdf

type LegType string

const (
	LegTypeWalk    LegType = "Walk"
	LegTypeTransit LegType = "Transit"
)

// Leg is one continuous walking or transit segment. Exactly one of Walk or Transit is set,
// matching Type.
type Leg struct {
	Type LegType `groups:"basic,detailed"`

	Walk    *WalkLeg    `groups:"basic,detailed" json:",omitempty"`
	Transit *TransitLeg `groups:"basic,detailed" json:",omitempty"`
}

func NewWalkLeg(walk WalkLeg) Leg {
	return Leg{Type: LegTypeWalk, Walk: &walk}
}

func NewTransitLeg(transit TransitLeg) Leg {
	return Leg{Type: LegTypeTransit, Transit: &transit}
}

func (l Leg) IsWalk() bool {
	return l.Type == LegTypeWalk
}

type WalkRole string

const (
	// WalkRoleEntry is walking before the first transit leg
	WalkRoleEntry WalkRole = "Entry"
	// WalkRoleExit is walking after the last transit leg
	WalkRoleExit WalkRole = "Exit"
	// WalkRoleTransfer is walking between two transit legs
	WalkRoleTransfer WalkRole = "Transfer"
)

type WalkLeg struct {
	Role WalkRole `groups:"basic,detailed"`

	FromLabel string `groups:"basic,detailed" json:",omitempty"`
	ToLabel   string `groups:"basic,detailed" json:",omitempty"`
	Minutes   *int   `groups:"basic,detailed" json:",omitempty"`

	// ExitLabel is the station exit or gate name the upstream puts in the line name of walking legs
	ExitLabel string `groups:"basic,detailed" json:",omitempty"`

	DepartureTime string `groups:"detailed" json:",omitempty"`
	ArrivalTime   string `groups:"detailed" json:",omitempty"`
}

type TransitLeg struct {
	LineName    string `groups:"basic,detailed"`
	CompanyName string `groups:"basic,detailed" json:",omitempty"`
	Colour      string `groups:"basic,detailed" json:",omitempty"`
	IsBus       bool   `groups:"basic,detailed" json:",omitempty"`

	// TransferBefore marks a transfer at the first stop of this leg from the previous transit leg
	TransferBefore bool `groups:"basic,detailed" json:",omitempty"`

	TrainKind   string `groups:"detailed" json:",omitempty"`
	Destination string `groups:"detailed" json:",omitempty"`
	TrainNumber string `groups:"detailed" json:",omitempty"`
	CarCount    string `groups:"detailed" json:",omitempty"`

	DeparturePlatform string `groups:"detailed" json:",omitempty"`
	ArrivalPlatform   string `groups:"detailed" json:",omitempty"`

	DepartureTime string `groups:"basic,detailed" json:",omitempty"`
	ArrivalTime   string `groups:"basic,detailed" json:",omitempty"`

	// Estimated is set when stop times were interpolated rather than reported by the upstream
	Estimated bool `groups:"detailed" json:",omitempty"`

	Stops []Stop `groups:"detailed"`
}
