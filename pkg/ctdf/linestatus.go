package ctdf

// LineStatus is a single entry of the operation status (diainfo) feed
type LineStatus struct {
	RailCode    string
	RailName    string
	CompanyName string `json:",omitempty"`
	AreaName    string `json:",omitempty"`

	// AreaLevel marks a wide area notice that is not tied to one line
	AreaLevel bool `json:",omitempty"`

	Status     LineStatusType
	Message    string `json:",omitempty"`
	UpdateDate string `json:",omitempty"`
}

type LineStatusType string

const (
	LineStatusNormal  LineStatusType = "NORMAL"
	LineStatusDelay   LineStatusType = "DELAY"
	LineStatusStopped LineStatusType = "STOP"
	LineStatusOther   LineStatusType = "OTHER"
)
