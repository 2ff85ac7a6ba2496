package ctdf

// Section is the legacy per-section route format some upstream responses carry instead of Edge data
type Section struct {
	Type     *int    `groups:"detailed" json:",omitempty"`
	Name     string  `groups:"detailed" json:",omitempty"`
	Minutes  int     `groups:"detailed" json:",omitempty"`
	Distance float64 `groups:"detailed" json:",omitempty"`

	From *SectionPoint `groups:"detailed" json:",omitempty"`
	To   *SectionPoint `groups:"detailed" json:",omitempty"`
	Line *SectionLine  `groups:"detailed" json:",omitempty"`
}

type SectionPoint struct {
	Name string `groups:"detailed" json:",omitempty"`
	Code string `groups:"detailed" json:",omitempty"`
	Time string `groups:"detailed" json:",omitempty"`
}

type SectionLine struct {
	Name      string `groups:"detailed" json:",omitempty"`
	Colour    string `groups:"detailed" json:",omitempty"`
	BusName   string `groups:"detailed" json:",omitempty"`
	TrainType string `groups:"detailed" json:",omitempty"`
}

// Section types 0 and 3 are walking (3 being a walking transfer). An absent type is not a walk.
func (s Section) IsWalk() bool {
	if s.Type == nil {
		return false
	}

	return *s.Type == 0 || *s.Type == 3
}
