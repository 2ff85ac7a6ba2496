package navi

// ResultInfo is the envelope header shared by the navi and poi endpoints
type ResultInfo struct {
	Count       FlexInt    `json:"Count"`
	Total       FlexInt    `json:"Total"`
	Start       FlexInt    `json:"Start"`
	Status      FlexInt    `json:"Status"`
	Description FlexString `json:"Description"`
}

// NaviData is the raw /v3/naviSearch response
type NaviData struct {
	ResultInfo ResultInfo    `json:"ResultInfo"`
	Feature    []NaviFeature `json:"Feature"`
}

// NaviFeature is one raw route candidate
type NaviFeature struct {
	Id        FlexString `json:"Id"`
	Name      FlexString `json:"Name"`
	RouteInfo *RouteInfo `json:"RouteInfo"`
}

type RouteInfo struct {
	Property *RouteProperty `json:"Property"`
	Edge     []Edge         `json:"Edge"`
}

type RouteProperty struct {
	TotalTime     FlexInt `json:"TotalTime"`
	TimeOther     FlexInt `json:"TimeOther"`
	TimeWalk      FlexInt `json:"TimeWalk"`
	TransferCount FlexInt `json:"TransferCount"`

	Fare *RouteFare `json:"Fare"`

	PassStation FlexStrings `json:"PassStation"`
	Distance    FlexFloat   `json:"Distance"`
	Co2         FlexFloat   `json:"Co2"`

	DepartureDatetime FlexString `json:"DepartureDatetime"`
	ArrivalDatetime   FlexString `json:"ArrivalDatetime"`

	IsFast  FlexBool `json:"IsFast"`
	IsEasy  FlexBool `json:"IsEasy"`
	IsCheap FlexBool `json:"IsCheap"`

	Section []RawSection `json:"Section"`
}

type RouteFare struct {
	Total  *FlexInt `json:"Total"`
	Teiki1 *FlexInt `json:"Teiki1"`
	Teiki3 *FlexInt `json:"Teiki3"`
	Teiki6 *FlexInt `json:"Teiki6"`
}

// Edge is one precise leg, only present when the search asked for detail=full
type Edge struct {
	RailName  FlexString `json:"RailName"`
	Color     FlexString `json:"Color"`
	TrainKind FlexString `json:"TrainKind"`
	TrainNo   FlexString `json:"TrainNo"`
	NumOfCar  FlexString `json:"NumOfCar"`

	DepartureTrackNumber FlexString `json:"DepartureTrackNumber"`
	ArrivalTrackNumber   FlexString `json:"ArrivalTrackNumber"`
	Destination          FlexString `json:"Destination"`

	DepartureDatetime FlexString `json:"DepartureDatetime"`
	ArrivalDatetime   FlexString `json:"ArrivalDatetime"`

	// Time is the leg duration in minutes
	Time *FlexInt `json:"Time"`

	Station []EdgeStation `json:"Station"`
}

type EdgeStation struct {
	Name          FlexString `json:"Name"`
	Code          FlexString `json:"Code"`
	ArrivalTime   FlexString `json:"ArrivalTime"`
	DepartureTime FlexString `json:"DepartureTime"`
}

// RawSection is the legacy section format
type RawSection struct {
	Type     *FlexInt         `json:"Type"`
	Name     FlexString       `json:"Name"`
	Time     FlexInt          `json:"Time"`
	Distance FlexFloat        `json:"Distance"`
	From     *RawSectionPoint `json:"From"`
	To       *RawSectionPoint `json:"To"`
	Line     *RawSectionLine  `json:"Line"`
}

type RawSectionPoint struct {
	Name FlexString `json:"Name"`
	Code FlexString `json:"Code"`
	Time FlexString `json:"Time"`
}

type RawSectionLine struct {
	Name      FlexString `json:"Name"`
	Color     FlexString `json:"Color"`
	BusName   FlexString `json:"BusName"`
	TrainType FlexString `json:"TrainType"`
}

// PoiData is the raw /v1/poiSearch response
type PoiData struct {
	ResultInfo ResultInfo   `json:"ResultInfo"`
	Feature    []PoiFeature `json:"Feature"`
}

type PoiFeature struct {
	Id   FlexString `json:"Id"`
	Gid  FlexString `json:"Gid"`
	Name FlexString `json:"Name"`
	Yomi FlexString `json:"Yomi"`

	TransitSearchInfo *PoiTransitSearchInfo `json:"TransitSearchInfo"`
}

type PoiTransitSearchInfo struct {
	Detail *PoiStationDetail `json:"Detail"`
}

type PoiStationDetail struct {
	StationID   FlexString      `json:"stationId"`
	RailSubName FlexString      `json:"railSubName"`
	CompanyName FlexString      `json:"companyName"`
	PlatformNo  FlexString      `json:"platformNo"`
	StationInfo *PoiStationInfo `json:"StationInfo"`
}

type PoiStationInfo struct {
	DiaInfo  []PoiDiaInfo  `json:"DiaInfo"`
	RailInfo []PoiRailInfo `json:"RailInfo"`
}

type PoiDiaInfo struct {
	RailName FlexString `json:"railName"`
	RailCode FlexString `json:"railCode"`
}

type PoiRailInfo struct {
	Name  FlexString `json:"name"`
	Color FlexString `json:"color"`
}

// DiainfoData is the raw /v4/diainfo/check response
type DiainfoData struct {
	Detail []DiainfoDetail `json:"detail"`
}

type DiainfoDetail struct {
	RailCode        FlexString      `json:"railCode"`
	RailName        FlexString      `json:"railName"`
	CompanyName     FlexString      `json:"companyName"`
	RailwayTypeName FlexString      `json:"railwayTypeName"`
	RailAreaName    FlexString      `json:"railAreaName"`
	Diainfo         *DiainfoMessage `json:"diainfo"`
}

type DiainfoMessage struct {
	ServiceCondition FlexString `json:"serviceCondition"`
	Message          FlexString `json:"message"`
	UpdateDate       FlexString `json:"updateDate"`
}

// AssistData is the raw /v1/assist response
type AssistData struct {
	ResultInfo ResultInfo      `json:"ResultInfo"`
	Feature    []AssistFeature `json:"Feature"`
}

type AssistFeature struct {
	Id   FlexString `json:"Id"`
	Gid  FlexString `json:"Gid"`
	Name FlexString `json:"Name"`
	Yomi FlexString `json:"Yomi"`

	// Code is the station or bus stop code, empty for landmarks and addresses
	Code FlexString `json:"Code"`

	Geometry *AssistGeometry `json:"Geometry"`
	Property *AssistProperty `json:"Property"`
}

type AssistGeometry struct {
	// Coordinates is "longitude,latitude"
	Coordinates FlexString `json:"Coordinates"`
}

type AssistProperty struct {
	Address FlexString `json:"Address"`
	// StationType is st, bu or lm
	StationType FlexString `json:"StationType"`
}

// TimetableStationData is the raw /v2/timetable/station response
type TimetableStationData struct {
	ResultInfo ResultInfo     `json:"ResultInfo"`
	Timetable  *TimetableData `json:"Timetable"`
}

type TimetableData struct {
	Master    *TimetableMaster `json:"Master"`
	TimeTable []TimetableHour  `json:"TimeTable"`
}

type TimetableMaster struct {
	Destination []TimetableMasterEntry `json:"destination"`
	Kind        []TimetableMasterEntry `json:"kind"`
}

type TimetableMasterEntry struct {
	Id   FlexString `json:"id"`
	Name FlexString `json:"name"`
	Info FlexString `json:"info"`
}

type TimetableHour struct {
	Hour       FlexInt           `json:"hour"`
	MinuteItem []TimetableMinute `json:"MinuteItem"`
}

// TimetableMinute references the master destination and kind lists
type TimetableMinute struct {
	Minute       FlexInt  `json:"minute"`
	Destination  *FlexInt `json:"destination"`
	Kind         *FlexInt `json:"kind"`
	FirstStation FlexBool `json:"firstStation"`
	ExtraTrain   FlexBool `json:"extraTrain"`
}
