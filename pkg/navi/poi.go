package navi

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/linkalls/norikae/pkg/ctdf"
)

const stationFilterKey = "64eb1163b0f13dacfd3a5cb96b333a53"

var ErrMalformedStation = errors.New("station record has no name")

// StationByID returns the best poi match for a station identifier
func (c *Client) StationByID(ctx context.Context, stationID string) (*PoiFeature, error) {
	params := url.Values{}
	params.Set("x_binary_filter", fmt.Sprintf("X_transit_BinaryFilterCustom1:%s AND X_transit_BinaryFilterCustom2:%s", stationFilterKey, stationID))
	params.Set(".src", "transit_app_stationdetail")
	params.Set("results", "1")
	params.Set("detail", "navi")

	var data PoiData
	if err := c.get(ctx, c.config.PoiURL, "/v1/poiSearch", params, &data); err != nil {
		return nil, err
	}

	if len(data.Feature) == 0 {
		return nil, ErrNotFound
	}

	return &data.Feature[0], nil
}

// StationsByName returns the stations whose name matches exactly, best scored first
func (c *Client) StationsByName(ctx context.Context, name string) ([]ctdf.StationSearchResult, error) {
	params := url.Values{}
	params.Set("sort", "-X_transit_StaticScoreCustom1")
	params.Set("x_binary_filter", fmt.Sprintf("X_transit_BinaryFilterCustom1:%s AND X_transit_BinaryFilterCustom3:%q", stationFilterKey, name))
	params.Set(".src", "transit_app_stationdetail")
	params.Set("results", "1")
	params.Set("detail", "navi")

	var data PoiData
	if err := c.get(ctx, c.config.PoiURL, "/v1/poiSearch", params, &data); err != nil {
		return nil, err
	}

	results := []ctdf.StationSearchResult{}
	for i := range data.Feature {
		if result, ok := data.Feature[i].StationSearchResult(); ok {
			results = append(results, result)
		}
	}

	return results, nil
}

// StationName resolves a station identifier to its display name and line metadata
func (c *Client) StationName(ctx context.Context, stationID string) (ctdf.StationNameInfo, error) {
	feature, err := c.StationByID(ctx, stationID)
	if err != nil {
		return ctdf.StationNameInfo{}, err
	}

	return feature.StationNameInfo()
}

func (f *PoiFeature) StationNameInfo() (ctdf.StationNameInfo, error) {
	name := strings.TrimSpace(f.Name.String())
	if name == "" {
		return ctdf.StationNameInfo{}, ErrMalformedStation
	}

	info := ctdf.StationNameInfo{
		Name: name,
		Yomi: strings.TrimSpace(f.Yomi.String()),
	}

	if f.TransitSearchInfo == nil || f.TransitSearchInfo.Detail == nil {
		return info, nil
	}

	detail := f.TransitSearchInfo.Detail
	info.CompanyName = strings.TrimSpace(detail.CompanyName.String())
	info.PlatformNumber = strings.TrimSpace(detail.PlatformNo.String())
	info.LineName = strings.TrimSpace(detail.RailSubName.String())

	if detail.StationInfo != nil {
		if len(detail.StationInfo.DiaInfo) > 0 && detail.StationInfo.DiaInfo[0].RailName != "" {
			info.LineName = detail.StationInfo.DiaInfo[0].RailName.String()
		}
		if len(detail.StationInfo.RailInfo) > 0 && detail.StationInfo.RailInfo[0].Name != "" {
			info.LineName = detail.StationInfo.RailInfo[0].Name.String()
		}
	}

	return info, nil
}

// StationSearchResult is false for features that carry no name or station id
func (f *PoiFeature) StationSearchResult() (ctdf.StationSearchResult, bool) {
	info, err := f.StationNameInfo()
	if err != nil || f.TransitSearchInfo == nil || f.TransitSearchInfo.Detail == nil {
		return ctdf.StationSearchResult{}, false
	}

	detail := f.TransitSearchInfo.Detail
	stationID := strings.TrimSpace(detail.StationID.String())
	if stationID == "" {
		return ctdf.StationSearchResult{}, false
	}

	result := ctdf.StationSearchResult{
		ID:          stationID,
		Name:        info.Name,
		Yomi:        info.Yomi,
		LineName:    info.LineName,
		CompanyName: info.CompanyName,
	}

	if detail.StationInfo != nil && len(detail.StationInfo.DiaInfo) > 0 {
		result.RailCode = detail.StationInfo.DiaInfo[0].RailCode.String()
	}

	return result, true
}
