package navi

import (
	"context"
	"strings"

	"github.com/linkalls/norikae/pkg/ctdf"
)

// DiainfoCheck returns the current operation status of every line the upstream reports on
func (c *Client) DiainfoCheck(ctx context.Context) ([]ctdf.LineStatus, error) {
	var data DiainfoData
	if err := c.get(ctx, c.config.DiainfoURL, "/v4/diainfo/check?big=0", nil, &data); err != nil {
		return nil, err
	}

	statuses := make([]ctdf.LineStatus, 0, len(data.Detail))
	for _, detail := range data.Detail {
		statuses = append(statuses, detail.LineStatus())
	}

	return statuses, nil
}

func (d DiainfoDetail) LineStatus() ctdf.LineStatus {
	status := ctdf.LineStatus{
		RailCode:    d.RailCode.String(),
		RailName:    strings.TrimSpace(d.RailName.String()),
		CompanyName: d.CompanyName.String(),
		AreaName:    d.RailAreaName.String(),
		Status:      ctdf.LineStatusNormal,
	}
	status.AreaLevel = status.RailName == ""

	if d.Diainfo != nil {
		status.Status = lineStatusType(d.Diainfo.ServiceCondition.String())
		status.Message = strings.TrimSpace(d.Diainfo.Message.String())
		status.UpdateDate = d.Diainfo.UpdateDate.String()
	}

	return status
}

func lineStatusType(serviceCondition string) ctdf.LineStatusType {
	switch strings.TrimSpace(serviceCondition) {
	case "", "0":
		return ctdf.LineStatusNormal
	case "1":
		return ctdf.LineStatusDelay
	case "2":
		return ctdf.LineStatusStopped
	default:
		return ctdf.LineStatusOther
	}
}
