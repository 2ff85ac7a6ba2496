package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"github.com/linkalls/norikae/pkg/ctdf"
	"github.com/linkalls/norikae/pkg/dataaggregator"
	"github.com/linkalls/norikae/pkg/dataaggregator/query"
	"github.com/linkalls/norikae/pkg/navi"
)

type timetableRequest struct {
	StationCode string `validate:"required,numeric"`
	RailCode    string `validate:"omitempty,numeric"`
	Direction   int    `validate:"gte=1,lte=9"`
	Date        string `validate:"omitempty,len=8,numeric"`
}

func TimetableRouter(router fiber.Router) {
	router.Get("/station", getStationTimetable)
}

func getStationTimetable(c *fiber.Ctx) error {
	request := timetableRequest{
		StationCode: c.Query("stationCode"),
		RailCode:    c.Query("railCode"),
		Direction:   c.QueryInt("direction", 1),
		Date:        c.Query("date"),
	}
	if err := validate.Struct(request); err != nil {
		return sendError(c, fiber.StatusBadRequest, err.Error())
	}

	var q query.Timetable
	if err := copier.Copy(&q, &request); err != nil {
		return sendError(c, fiber.StatusInternalServerError, err.Error())
	}

	timetable, err := dataaggregator.Lookup[*ctdf.StationTimetable](c.UserContext(), q)
	if errors.Is(err, navi.ErrNotFound) {
		return sendError(c, fiber.StatusNotFound, "No timetable for this station and direction")
	} else if err != nil {
		return sendError(c, fiber.StatusBadGateway, err.Error())
	}

	return sendData(c, timetable)
}
