package routes

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/linkalls/norikae/pkg/ctdf"
	"github.com/linkalls/norikae/pkg/dataaggregator"
	"github.com/linkalls/norikae/pkg/dataaggregator/query"
	"github.com/linkalls/norikae/pkg/util"
)

func StationNamesRouter(router fiber.Router, maxStationCodes int) {
	router.Get("/", func(c *fiber.Ctx) error {
		return getStationNames(c, maxStationCodes)
	})
}

func getStationNames(c *fiber.Ctx, maxStationCodes int) error {
	stationIDs := util.RemoveDuplicateStrings(util.SplitList(c.Query("codes")), nil)

	if len(stationIDs) == 0 {
		return sendError(c, fiber.StatusBadRequest, "Parameter codes should list at least one station code")
	}
	if len(stationIDs) > maxStationCodes {
		return sendError(c, fiber.StatusBadRequest, fmt.Sprintf("Parameter codes is limited to %d station codes", maxStationCodes))
	}

	names, err := dataaggregator.Lookup[map[string]ctdf.StationNameInfo](c.UserContext(), query.StationNames{
		StationIDs: stationIDs,
	})
	if err != nil {
		return sendError(c, fiber.StatusBadGateway, err.Error())
	}

	return sendData(c, names)
}
