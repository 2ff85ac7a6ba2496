package routes

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/linkalls/norikae/pkg/ctdf"
	"github.com/linkalls/norikae/pkg/dataaggregator"
	"github.com/linkalls/norikae/pkg/dataaggregator/query"
)

func StationsRouter(router fiber.Router) {
	router.Get("/", searchStations)
}

func searchStations(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.Query("q"))
	if name == "" {
		return sendError(c, fiber.StatusBadRequest, "Parameter q should be a station name")
	}

	stations, err := dataaggregator.Lookup[[]ctdf.StationSearchResult](c.UserContext(), query.Stations{
		Name: name,
	})
	if err != nil {
		return sendError(c, fiber.StatusBadGateway, err.Error())
	}

	return sendData(c, fiber.Map{
		"stations": stations,
	})
}
