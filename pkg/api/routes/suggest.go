package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/linkalls/norikae/pkg/ctdf"
	"github.com/linkalls/norikae/pkg/dataaggregator"
	"github.com/linkalls/norikae/pkg/dataaggregator/query"
)

func SuggestRouter(router fiber.Router) {
	router.Get("/", getSuggestions)
}

func getSuggestions(c *fiber.Ctx) error {
	results := c.QueryInt("results", 10)
	if results <= 0 || results > 50 {
		return sendError(c, fiber.StatusBadRequest, "Parameter results should be between 1 and 50")
	}

	suggestions, err := dataaggregator.Lookup[*ctdf.Suggestions](c.UserContext(), query.Suggest{
		Query:   c.Query("q"),
		Results: results,
	})
	if err != nil {
		return sendError(c, fiber.StatusBadGateway, err.Error())
	}

	return sendData(c, fiber.Map{
		"stations": suggestions.Stations,
		"spots":    suggestions.Spots,
	})
}
