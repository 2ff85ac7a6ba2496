package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/linkalls/norikae/pkg/ctdf"
	"github.com/linkalls/norikae/pkg/dataaggregator"
	"github.com/linkalls/norikae/pkg/dataaggregator/query"
	"github.com/rs/zerolog/log"
)

func LineStatusRouter(router fiber.Router) {
	router.Get("/", getLineStatus)
}

func getLineStatus(c *fiber.Ctx) error {
	lineStatuses, err := dataaggregator.Lookup[[]ctdf.LineStatus](c.UserContext(), query.LineStatus{})
	if err != nil {
		log.Error().Err(err).Msg("Line status lookup failed")
		return sendError(c, fiber.StatusBadGateway, err.Error())
	}

	if lineStatuses == nil {
		lineStatuses = []ctdf.LineStatus{}
	}

	return sendData(c, fiber.Map{
		"traininfo": lineStatuses,
	})
}
