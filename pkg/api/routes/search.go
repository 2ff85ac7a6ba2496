package routes

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"github.com/liip/sheriff"
	"github.com/linkalls/norikae/pkg/ctdf"
	"github.com/linkalls/norikae/pkg/dataaggregator"
	"github.com/linkalls/norikae/pkg/dataaggregator/query"
	"github.com/linkalls/norikae/pkg/elastic_client"
	"github.com/linkalls/norikae/pkg/navi"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

type searchRequest struct {
	From     string `json:"from" validate:"required_without=FromCode"`
	To       string `json:"to" validate:"required_without=ToCode"`
	Via      string `json:"via"`
	FromCode string `json:"fcode"`
	ToCode   string `json:"tcode"`

	Date string `json:"date" validate:"omitempty,len=12,numeric"`
	Type int    `json:"type" validate:"gte=0,lte=5"`
	Sort int    `json:"sort" validate:"gte=0,lte=2"`
}

type SearchElasticEvent struct {
	Timestamp time.Time

	From string
	To   string
	Via  string
	Type int
	Sort int

	SearchDate string
	Routes     int
	Success    bool
}

func SearchRouter(router fiber.Router, eventIndex string) {
	router.Post("/", func(c *fiber.Ctx) error {
		return searchJourneyPlans(c, eventIndex)
	})
}

func searchJourneyPlans(c *fiber.Ctx, eventIndex string) error {
	var body searchRequest
	if err := c.BodyParser(&body); err != nil {
		return sendError(c, fiber.StatusBadRequest, "Request body should be a JSON search request")
	}

	if err := validate.Struct(body); err != nil {
		return sendError(c, fiber.StatusBadRequest, err.Error())
	}

	var journeyPlanQuery query.JourneyPlan
	if err := copier.Copy(&journeyPlanQuery, &body); err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Could not build search query")
	}

	results, err := dataaggregator.Lookup[*ctdf.JourneyPlanResults](c.UserContext(), journeyPlanQuery)

	indexSearchEvent(eventIndex, journeyPlanQuery, results, err)

	if err != nil {
		if errors.Is(err, navi.ErrMissingEndpoint) {
			return sendError(c, fiber.StatusBadRequest, err.Error())
		}

		log.Error().Err(err).Str("from", body.From).Str("to", body.To).Msg("Journey plan search failed")
		return sendError(c, fiber.StatusBadGateway, err.Error())
	}

	groups := []string{"basic", "detailed"}
	if c.Query("detail") == "basic" {
		groups = []string{"basic"}
	}

	resultsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, results)
	if err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Sheriff could not reduce journey plans")
	}

	return sendData(c, resultsReduced)
}

func indexSearchEvent(eventIndex string, q query.JourneyPlan, results *ctdf.JourneyPlanResults, err error) {
	event := SearchElasticEvent{
		Timestamp: time.Now(),

		From: q.From,
		To:   q.To,
		Via:  q.Via,
		Type: q.Type,
		Sort: q.Sort,

		Success: err == nil,
	}

	if results != nil {
		event.SearchDate = results.SearchDate
		event.Routes = len(results.JourneyPlans)
	}

	elasticEvent, _ := json.Marshal(event)

	elastic_client.IndexRequest(eventIndex, bytes.NewReader(elasticEvent))
}
