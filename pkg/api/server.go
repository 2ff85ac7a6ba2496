package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/linkalls/norikae/pkg/api/routes"
	"github.com/linkalls/norikae/pkg/config"
)

func NewApp(cfg *config.Config) *fiber.App {
	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          routes.ErrorHandler,
	})
	webApp.Use(NewLogger())

	webApp.Get("/health", routes.Health)
	webApp.Get("/version", routes.APIVersion)

	group := webApp.Group("/api")

	routes.SearchRouter(group.Group("/search"), cfg.Elasticsearch.Index)
	routes.StationNamesRouter(group.Group("/station-names"), cfg.Resolver.MaxStationCodes)
	routes.LineStatusRouter(group.Group("/diainfo"))
	routes.SuggestRouter(group.Group("/suggest"))
	routes.StationsRouter(group.Group("/stations"))
	routes.TimetableRouter(group.Group("/timetable"))

	return webApp
}
