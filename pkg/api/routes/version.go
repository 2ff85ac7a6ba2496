package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

var Version = "dev"

func APIVersion(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"version": Version,
	})
}

func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"ok": true,
		"ts": time.Now().UnixMilli(),
	})
}
