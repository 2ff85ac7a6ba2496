package api

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/linkalls/norikae/pkg/config"
	"github.com/linkalls/norikae/pkg/dataaggregator/global"
	"github.com/linkalls/norikae/pkg/elastic_client"
	"github.com/linkalls/norikae/pkg/redis_client"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the journey search web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Usage: "listen target for the web server, overrides NORIKAE_LISTEN",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load()
					if err != nil {
						return err
					}

					if listen := c.String("listen"); listen != "" {
						cfg.Listen = listen
					}

					if err := redis_client.Connect(c.Context, cfg.Redis); err != nil {
						return err
					}
					defer redis_client.Close()

					if err := elastic_client.Connect(cfg.Elasticsearch, false); err != nil {
						return err
					}
					defer elastic_client.WaitUntilQueueEmpty(context.Background())

					if err := global.Setup(cfg); err != nil {
						return err
					}

					webApp := NewApp(cfg)

					go func() {
						signals := make(chan os.Signal, 1)
						signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
						<-signals

						log.Info().Msg("Shutting down web api")
						if err := webApp.Shutdown(); err != nil {
							log.Error().Err(err).Msg("Failed to shut down web api")
						}
					}()

					log.Info().Str("listen", cfg.Listen).Msg("Starting web api")

					return webApp.Listen(cfg.Listen)
				},
			},
		},
	}
}
