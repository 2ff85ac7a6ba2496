package search

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/liip/sheriff"
	"github.com/linkalls/norikae/pkg/config"
	"github.com/linkalls/norikae/pkg/ctdf"
	"github.com/linkalls/norikae/pkg/dataaggregator"
	"github.com/linkalls/norikae/pkg/dataaggregator/global"
	"github.com/linkalls/norikae/pkg/dataaggregator/query"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search journeys and print the normalised routes as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "from",
				Usage:    "origin station or place name",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "to",
				Usage:    "destination station or place name",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "via",
				Usage: "station to route through",
			},
			&cli.StringFlag{
				Name:  "date",
				Usage: "search date as YYYYMMDDHHmm, now when empty",
			},
			&cli.IntFlag{
				Name:  "type",
				Value: 1,
				Usage: "1 departure, 2 arrival, 3 first train, 4 last train",
			},
			&cli.IntFlag{
				Name:  "sort",
				Usage: "0 fastest, 1 fewest transfers, 2 cheapest",
			},
			&cli.BoolFlag{
				Name:  "basic",
				Usage: "skip leg detail",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if err := global.Setup(cfg); err != nil {
				return err
			}

			q := query.JourneyPlan{
				From:  c.String("from"),
				To:    c.String("to"),
				Via:   c.String("via"),
				Date:  c.String("date"),
				Type:  c.Int("type"),
				Sort:  c.Int("sort"),
				Basic: c.Bool("basic"),
			}

			results, err := dataaggregator.Lookup[*ctdf.JourneyPlanResults](c.Context, q)
			if err != nil {
				return err
			}

			return writeResults(c.App.Writer, results, q.Basic)
		},
	}
}

func writeResults(w io.Writer, results *ctdf.JourneyPlanResults, basic bool) error {
	groups := []string{"basic", "detailed"}
	if basic {
		groups = []string{"basic"}
	}

	reduced, err := sheriff.Marshal(&sheriff.Options{Groups: groups}, results)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(reduced); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	return nil
}
