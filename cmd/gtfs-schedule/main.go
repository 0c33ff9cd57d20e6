package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/theoremus-urban-solutions/gtfs-schedule/config"
	"github.com/theoremus-urban-solutions/gtfs-schedule/gtfs"
	"github.com/theoremus-urban-solutions/gtfs-schedule/internal/logging"
)

func main() {
	app := &cli.App{
		Name:        "gtfs-schedule",
		Usage:       "import and query GTFS static schedule bundles",
		Description: "Imports a GTFS zip bundle into an in-memory schedule and answers service, trip, route and shape queries against it.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to config.yml"},
			&cli.StringFlag{Name: "feed", Usage: "feed name from config feeds list"},
			&cli.StringFlag{Name: "source", Usage: "bundle path or URL, overrides config"},
			&cli.StringFlag{Name: "date", Usage: "reference date (2006-01-02), overrides config"},
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "debug, info, warn or error"},
			&cli.BoolFlag{Name: "log-json", Usage: "emit JSON log lines"},
		},
		Before: func(c *cli.Context) error {
			logging.Setup(c.String("log-level"), c.Bool("log-json"))
			if err := config.LoadAppConfig(c.String("config")); err != nil {
				// A config file is optional when the bundle comes from --source.
				if c.String("source") == "" {
					return err
				}
				log.Debug().Err(err).Msg("no configuration file, using flags only")
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "validate",
				Usage: "import a bundle and report what it contains",
				Action: func(c *cli.Context) error {
					feed, err := loadFeed(c)
					if err != nil {
						return err
					}
					fmt.Printf("agencies:       %d\n", len(feed.Agencies))
					fmt.Printf("stops:          %d\n", len(feed.Stops))
					fmt.Printf("routes:         %d\n", len(feed.Routes))
					fmt.Printf("trips:          %d\n", len(feed.Trips))
					fmt.Printf("stop times:     %d\n", len(feed.StopTimes))
					fmt.Printf("calendars:      %d\n", len(feed.Calendars))
					fmt.Printf("calendar dates: %d\n", len(feed.CalendarDates))
					fmt.Printf("shapes:         %d\n", len(feed.Shapes))
					fmt.Printf("reference date: %s\n", feed.ReferenceDate.Format("2006-01-02"))
					return nil
				},
			},
			{
				Name:      "services",
				Usage:     "list service ids active on a date",
				ArgsUsage: "[date]",
				Action: func(c *cli.Context) error {
					feed, err := loadFeed(c)
					if err != nil {
						return err
					}
					date := feed.ReferenceDate
					if c.Args().Present() {
						if date, err = parseDate(c.Args().First(), feed.ReferenceDate.Location()); err != nil {
							return err
						}
					}
					for _, id := range feed.ActiveServiceIDs(date) {
						fmt.Println(id)
					}
					return nil
				},
			},
			{
				Name:      "trip",
				Usage:     "show a trip's stop calls",
				ArgsUsage: "<trip_id> [date]",
				Action: func(c *cli.Context) error {
					if !c.Args().Present() {
						return fmt.Errorf("trip id required")
					}
					feed, err := loadFeed(c)
					if err != nil {
						return err
					}
					date := feed.ReferenceDate
					if c.Args().Len() > 1 {
						if date, err = parseDate(c.Args().Get(1), feed.ReferenceDate.Location()); err != nil {
							return err
						}
					}
					it, err := feed.TripItinerary(c.Args().First(), date)
					if err != nil {
						return err
					}
					printItinerary(it)
					return nil
				},
			},
			{
				Name:      "route",
				Usage:     "show a route's itineraries on a date",
				ArgsUsage: "<route_id> [date]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "import-day",
						Usage: "match trips by stored stop-call date instead of the service calendar",
					},
				},
				Action: func(c *cli.Context) error {
					if !c.Args().Present() {
						return fmt.Errorf("route id required")
					}
					feed, err := loadFeed(c)
					if err != nil {
						return err
					}
					date := feed.ReferenceDate
					if c.Args().Len() > 1 {
						if date, err = parseDate(c.Args().Get(1), feed.ReferenceDate.Location()); err != nil {
							return err
						}
					}
					its, err := feed.RouteItineraries(c.Args().First(), date, !c.Bool("import-day"))
					if err != nil {
						return err
					}
					for i := range its {
						if i > 0 {
							fmt.Println()
						}
						printItinerary(&its[i])
					}
					return nil
				},
			},
			{
				Name:      "shape",
				Usage:     "print a route's shape as GeoJSON",
				ArgsUsage: "<route_id>",
				Action: func(c *cli.Context) error {
					if !c.Args().Present() {
						return fmt.Errorf("route id required")
					}
					feed, err := loadFeed(c)
					if err != nil {
						return err
					}
					line, err := feed.GeoRoute(c.Args().First())
					if err != nil {
						return err
					}
					enc := json.NewEncoder(os.Stdout)
					enc.SetIndent("", "  ")
					return enc.Encode(line)
				},
			},
			{
				Name:      "stop",
				Usage:     "show one stop",
				ArgsUsage: "<stop_id>",
				Action: func(c *cli.Context) error {
					if !c.Args().Present() {
						return fmt.Errorf("stop id required")
					}
					feed, err := loadFeed(c)
					if err != nil {
						return err
					}
					stop, err := feed.FindStop(c.Args().First())
					if err != nil {
						return err
					}
					fmt.Printf("%s  %s  (%.6f, %.6f)\n",
						stop.ID, stop.Name, stop.Location.Latitude, stop.Location.Longitude)
					if stop.PlatformCode != "" {
						fmt.Printf("platform: %s\n", stop.PlatformCode)
					}
					return nil
				},
			},
			{
				Name:      "translation",
				Usage:     "show the translations recorded for a value",
				ArgsUsage: "<value>",
				Action: func(c *cli.Context) error {
					if !c.Args().Present() {
						return fmt.Errorf("value required")
					}
					feed, err := loadFeed(c)
					if err != nil {
						return err
					}
					tr, err := feed.FindTranslation(c.Args().First())
					if err != nil {
						return err
					}
					for lang, text := range tr {
						fmt.Printf("%s: %s\n", lang, text)
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func parseDate(s string, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad date %q, want 2006-01-02", s)
	}
	return date, nil
}

// loadFeed resolves the bundle source and reference date from flags and
// config, preferring a cached snapshot when one is configured.
func loadFeed(c *cli.Context) (*gtfs.Feed, error) {
	feedCfg, err := config.SelectFeed(c.String("feed"))
	if err != nil {
		return nil, err
	}

	source := feedCfg.Path
	if source == "" {
		source = feedCfg.URL
	}
	if c.String("source") != "" {
		source = c.String("source")
	}

	ref, err := feedCfg.Reference()
	if err != nil {
		return nil, err
	}
	if c.String("date") != "" {
		loc, err := feedCfg.Location()
		if err != nil {
			return nil, err
		}
		if ref, err = parseDate(c.String("date"), loc); err != nil {
			return nil, err
		}
	}

	if cache := config.Config.Cache.Path; cache != "" {
		if feed, err := gtfs.DeserializeFeedFromFile(cache); err == nil {
			log.Debug().Str("path", cache).Msg("loaded feed from snapshot")
			return feed, nil
		}
	}

	data, err := newFetcher().fetch(source)
	if err != nil {
		return nil, err
	}
	feed, err := gtfs.ImportZip(data, gtfs.ImportOptions{ReferenceDate: ref})
	if err != nil {
		return nil, err
	}

	if cache := config.Config.Cache.Path; cache != "" {
		if err := gtfs.SerializeFeedToFile(feed, cache); err != nil {
			log.Warn().Err(err).Str("path", cache).Msg("could not write feed snapshot")
		}
	}
	return feed, nil
}

func printItinerary(it *gtfs.Itinerary) {
	fmt.Printf("trip %s  route %s  service %s", it.Trip.ID, it.Trip.RouteID, it.Trip.ServiceID)
	if it.Trip.Headsign != "" {
		fmt.Printf("  to %s", it.Trip.Headsign)
	}
	fmt.Println()
	for _, stop := range it.Stops {
		fmt.Printf("  %2d  %s  %s  %s\n",
			stop.Sequence,
			stop.Arrival.Format("15:04:05"),
			stop.Departure.Format("15:04:05"),
			stop.Stop.Name)
	}
}
