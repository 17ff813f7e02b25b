package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"holdem-server/internal/config"
	"holdem-server/internal/rng"
	"holdem-server/pkg/db"
	"holdem-server/pkg/service"
	"holdem-server/pkg/store"
)

// Version is the server version
var Version = "v0.0.0-dev"

func main() {
	app := cli.NewApp()
	app.Name = "holdem"
	app.Usage = "run Texas Hold'em tables"
	app.Version = Version
	app.Before = func(*cli.Context) error {
		return setupLogger()
	}
	app.Commands = []*cli.Command{
		{
			Name:  "simulate",
			Usage: "seat random players and play hands through the game service",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "players", Value: 4, Usage: "number of players to seat"},
				&cli.IntFlag{Name: "hands", Value: 10, Usage: "maximum number of hands to play"},
				&cli.IntFlag{Name: "bankroll", Value: 1000, Usage: "starting bankroll of every player"},
				&cli.Int64Flag{Name: "seed", Usage: "seed for the players' decisions, random when 0"},
				&cli.StringFlag{Name: "store", Value: "memory", Usage: "where games are kept: memory or postgres"},
				&cli.StringFlag{Name: "lock", Value: "memory", Usage: "how commands are serialized: memory or redis"},
			},
			Action: simulateCommand,
		},
		{
			Name:  "migrate",
			Usage: "run the database migrations",
			Action: func(*cli.Context) error {
				return db.Migrate()
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("holdem failed")
	}
}

func setupLogger() error {
	cfg := config.Instance()
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			return fmt.Errorf("could not parse level: %w", err)
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	return nil
}

func simulateCommand(c *cli.Context) error {
	cfg := config.Instance()
	logger := logrus.StandardLogger()

	repo, err := newRepository(logger, cfg, c.String("store"))
	if err != nil {
		return err
	}

	locker, err := newLocker(logger, cfg, c.String("lock"))
	if err != nil {
		return err
	}

	var generator rng.Generator = rng.Crypto{}
	if seed := c.Int64("seed"); seed != 0 {
		generator = rng.NewSeeded(seed)
	}

	sim := &simulator{
		logger:  logger,
		service: service.NewService(logger, repo, locker),
		rng:     generator,
	}

	_, err = sim.run(context.Background(), cfg.Table.Options(), c.Int("players"), c.Int("hands"), c.Int("bankroll"))
	return err
}

func newRepository(logger logrus.FieldLogger, cfg config.Config, kind string) (service.Repository, error) {
	switch kind {
	case "memory":
		return store.NewMemoryStore(logger), nil
	case "postgres":
		conn, err := db.Open(cfg.PGDSN)
		if err != nil {
			return nil, fmt.Errorf("could not connect to database: %w", err)
		}

		if err := db.MigrateDB(conn, cfg.MigrationsPath); err != nil {
			return nil, err
		}

		return store.NewPostgresStore(logger, conn), nil
	}

	return nil, fmt.Errorf("unknown store: %s", kind)
}

func newLocker(logger logrus.FieldLogger, cfg config.Config, kind string) (service.Locker, error) {
	switch kind {
	case "memory":
		return service.NewMemoryLocker(), nil
	case "redis":
		client := service.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("could not connect to redis: %w", err)
		}

		return service.NewRedisLocker(logger, client), nil
	}

	return nil, fmt.Errorf("unknown lock: %s", kind)
}
