package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/transit-network/internal/config"
	"github.com/transit-network/internal/domain"
	"github.com/transit-network/internal/pkg/logger"
	"github.com/transit-network/internal/repository/postgres"
	redisRepo "github.com/transit-network/internal/repository/redis"
	"github.com/transit-network/migrations"
)

func main() {
	app := &cli.App{
		Name:  "transitctl",
		Usage: "Transit network administration",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "dotenv file with connection settings",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Apply embedded SQL migrations",
				Action: func(c *cli.Context) error {
					cfg, log, err := setup(c)
					if err != nil {
						return err
					}
					defer log.Sync()

					db, err := postgres.New(&cfg.Database, log)
					if err != nil {
						return err
					}
					defer db.Close()

					ctx, cancel := context.WithTimeout(c.Context, 5*time.Minute)
					defer cancel()

					applied, err := postgres.ApplyMigrations(ctx, db, migrations.FS)
					if err != nil {
						return err
					}

					if len(applied) == 0 {
						log.Info("Schema is up to date")
					}
					for _, name := range applied {
						log.Info("Migration applied", zap.String("name", name))
					}
					return nil
				},
			},
			{
				Name:  "import-stop-lines",
				Usage: "Publish stop line associations from a CSV file to the import stream",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "CSV with columns stop_id,line_id,estimated_time,is_enabled",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					cfg, log, err := setup(c)
					if err != nil {
						return err
					}
					defer log.Sync()

					file, err := os.Open(c.String("file"))
					if err != nil {
						return err
					}
					defer file.Close()

					events, err := ReadStopLineEvents(file)
					if err != nil {
						return err
					}

					client, err := redisRepo.NewRedis(&cfg.Redis, log)
					if err != nil {
						return err
					}
					defer client.Close()

					streamRepo := redisRepo.NewStreamRepository(client.Client(), log)
					for _, event := range events {
						if err := streamRepo.PublishToStream(c.Context, domain.StreamStopLineImport, event); err != nil {
							return fmt.Errorf("publish request %s: %w", event.RequestID, err)
						}
						fmt.Println(event.RequestID)
					}

					log.Info("Stop line import requests published",
						zap.Int("count", len(events)),
						zap.String("stream", domain.StreamStopLineImport))
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(c *cli.Context) (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadFile(c.String("env-file"))
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log, nil
}
