package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/TurboProjects/Notes-App-Challenge/config"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/database"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/log"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/server"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	var cfg *config.Config
	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "multi-tenant notes api",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   fmt.Sprintf("configs/config.%s.yaml", env),
				Usage:   "path to the yaml config",
			},
		},
		Before: func(ctx *cli.Context) error {
			cfg = config.New(ctx.String("config"))
			log.Setup(cfg.Log)
			if cfg.Jwt.Secret == "" {
				return errors.New("jwt.secret is empty, set JWT_SECRET")
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					return server.Run(ctx, InitServer(cfg))
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update the database schema",
				Action: func(ctx *cli.Context) error {
					app := InitCommand(cfg)
					if err := database.Migrate(app.DB); err != nil {
						return err
					}
					log.L.Info("migrate success")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "insert the configured global categories",
				Action: func(ctx *cli.Context) error {
					app := InitCommand(cfg)
					n, err := app.CategoryService.Seed(ctx.Context, cfg.Seed.Categories)
					if err != nil {
						return err
					}
					log.L.Info("seed success", zap.Int("created", n))
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("api-server exited", zap.Error(err))
	}
}
