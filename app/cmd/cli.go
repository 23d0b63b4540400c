package cmd

import (
	"context"

	"github.com/Rakhulsr/contoso-pizza/app/configs"
	"github.com/Rakhulsr/contoso-pizza/app/db/seeders"
	"github.com/Rakhulsr/contoso-pizza/app/models/migrations"
	"github.com/Rakhulsr/contoso-pizza/app/utils/logger"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// RunCli seeds the product catalogue when called without a subcommand.
func RunCli(ctx context.Context, args []string) error {
	cmd := &cli.Command{
		Name:  "contoso-pizza",
		Usage: "Seed the pizza product catalogue",
		Action: func(ctx context.Context, c *cli.Command) error {
			return withEnv(func(env configs.ENV, log *zap.Logger) error {
				return Seed(ctx, env, log)
			})
		},
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Create the customer, order, product and order detail tables",
				Action: func(ctx context.Context, c *cli.Command) error {
					return withEnv(func(env configs.ENV, log *zap.Logger) error {
						return Migrate(ctx, env, log)
					})
				},
			},
		},
	}

	return cmd.Run(ctx, args)
}

func withEnv(fn func(configs.ENV, *zap.Logger) error) error {
	env, err := configs.LoadEnv()
	if err != nil {
		logger.New(logger.DefaultConfig()).Error("load configuration", zap.Error(err))
		return err
	}

	log := logger.NewForEnvironment(env.AppEnv, logger.Config{Level: env.LogLevel, Format: env.LogFormat})
	defer log.Sync()

	if err := fn(env, log); err != nil {
		log.Error("run failed", zap.Error(err))
		return err
	}
	return nil
}

// Seed runs the unit of work: open, register the seed products, commit, close.
func Seed(ctx context.Context, env configs.ENV, log *zap.Logger) (err error) {
	sess, err := configs.OpenConnection(ctx, env, log)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := sess.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := seeders.DBSeed(ctx, sess, log); err != nil {
		return err
	}
	log.Info("seed complete")
	return nil
}

func Migrate(ctx context.Context, env configs.ENV, log *zap.Logger) (err error) {
	sess, err := configs.OpenConnection(ctx, env, log)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := sess.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := migrations.AutoMigrate(sess.DB().WithContext(ctx)); err != nil {
		return err
	}
	log.Info("migration complete")
	return nil
}
