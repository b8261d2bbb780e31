package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/sbilibin2017/phixelforge/internal/client"
	"github.com/sbilibin2017/phixelforge/internal/config"
	"github.com/sbilibin2017/phixelforge/internal/database"
	"github.com/sbilibin2017/phixelforge/internal/logger"
)

// app carries the persistent flags and the loaded config into subcommands.
type app struct {
	configPath string
	serverURL  string
	token      string
	jsonOutput bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "phixelctl",
		Short: "PhixelForge command line",
		Long: `phixelctl migrates legacy image documents into PostgreSQL and
talks to a running PhixelForge server.

  phixelctl schema                  Create the relational schema
  phixelctl migrate --dry-run       Count legacy documents
  phixelctl token issue --uid u1    Sign a development token
  phixelctl images list             List the public gallery`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if err := logger.Initialize(cfg.App.LogLevel); err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			a.cfg = cfg
			if a.serverURL == "" {
				a.serverURL = cfg.App.BaseURL
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "config.env", "Path to configuration file")
	root.PersistentFlags().StringVar(&a.serverURL, "server", "", "Server base URL (default: APP_BASE_URL)")
	root.PersistentFlags().StringVar(&a.token, "token", os.Getenv("PHIXELCTL_TOKEN"), "Bearer token (default: $PHIXELCTL_TOKEN)")
	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "Output as JSON")

	root.AddCommand(
		a.newSchemaCmd(),
		a.newMigrateCmd(),
		a.newLegacyCmd(),
		a.newImagesCmd(),
		a.newLikesCmd(),
		a.newAlbumsCmd(),
		a.newTokenCmd(),
	)

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	return root
}

// execute runs the root command and reports the error on stderr.
func execute(root *cobra.Command) error {
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}

func (a *app) client() (*client.Client, error) {
	policy, err := client.ParseOverlapPolicy(a.cfg.Feed.Overlap)
	if err != nil {
		return nil, err
	}
	return client.New(a.serverURL,
		client.WithToken(a.token),
		client.WithPollInterval(a.cfg.Feed.Interval),
		client.WithOverlapPolicy(policy),
	), nil
}

func (a *app) requireToken() error {
	if a.token == "" {
		return fmt.Errorf("no token: pass --token or set PHIXELCTL_TOKEN")
	}
	return nil
}

func (a *app) openRedis(ctx context.Context) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr(),
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
		PoolSize: a.cfg.Redis.PoolSize,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", a.cfg.Redis.Addr(), err)
	}
	return rdb, nil
}

func (a *app) openPostgres(ctx context.Context) (*sqlx.DB, error) {
	return database.Open(ctx, a.cfg.Postgres.DSN(), database.PoolOptions{
		MaxOpenConns:    a.cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    a.cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: a.cfg.Postgres.ConnMaxLifetime,
	})
}
