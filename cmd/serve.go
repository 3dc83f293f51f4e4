package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/provlabs/funding-trading-bridge/activity"
	"github.com/provlabs/funding-trading-bridge/bridge"
	"github.com/provlabs/funding-trading-bridge/config"
	dbTypes "github.com/provlabs/funding-trading-bridge/db"
	"github.com/provlabs/funding-trading-bridge/provenance"
	"github.com/provlabs/funding-trading-bridge/server"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

type serveRunner struct {
	cfg *config.ServeConfig
	db  *gorm.DB
}

var runner serveRunner

func init() {
	runner.cfg = &config.ServeConfig{}
	config.SetupLogFlags(&runner.cfg.Log, serveCmd)
	config.SetupDatabaseFlags(&runner.cfg.Database, serveCmd)
	config.SetupProvenanceFlags(&runner.cfg.Provenance, serveCmd)
	config.SetupServerFlags(&runner.cfg.Server, serveCmd)
	config.SetupRedisFlags(&runner.cfg.Redis, serveCmd)

	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the bridge HTTP service.",
	Long: `Runs the HTTP service exposing the bridge operations. Callers exchange deposit
	denom balances for trading denom balances and back; each successful call returns
	the bank instructions for the caller to execute on chain.`,
	PreRunE: setupServe,
	Run:     serve,
}

func setupServe(cmd *cobra.Command, args []string) error {
	bindFlags(cmd, viperConf)

	err := runner.cfg.Validate()
	if err != nil {
		return err
	}

	ignoredKeys := config.CheckSuperfluousServeKeys(viperConf.AllKeys())
	if len(ignoredKeys) > 0 {
		config.Log.Warnf("Warning, the following invalid keys will be ignored: %v", ignoredKeys)
	}

	setupLogger(runner.cfg.Log.Level, runner.cfg.Log.Path, runner.cfg.Log.Pretty)

	db, err := connectToDBAndMigrate(runner.cfg.Database)
	if err != nil {
		config.Log.Fatal("Could not establish connection to the database", err)
	}
	runner.db = db

	return nil
}

func serve(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stateStore := dbTypes.NewPostgresStateStore(runner.db)
	lcd := provenance.NewClient(runner.cfg.Provenance.LCD)
	contract := bridge.NewContract(
		stateStore,
		lcd,
		lcd,
		lcd,
		runner.cfg.Provenance.ContractAddress,
		runner.cfg.Provenance.AccountPrefix,
	)

	var feed activity.ExchangesFeed
	if runner.cfg.FeedEnabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     runner.cfg.Redis.Addr,
			Password: runner.cfg.Redis.Password,
		})
		feed = activity.NewFeed(rdb)
		config.Log.Infof("Activity feed enabled at %s", runner.cfg.Redis.Addr)
	}

	srv := server.NewServer(contract, feed, runner.db)
	if err := srv.Run(ctx, runner.cfg.Server.Port); err != nil {
		config.Log.Fatal("HTTP service exited with an error", err)
	}
}
