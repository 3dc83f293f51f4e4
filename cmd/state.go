package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/provlabs/funding-trading-bridge/config"
	dbTypes "github.com/provlabs/funding-trading-bridge/db"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

type stateRunner struct {
	cfg *config.StateConfig
	db  *gorm.DB
}

var stateQuery stateRunner

func init() {
	stateQuery.cfg = &config.StateConfig{}
	config.SetupLogFlags(&stateQuery.cfg.Log, stateCmd)
	config.SetupDatabaseFlags(&stateQuery.cfg.Database, stateCmd)

	rootCmd.AddCommand(stateCmd)
}

var stateCmd = &cobra.Command{
	Use:     "state",
	Short:   "Prints the persisted contract state as JSON.",
	PreRunE: setupStateQuery,
	RunE:    runStateQuery,
}

func setupStateQuery(cmd *cobra.Command, args []string) error {
	bindFlags(cmd, viperConf)

	err := stateQuery.cfg.Validate()
	if err != nil {
		return err
	}

	ignoredKeys := config.CheckSuperfluousStateKeys(viperConf.AllKeys())
	if len(ignoredKeys) > 0 {
		config.Log.Warnf("Warning, the following invalid keys will be ignored: %v", ignoredKeys)
	}

	setupLogger(stateQuery.cfg.Log.Level, stateQuery.cfg.Log.Path, stateQuery.cfg.Log.Pretty)

	db, err := connectToDBAndMigrate(stateQuery.cfg.Database)
	if err != nil {
		config.Log.Fatal("Could not establish connection to the database", err)
	}
	stateQuery.db = db

	return nil
}

func runStateQuery(cmd *cobra.Command, args []string) error {
	stateStore := dbTypes.NewPostgresStateStore(stateQuery.db)

	state, err := stateStore.Load(context.Background())
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}
