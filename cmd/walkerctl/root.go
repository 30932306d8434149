package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"waltgoat/walker-app/internal/config"
	"waltgoat/walker-app/internal/logging"
	"waltgoat/walker-app/internal/repository/mongo"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

const dbTimeout = time.Minute

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "walkerctl",
	Short: "walkerctl maintains the walker backend",
	Long:  "walkerctl seeds the exercise catalog, creates database indexes and previews generated plans.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "warn"
		if verbose {
			level = "debug"
		}
		logging.Setup(logging.LoggerSetupParams{LogLevel: level, LogToStdout: true})
	},
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "Directory containing config.yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
}

// withDB connects to the configured database for the duration of run.
func withDB(run func(ctx context.Context, db *mongodriver.Database) error) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	client, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		return err
	}
	defer func() {
		if err := mongo.DisconnectDB(client); err != nil {
			log.Errorf("disconnect: %s", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()
	return run(ctx, client.Database(cfg.Database.Name))
}
