package main

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule <cron_expr> <config_file>",
	Short: "Run the batch on a cron schedule",
	Long: "Runs the batch from the given config file on a cron schedule and blocks until interrupted. " +
		`Useful for nightly simulation runs, e.g.: nsbt --ns3path ~/ns-3.43 schedule "0 2 * * *" batch.json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		notifyURL, _ := cmd.Flags().GetString("notify")

		if ns3Path == "" {
			return fmt.Errorf("--ns3path is required")
		}

		logger := setupLogger()
		ctx := context.Background()

		c := cron.New()
		_, err := c.AddFunc(args[0], func() {
			logger.Info("scheduled batch starting", "config", args[1])
			if err := runBatch(ctx, args[1], notifyURL, logger); err != nil {
				logger.Error("batch failed", "error", err)
			}
		})
		if err != nil {
			return fmt.Errorf("invalid cron expression %q: %w", args[0], err)
		}

		logger.Info("scheduler started", "cron", args[0], "config", args[1])
		c.Run()
		return nil
	},
}

func init() {
	scheduleCmd.Flags().String("notify", "", "Shoutrrr service URL to send each batch summary to")
	rootCmd.AddCommand(scheduleCmd)
}
