package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sznuper/nsbt/internal/config"
	"github.com/sznuper/nsbt/internal/notify"
	"github.com/sznuper/nsbt/internal/runner"
)

var runCmd = &cobra.Command{
	Use:   "run <config_file>",
	Short: "Run all scenarios from a config file",
	Long: "Loads the batch configuration and runs every scenario sequentially through the ns3 launcher. " +
		"Individual scenario failures, timeouts and launch errors are reported and never stop the batch.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		watch, _ := cmd.Flags().GetBool("watch")
		notifyURL, _ := cmd.Flags().GetString("notify")

		if ns3Path == "" {
			return fmt.Errorf("--ns3path is required")
		}

		logger := setupLogger()
		ctx := context.Background()

		if err := runBatch(ctx, args[0], notifyURL, logger); err != nil {
			return err
		}
		if !watch {
			return nil
		}

		return watchConfig(args[0], logger, func() {
			if err := runBatch(ctx, args[0], notifyURL, logger); err != nil {
				logger.Error("batch failed", "error", err)
			}
		})
	},
}

func init() {
	runCmd.Flags().Bool("watch", false, "rerun the batch whenever the config file changes")
	runCmd.Flags().String("notify", "", "Shoutrrr service URL to send the batch summary to")
	rootCmd.AddCommand(runCmd)
}

// runBatch loads the config, resolves the launcher and executes every
// scenario, printing the report as the batch progresses. Only loading and
// launcher resolution can fail; scenario outcomes are reported, not returned.
func runBatch(ctx context.Context, cfgPath, notifyURL string, logger *slog.Logger) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	r, err := runner.New(cfg, ns3Path, time.Duration(timeoutSec)*time.Second, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Loaded configuration from %s (%d scenarios)\n", cfgPath, len(cfg.Scenarios))

	scenarios := r.Scenarios()
	results := make([]runner.Result, 0, len(scenarios))
	for i := range scenarios {
		printHeader(&scenarios[i])
		res := r.RunScenario(ctx, &scenarios[i])
		printResult(res)
		results = append(results, res)
	}

	if notifyURL != "" {
		msg, err := notify.Render(notify.DefaultTemplate, notify.BuildSummaryData(cfgPath, results))
		if err != nil {
			logger.Error("rendering summary failed", "error", err)
		} else if err := notify.Send(notifyURL, msg); err != nil {
			logger.Error("sending summary failed", "error", err)
		}
	}

	return nil
}

// watchConfig blocks, rerunning the batch on every change to the config file.
// Errors inside the loop are logged so a broken edit doesn't kill the watch.
func watchConfig(path string, logger *slog.Logger, rerun func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	// Watch the directory, not the file: editors replace files on save.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	target := filepath.Clean(path)
	logger.Info("watching config for changes", "file", target)

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			logger.Info("config changed, rerunning batch", "file", target)
			rerun()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "error", err)
		}
	}
}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	timeoutStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
)

func banner(style lipgloss.Style, text string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return text
	}
	return style.Render(text)
}

func printHeader(sc *config.Scenario) {
	rule := strings.Repeat("=", 60)
	fmt.Println()
	fmt.Println(rule)
	fmt.Printf("Starting Test ID: %s\n", sc.ID)
	fmt.Printf("Test Name: %s\n", sc.Name)
	fmt.Println(rule)
}

func printResult(r runner.Result) {
	if r.Command != "" {
		fmt.Printf("Command: %s\n", r.Command)
	}

	switch r.Outcome {
	case runner.Success:
		fmt.Printf("%s Test %s passed.\n", banner(successStyle, "[SUCCESS]"), r.ID)
		if r.StdoutTail != "" {
			fmt.Println("Output:", r.StdoutTail)
		}
	case runner.Failure:
		fmt.Printf("%s Test %s failed with return code %d.\n", banner(failureStyle, "[FAILURE]"), r.ID, r.ExitCode)
		if r.StderrTail != "" {
			fmt.Println("Error Log:", r.StderrTail)
		}
		if r.StdoutTail != "" {
			fmt.Println("Output:", r.StdoutTail)
		}
	case runner.Timeout:
		fmt.Printf("%s Test %s hung and was killed after %d seconds.\n", banner(timeoutStyle, "[TIMEOUT]"), r.ID, timeoutSec)
	case runner.LaunchError:
		fmt.Printf("%s Test %s could not be run: %v\n", banner(errorStyle, "[ERROR]"), r.ID, r.Err)
	}
}
