package main

import (
	"github.com/spf13/cobra"
)

var (
	ns3Path    string
	timeoutSec int
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "nsbt",
	Short: "Batch tester for NS-3 simulations",
	Long: "nsbt runs a sequence of NS-3 simulations described by a JSON or YAML configuration file. " +
		"Each scenario is launched through the ns3 wrapper with a per-scenario timeout, and every outcome is reported on the console.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&ns3Path, "ns3path", "", "path to the directory containing the ns3 executable (e.g. /home/user/ns-3.43)")
	rootCmd.PersistentFlags().IntVar(&timeoutSec, "timeout", 300, "timeout in seconds for each scenario before it is considered hung")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
